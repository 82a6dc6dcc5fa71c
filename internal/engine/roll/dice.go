package roll

import (
	"math/rand/v2"
	"sync"

	"github.com/KirkDiggler/pokerole-api/internal/errors"
)

// Sides is the size of every die in a pool
const Sides = 6

// Source produces individual die faces
type Source interface {
	Roll(sides int) (int, error)
}

// RollDice draws n faces from src. It has no other side effects, so a
// deterministic source yields a deterministic result.
func RollDice(n int, src Source) ([]int, error) {
	if n < 0 {
		return nil, errors.InvalidArgumentf("cannot roll %d dice", n)
	}
	if src == nil {
		return nil, errors.InvalidArgument("dice source is required")
	}

	faces := make([]int, n)
	for i := range faces {
		face, err := src.Roll(Sides)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll die %d of %d", i+1, n)
		}
		if face < 1 || face > Sides {
			return nil, errors.Internalf("dice source returned %d for a d%d", face, Sides)
		}
		faces[i] = face
	}
	return faces, nil
}

// SeededSource is a reproducible pseudo-random source
type SeededSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededSource returns a source that always produces the same faces
// for the same seed
func NewSeededSource(seed uint64) *SeededSource {
	return &SeededSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Roll returns a face in [1, sides]
func (s *SeededSource) Roll(sides int) (int, error) {
	if sides < 1 {
		return 0, errors.InvalidArgumentf("die must have at least one side, got %d", sides)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(sides) + 1, nil
}

// Sequence replays a fixed list of faces
type Sequence struct {
	faces []int
	next  int
}

// NewSequence returns a source that yields faces in order
func NewSequence(faces ...int) *Sequence {
	return &Sequence{faces: faces}
}

// Roll returns the next face, ignoring sides
func (s *Sequence) Roll(_ int) (int, error) {
	if s.next >= len(s.faces) {
		return 0, errors.OutOfRangef("sequence exhausted after %d faces", len(s.faces))
	}
	face := s.faces[s.next]
	s.next++
	return face, nil
}

// Remaining reports how many faces are left
func (s *Sequence) Remaining() int {
	return len(s.faces) - s.next
}
