// Package moves enforces the limits on which moves a creature may know.
package moves

import (
	"strings"

	"github.com/KirkDiggler/pokerole-api/internal/entities/pokerole"
	"github.com/KirkDiggler/pokerole-api/internal/errors"
)

// Rejection reasons
const (
	ReasonMoveLimitReached             = "MOVE_LIMIT_REACHED"
	ReasonHigherRankMoveAlreadyPresent = "HIGHER_RANK_MOVE_ALREADY_PRESENT"
)

// MoveLimitBonus is added to Insight to get the number of moves a creature can know
const MoveLimitBonus = 2

// Lookup returns the rank at which a move is learned. The second result
// is false for moves it does not know about.
type Lookup func(move string) (pokerole.Rank, bool)

// SpeciesLookup reads learned ranks from a species learnset
func SpeciesLookup(species *pokerole.Species) Lookup {
	return func(move string) (pokerole.Rank, bool) {
		if species == nil {
			return "", false
		}
		return species.LearnedRank(move)
	}
}

// Candidate is a move being considered for learning
type Candidate struct {
	Name    string
	Learned pokerole.Rank
}

// MoveLimit is the most moves c can know
func MoveLimit(c *pokerole.Character) int {
	return c.Attributes.Insight.Current + MoveLimitBonus
}

// Learn appends candidate to c's moves when the limits allow it.
//
// A move already known is a no-op and reports false. Otherwise the move
// is rejected when c already knows MoveLimit moves, or when the move is
// above c's rank and c already knows another move above its rank. A
// rejected move leaves c unchanged.
func Learn(c *pokerole.Character, lookup Lookup, candidate Candidate) (bool, error) {
	if c == nil {
		return false, errors.InvalidArgument("character is required")
	}
	if candidate.Name == "" {
		return false, errors.InvalidArgument("move name is required")
	}

	if c.KnowsMove(candidate.Name) {
		return false, nil
	}

	if limit := MoveLimit(c); len(c.Moves) >= limit {
		return false, errors.FailedPreconditionf("%s can only know %d moves (Insight + %d)",
			c.Nickname, limit, MoveLimitBonus).
			WithReason(ReasonMoveLimitReached).
			WithMeta("limit", limit)
	}

	if candidate.Learned.Above(c.Rank) {
		if existing, ok := higherRankMove(c, lookup); ok {
			return false, errors.FailedPreconditionf("%s already knows %s from a higher rank",
				c.Nickname, existing).
				WithReason(ReasonHigherRankMoveAlreadyPresent).
				WithMeta("existing_move", existing)
		}
	}

	c.Moves = append(c.Moves, candidate.Name)
	return true, nil
}

// Forget removes name from c's moves, keeping the order of the rest. The
// name matches ignoring case.
func Forget(c *pokerole.Character, name string) error {
	if c == nil {
		return errors.InvalidArgument("character is required")
	}

	name = strings.TrimSpace(name)
	for i, m := range c.Moves {
		if strings.EqualFold(m, name) {
			c.Moves = append(c.Moves[:i:i], c.Moves[i+1:]...)
			return nil
		}
	}

	return errors.NotFoundf("%s does not know %s", c.Nickname, name)
}

// IsMoveLimitReached reports whether err rejected a move for exceeding the limit
func IsMoveLimitReached(err error) bool {
	return errors.HasReason(err, ReasonMoveLimitReached)
}

// IsHigherRankMoveAlreadyPresent reports whether err rejected a second
// higher-rank move
func IsHigherRankMoveAlreadyPresent(err error) bool {
	return errors.HasReason(err, ReasonHigherRankMoveAlreadyPresent)
}

// higherRankMove finds a known move learned above c's rank. Moves the
// lookup does not know never count.
func higherRankMove(c *pokerole.Character, lookup Lookup) (string, bool) {
	if lookup == nil {
		return "", false
	}
	for _, m := range c.Moves {
		learned, ok := lookup(m)
		if ok && learned.Above(c.Rank) {
			return m, true
		}
	}
	return "", false
}
