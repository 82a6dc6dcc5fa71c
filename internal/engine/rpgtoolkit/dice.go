package rpgtoolkit

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/pokerole-api/internal/engine/roll"
	"github.com/KirkDiggler/pokerole-api/internal/errors"
)

// DiceSource draws faces through rpg-toolkit
type DiceSource struct{}

// NewDiceSource returns the production dice source
func NewDiceSource() *DiceSource {
	return &DiceSource{}
}

var _ roll.Source = (*DiceSource)(nil)

// Roll returns a face in [1, sides]
func (s *DiceSource) Roll(sides int) (int, error) {
	r, err := dice.NewRoll(1, sides)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to create d%d roll", sides)
	}
	return int(r.GetValue()), nil
}
