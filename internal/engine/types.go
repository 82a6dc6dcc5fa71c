package engine

import (
	"github.com/KirkDiggler/pokerole-api/internal/engine/roll"
	"github.com/KirkDiggler/pokerole-api/internal/entities/pokerole"
)

// CheckOutput carries the session produced by a check operation. When a
// pool offers a choice, Session is nil and Options lists the choices.
type CheckOutput struct {
	Session *roll.Session
	Options []string
}

// NeedsChoice reports whether the caller must pick an option and retry
func (o *CheckOutput) NeedsChoice() bool {
	return o != nil && o.Session == nil && len(o.Options) > 0
}

// BeginAttributeCheckInput names the attribute being checked
type BeginAttributeCheckInput struct {
	Subject  Subject
	StatName string
}

// BeginMoveCheckInput names the move whose accuracy is being checked
type BeginMoveCheckInput struct {
	Subject Subject
	Move    *pokerole.MoveData
	Choice  string
}

// BeginInitiativeCheckInput identifies who rolls initiative
type BeginInitiativeCheckInput struct {
	Subject Subject
}

// ToggleSkillInput adds or removes a skill on an attribute check in setup
type ToggleSkillInput struct {
	Subject Subject
	Session *roll.Session
	Skill   string
}

// RollCheckInput settles a session in setup
type RollCheckInput struct {
	Session *roll.Session
	// Faces, when set, are committed as-is instead of drawing dice
	Faces []int
}

// FollowWithDamageInput chains a damage check onto a move accuracy result
type FollowWithDamageInput struct {
	Subject Subject
	Types   []string
	Session *roll.Session
	Choice  string
}

// LearnMoveInput contains a move a creature wants to learn
type LearnMoveInput struct {
	Character *pokerole.Character
	Species   *pokerole.Species
	MoveName  string
}

// LearnMoveOutput reports whether the move list changed
type LearnMoveOutput struct {
	Added bool
	Moves []string
	Limit int
}

// ForgetMoveInput contains a move to remove
type ForgetMoveInput struct {
	Character *pokerole.Character
	MoveName  string
}

// ForgetMoveOutput returns the remaining moves
type ForgetMoveOutput struct {
	Moves []string
}
