package roll

import (
	"time"

	engineroll "github.com/KirkDiggler/pokerole-api/internal/engine/roll"
	rollsession "github.com/KirkDiggler/pokerole-api/internal/repositories/roll_session"
)

// Subject names who is rolling. An empty CharacterID means the trainer.
type Subject struct {
	CharacterID string
}

// IsTrainer reports whether the subject is the player's trainer
func (s Subject) IsTrainer() bool {
	return s.CharacterID == ""
}

// CheckOutput is the state of a subject's check after an operation. When
// the pool offers a choice, Options lists it and the check waits for
// ChooseAttribute.
type CheckOutput struct {
	Session   *engineroll.Session
	Options   []string
	ExpiresAt time.Time
}

// NeedsChoice reports whether the check is waiting on ChooseAttribute
func (o *CheckOutput) NeedsChoice() bool {
	return o != nil && len(o.Options) > 0
}

// BeginAttributeCheckInput starts a check of one attribute
type BeginAttributeCheckInput struct {
	UserID   string
	Subject  Subject
	StatName string
}

// ToggleSkillInput adds or removes a skill on an attribute check
type ToggleSkillInput struct {
	UserID  string
	Subject Subject
	Skill   string
}

// BeginMoveCheckInput starts the accuracy check of a move
type BeginMoveCheckInput struct {
	UserID   string
	Subject  Subject
	MoveName string
	// Choice picks an option up front when the accuracy pool offers one
	Choice string
}

// ChooseAttributeInput answers an outstanding choice
type ChooseAttributeInput struct {
	UserID  string
	Subject Subject
	Choice  string
}

// BeginInitiativeInput starts an initiative check
type BeginInitiativeInput struct {
	UserID  string
	Subject Subject
}

// RollInput settles the check in setup
type RollInput struct {
	UserID  string
	Subject Subject
	// Faces, when set, are used instead of drawing dice
	Faces []int
}

// RequestDamageRollInput chains a damage check onto a move accuracy result
type RequestDamageRollInput struct {
	UserID  string
	Subject Subject
	Choice  string
}

// GetSessionInput identifies the check to load
type GetSessionInput struct {
	UserID  string
	Subject Subject
}

// GetSessionOutput contains the stored state
type GetSessionOutput struct {
	Record *rollsession.Record
}

// CloseSessionInput identifies the check to discard
type CloseSessionInput struct {
	UserID  string
	Subject Subject
}

// CloseSessionOutput reports whether a check was open
type CloseSessionOutput struct {
	Closed bool
}
