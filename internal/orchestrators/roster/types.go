package roster

import (
	"time"

	"github.com/KirkDiggler/pokerole-api/internal/entities/pokerole"
)

// GetRosterInput identifies whose roster to load
type GetRosterInput struct {
	UserID string
}

// GetRosterOutput contains the roster. New is set when nothing was stored yet.
type GetRosterOutput struct {
	Roster    *pokerole.Roster
	UpdatedAt time.Time
	New       bool
}

// AddCharacterInput creates a character from a species into an empty slot
type AddCharacterInput struct {
	UserID      string
	Slot        pokerole.SlotAddress
	SpeciesName string
	// Nickname defaults to the species name
	Nickname string
}

// AddCharacterOutput contains the new character
type AddCharacterOutput struct {
	Character *pokerole.Character
	Slot      pokerole.SlotAddress
}

// MoveCharacterInput swaps the contents of two slots
type MoveCharacterInput struct {
	UserID string
	From   pokerole.SlotAddress
	To     pokerole.SlotAddress
}

// MoveCharacterOutput reports whether anything moved
type MoveCharacterOutput struct {
	Moved bool
}

// ReleaseCharacterInput empties a slot
type ReleaseCharacterInput struct {
	UserID string
	Slot   pokerole.SlotAddress
}

// ReleaseCharacterOutput contains the released character
type ReleaseCharacterOutput struct {
	Character *pokerole.Character
}

// GetCharacterInput identifies a character by instance ID
type GetCharacterInput struct {
	UserID      string
	CharacterID string
}

// GetCharacterOutput contains the character and where it sits
type GetCharacterOutput struct {
	Character *pokerole.Character
	Slot      pokerole.SlotAddress
}

// CharacterEdits lists sheet fields to change. Nil fields are left alone.
type CharacterEdits struct {
	Nickname   *string
	Attributes *pokerole.Attributes
	Skills     *pokerole.Skills
	Contest    *pokerole.Contest
	HP         *pokerole.Stat
	Will       *pokerole.Stat
	Nature     *string
	Happiness  *int
	Loyalty    *int
	Battles    *int
	Victories  *int
	Item       *string
	Accessory  *string
	Status     *pokerole.Status
	Rank       *pokerole.Rank
	Combat     *pokerole.Combat
}

// UpdateCharacterInput applies edits to one character
type UpdateCharacterInput struct {
	UserID      string
	CharacterID string
	Edits       CharacterEdits
}

// UpdateCharacterOutput contains the saved character
type UpdateCharacterOutput struct {
	Character *pokerole.Character
}

// LearnMoveInput teaches a character a move from its species learnset
type LearnMoveInput struct {
	UserID      string
	CharacterID string
	MoveName    string
}

// LearnMoveOutput contains the resulting move list
type LearnMoveOutput struct {
	Added bool
	Moves []string
	Limit int
}

// ForgetMoveInput removes a move from a character
type ForgetMoveInput struct {
	UserID      string
	CharacterID string
	MoveName    string
}

// ForgetMoveOutput contains the remaining moves
type ForgetMoveOutput struct {
	Moves []string
}

// GetTrainerInput identifies the trainer
type GetTrainerInput struct {
	UserID string
}

// GetTrainerOutput contains the trainer sheet
type GetTrainerOutput struct {
	Trainer *pokerole.Trainer
}

// TrainerEdits lists trainer fields to change. Nil fields are left alone.
type TrainerEdits struct {
	Name       *string
	Age        *int
	Image      *string
	Money      *int
	Pokedex    *pokerole.Pokedex
	Nature     *string
	Confidence *int
	Attributes *pokerole.Attributes
	Skills     *pokerole.Skills
	HP         *pokerole.Stat
	Will       *pokerole.Stat
}

// UpdateTrainerInput applies edits to the trainer sheet
type UpdateTrainerInput struct {
	UserID string
	Edits  TrainerEdits
}

// UpdateTrainerOutput contains the saved trainer
type UpdateTrainerOutput struct {
	Trainer *pokerole.Trainer
}

// AdjustInventoryInput changes the quantity of one item stack. A stack
// that drops to zero is removed. Potion tiers are adjusted through
// PotionTier instead of Pocket and Name.
type AdjustInventoryInput struct {
	UserID     string
	Pocket     pokerole.Pocket
	Name       string
	PotionTier pokerole.PotionTier
	Delta      int
}

// AdjustInventoryOutput contains the resulting inventory
type AdjustInventoryOutput struct {
	Inventory pokerole.Inventory
}

// RecordBattleInput counts a battle for a character
type RecordBattleInput struct {
	UserID      string
	CharacterID string
	Victory     bool
}

// RecordBattleOutput contains the updated counters
type RecordBattleOutput struct {
	Battles   int
	Victories int
}
