package rpgtoolkit

import "github.com/KirkDiggler/pokerole-api/internal/entities/pokerole"

// Entity types reported to rpg-toolkit
const (
	EntityTypeCharacter = "pokemon_character"
	EntityTypeTrainer   = "trainer"
)

// CharacterEntity wraps pokerole.Character to implement core.Entity
type CharacterEntity struct {
	*pokerole.Character
}

// GetID returns the character's instance ID
func (c *CharacterEntity) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *CharacterEntity) GetType() string {
	return EntityTypeCharacter
}

// TrainerEntity wraps pokerole.Trainer to implement core.Entity. Trainers
// have no ID of their own so the owning user's ID stands in.
type TrainerEntity struct {
	*pokerole.Trainer
	UserID string
}

// GetID returns the owning user's ID
func (t *TrainerEntity) GetID() string {
	return t.UserID
}

// GetType returns the entity type for rpg-toolkit
func (t *TrainerEntity) GetType() string {
	return EntityTypeTrainer
}

// WrapCharacter converts a pokerole.Character to a CharacterEntity
func WrapCharacter(character *pokerole.Character) *CharacterEntity {
	return &CharacterEntity{Character: character}
}

// WrapTrainer converts a pokerole.Trainer to a TrainerEntity
func WrapTrainer(userID string, trainer *pokerole.Trainer) *TrainerEntity {
	return &TrainerEntity{Trainer: trainer, UserID: userID}
}
