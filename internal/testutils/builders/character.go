// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/pokerole-api/internal/entities/pokerole"
)

// CharacterBuilder provides a fluent interface for building test Character instances
type CharacterBuilder struct {
	character *pokerole.Character
}

// NewCharacterBuilder creates a new builder with minimal defaults: a
// Starter rank Water type with every attribute at 2 and no skills
func NewCharacterBuilder() *CharacterBuilder {
	two := pokerole.Stat{Current: 2, Max: 5}
	return &CharacterBuilder{
		character: &pokerole.Character{
			ID:          "mon-test-123",
			DexID:       7,
			Nickname:    "Squirtle",
			SpeciesName: "Squirtle",
			Type1:       "Water",
			Rank:        pokerole.RankStarter,
			Attributes: pokerole.Attributes{
				Strength:  two,
				Dexterity: two,
				Vitality:  two,
				Special:   two,
				Insight:   two,
			},
			HP:        pokerole.NewStat(4),
			Will:      pokerole.NewStat(4),
			Moves:     []string{},
			Happiness: 2,
			Loyalty:   2,
			Status:    pokerole.StatusNeutral,
		},
	}
}

// WithID sets the instance ID
func (b *CharacterBuilder) WithID(id string) *CharacterBuilder {
	b.character.ID = id
	return b
}

// WithSpecies sets the species name and nickname
func (b *CharacterBuilder) WithSpecies(name string) *CharacterBuilder {
	b.character.SpeciesName = name
	b.character.Nickname = name
	return b
}

// WithTypes sets both elemental types
func (b *CharacterBuilder) WithTypes(type1, type2 string) *CharacterBuilder {
	b.character.Type1 = type1
	b.character.Type2 = type2
	return b
}

// WithRank sets the rank
func (b *CharacterBuilder) WithRank(rank pokerole.Rank) *CharacterBuilder {
	b.character.Rank = rank
	return b
}

// WithStrength sets current strength
func (b *CharacterBuilder) WithStrength(v int) *CharacterBuilder {
	b.character.Attributes.Strength.Current = v
	return b
}

// WithDexterity sets current dexterity
func (b *CharacterBuilder) WithDexterity(v int) *CharacterBuilder {
	b.character.Attributes.Dexterity.Current = v
	return b
}

// WithSpecial sets current special
func (b *CharacterBuilder) WithSpecial(v int) *CharacterBuilder {
	b.character.Attributes.Special.Current = v
	return b
}

// WithInsight sets current insight
func (b *CharacterBuilder) WithInsight(v int) *CharacterBuilder {
	b.character.Attributes.Insight.Current = v
	return b
}

// WithSkills replaces all skills
func (b *CharacterBuilder) WithSkills(skills pokerole.Skills) *CharacterBuilder {
	b.character.Skills = skills
	return b
}

// WithContest replaces the contest stats
func (b *CharacterBuilder) WithContest(contest pokerole.Contest) *CharacterBuilder {
	b.character.Contest = contest
	return b
}

// WithMoves sets the known moves in learning order
func (b *CharacterBuilder) WithMoves(moves ...string) *CharacterBuilder {
	b.character.Moves = append([]string{}, moves...)
	return b
}

// Build returns the constructed Character
func (b *CharacterBuilder) Build() *pokerole.Character {
	return b.character
}
