package testutils

import (
	"github.com/KirkDiggler/pokerole-api/internal/entities/pokerole"
)

// Reference fixtures shared across packages
const (
	TestUserID      = "user-test-001"
	TestSpeciesName = "Squirtle"
)

// CreateTestSpecies returns a small Water type species with a learnset
// spanning several ranks
func CreateTestSpecies() *pokerole.Species {
	return &pokerole.Species{
		Number:          7,
		DexID:           "#007",
		Name:            TestSpeciesName,
		Type1:           "Water",
		BaseHP:          4,
		Strength:        2,
		MaxStrength:     4,
		Dexterity:       2,
		MaxDexterity:    4,
		Vitality:        2,
		MaxVitality:     4,
		Special:         2,
		MaxSpecial:      4,
		Insight:         2,
		MaxInsight:      4,
		Ability1:        "Torrent",
		RecommendedRank: "Starter",
		Height:          pokerole.Height{Meters: 0.5, Feet: 1.6},
		Weight:          pokerole.Weight{Kilograms: 9, Pounds: 19.8},
		Image:           "Squirtle.png",
		Moves: []pokerole.LearnsetEntry{
			{Learned: "Starter", Name: "Tackle"},
			{Learned: "Starter", Name: "Tail Whip"},
			{Learned: "Beginner", Name: "Water Gun"},
			{Learned: "Beginner", Name: "Withdraw"},
			{Learned: "Amateur", Name: "Bite"},
			{Learned: "Ace", Name: "Aqua Tail"},
			{Learned: "Pro", Name: "Hydro Pump"},
		},
	}
}

// CreateTestMove returns a damaging Water move with a plain accuracy pool
func CreateTestMove() *pokerole.MoveData {
	return &pokerole.MoveData{
		Name:        "Water Gun",
		Type:        "Water",
		Power:       2,
		Accuracy1:   "Dexterity",
		Accuracy2:   "Channel",
		Damage1:     "Special",
		Damage2:     "2",
		Target:      "Foe",
		Description: "The user shoots a jet of water.",
		Category:    "Special",
	}
}

// CreateTestChoiceMove returns a move whose accuracy pool offers a choice
func CreateTestChoiceMove() *pokerole.MoveData {
	return &pokerole.MoveData{
		Name:      "Aqua Tail",
		Type:      "Water",
		Power:     3,
		Accuracy1: "Strength/Dexterity",
		Accuracy2: "Brawl",
		Damage1:   "Strength",
		Target:    "Foe",
		Category:  "Physical",
	}
}

// CreateTestNature returns a nature record
func CreateTestNature(name, confidence string) *pokerole.Nature {
	return &pokerole.Nature{
		Name:        name,
		Keywords:    []string{"steady"},
		Description: name + " nature",
		Confidence:  confidence,
	}
}
