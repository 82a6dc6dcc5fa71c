package pokerole

import "strconv"

// Starting values for a freshly caught creature
const (
	StartingHappiness    = 2
	StartingLoyalty      = 2
	StartingContestValue = 1
	WillBonus            = 2
)

// NewCharacterFromSpecies derives a starting Character from a species
// record. The derived values are computed once here and only change
// afterwards through explicit sheet edits.
func NewCharacterFromSpecies(id string, species *Species) *Character {
	rank := ParseRank(species.RecommendedRank)
	if species.RecommendedRank == "" {
		rank = RankStarter
	}

	return &Character{
		ID:          id,
		DexID:       species.Number,
		Nickname:    species.Name,
		SpeciesName: species.Name,
		Type1:       species.Type1,
		Type2:       species.Type2,
		Rank:        rank,
		Attributes: Attributes{
			Strength:  Stat{Current: species.Strength, Max: species.MaxStrength},
			Dexterity: Stat{Current: species.Dexterity, Max: species.MaxDexterity},
			Vitality:  Stat{Current: species.Vitality, Max: species.MaxVitality},
			Special:   Stat{Current: species.Special, Max: species.MaxSpecial},
			Insight:   Stat{Current: species.Insight, Max: species.MaxInsight},
		},
		HP:        NewStat(species.BaseHP),
		Will:      NewStat(species.Insight + WillBonus),
		Moves:     []string{},
		Happiness: StartingHappiness,
		Loyalty:   StartingLoyalty,
		Status:    StatusNeutral,
		Contest: Contest{
			Tough:  StartingContestValue,
			Cool:   StartingContestValue,
			Beauty: StartingContestValue,
			Cute:   StartingContestValue,
			Clever: StartingContestValue,
		},
		Size:   formatMeasure(species.Height.Meters, "m"),
		Weight: formatMeasure(species.Weight.Kilograms, "kg"),
		Image:  species.Image,
	}
}

func formatMeasure(v float64, unit string) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + unit
}
