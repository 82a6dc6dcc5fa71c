package pokerole_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/pokerole-api/internal/entities/pokerole"
	"github.com/KirkDiggler/pokerole-api/internal/errors"
)

func validCharacter() *pokerole.Character {
	return pokerole.NewCharacterFromSpecies("mon-1", testSpecies())
}

func TestCharacterValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *pokerole.Character)
		field  string
	}{
		{"fresh character is valid", func(*pokerole.Character) {}, ""},
		{"attribute above max", func(c *pokerole.Character) { c.Attributes.Strength.Current = c.Attributes.Strength.Max + 1 }, "attributes.strength"},
		{"attribute negative", func(c *pokerole.Character) { c.Attributes.Insight.Current = -1 }, "attributes.insight"},
		{"attribute ceiling zero", func(c *pokerole.Character) { c.Attributes.Special = pokerole.Stat{} }, "attributes.special.max"},
		{"skill above five", func(c *pokerole.Character) { c.Skills.Fight.Brawl = 6 }, "skills.brawl"},
		{"contest negative", func(c *pokerole.Character) { c.Contest.Cute = -1 }, "contest.cute"},
		{"hp above max", func(c *pokerole.Character) { c.HP.Current = c.HP.Max + 1 }, "hp"},
		{"happiness above five", func(c *pokerole.Character) { c.Happiness = 6 }, "happiness"},
		{"negative battles", func(c *pokerole.Character) { c.Battles = -1 }, "battles"},
		{"victories above battles", func(c *pokerole.Character) { c.Victories = 1 }, "victories"},
		{"unknown rank", func(c *pokerole.Character) { c.Rank = "Legend" }, "rank"},
		{"unknown status", func(c *pokerole.Character) { c.Status = "Dizzy" }, "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCharacter()
			tt.mutate(c)

			err := c.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
			fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
			require.True(t, ok)
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestTrainerValidate(t *testing.T) {
	tr := pokerole.NewTrainer()
	require.NoError(t, tr.Validate())

	tr.Money = -1
	tr.Pokedex = pokerole.Pokedex{Seen: 1, Caught: 2}
	tr.Inventory.Main = append(tr.Inventory.Main, pokerole.InventoryItem{Name: "", Quantity: -2})
	tr.Inventory.Potions[pokerole.PotionSuper] = -1

	err := tr.Validate()
	require.Error(t, err)
	fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	require.True(t, ok)
	assert.Contains(t, fields, "money")
	assert.Contains(t, fields, "pokedex.caught")
	assert.Contains(t, fields, "inventory.main[0].name")
	assert.Contains(t, fields, "inventory.main[0].quantity")
	assert.Contains(t, fields, "inventory.potions.Super Potion")
}
