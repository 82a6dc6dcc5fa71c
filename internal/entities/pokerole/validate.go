package pokerole

import (
	"fmt"

	"github.com/KirkDiggler/pokerole-api/internal/errors"
)

// Sheet limits
const (
	MaxSkill     = 5
	MaxContest   = 5
	MaxHappiness = 5
	MaxLoyalty   = 5
	// MaxAttribute caps the ceiling of any attribute
	MaxAttribute = 10
)

// Validate checks a character sheet against the sheet limits
func (c *Character) Validate() error {
	vb := errors.NewValidationBuilder()

	validateAttributes(c.Attributes, vb)
	validateSkills(c.Skills, vb)
	for _, v := range contestValues(c.Contest) {
		errors.ValidateRange("contest."+v.name, v.value, 0, MaxContest, vb)
	}
	validateVital("hp", c.HP, vb)
	validateVital("will", c.Will, vb)

	errors.ValidateRange("happiness", c.Happiness, 0, MaxHappiness, vb)
	errors.ValidateRange("loyalty", c.Loyalty, 0, MaxLoyalty, vb)
	errors.ValidateNonNegative("battles", c.Battles, vb)
	errors.ValidateNonNegative("victories", c.Victories, vb)
	if c.Victories > c.Battles {
		vb.Field("victories", "cannot exceed battles")
	}

	if !c.Rank.IsValid() {
		vb.InvalidField("rank", fmt.Sprintf("unknown rank %q", c.Rank))
	}
	if _, ok := ParseStatus(string(c.Status)); !ok {
		vb.InvalidField("status", fmt.Sprintf("unknown status %q", c.Status))
	}

	return vb.Build()
}

// Validate checks a trainer sheet against the sheet limits
func (t *Trainer) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("name", t.Name, vb)
	errors.ValidateNonNegative("age", t.Age, vb)
	errors.ValidateNonNegative("money", t.Money, vb)
	errors.ValidateNonNegative("confidence", t.Confidence, vb)
	errors.ValidateNonNegative("pokedex.seen", t.Pokedex.Seen, vb)
	errors.ValidateNonNegative("pokedex.caught", t.Pokedex.Caught, vb)
	if t.Pokedex.Caught > t.Pokedex.Seen {
		vb.Field("pokedex.caught", "cannot exceed seen")
	}

	validateAttributes(t.Attributes, vb)
	validateSkills(t.Skills, vb)
	validateVital("hp", t.HP, vb)
	validateVital("will", t.Will, vb)

	for _, pocket := range []Pocket{PocketMain, PocketKey} {
		for i, item := range *t.Inventory.Pocket(pocket) {
			field := fmt.Sprintf("inventory.%s[%d]", pocket, i)
			errors.ValidateRequired(field+".name", item.Name, vb)
			errors.ValidateNonNegative(field+".quantity", item.Quantity, vb)
		}
	}
	for tier, n := range t.Inventory.Potions {
		errors.ValidateNonNegative("inventory.potions."+string(tier), n, vb)
	}

	return vb.Build()
}

type namedValue struct {
	name  string
	value int
}

func validateAttributes(a Attributes, vb *errors.ValidationBuilder) {
	for _, attr := range []struct {
		name string
		stat Stat
	}{
		{"strength", a.Strength},
		{"dexterity", a.Dexterity},
		{"vitality", a.Vitality},
		{"special", a.Special},
		{"insight", a.Insight},
	} {
		errors.ValidateRange("attributes."+attr.name+".max", attr.stat.Max, 1, MaxAttribute, vb)
		errors.ValidateRange("attributes."+attr.name, attr.stat.Current, 0, attr.stat.Max, vb)
	}
}

func validateSkills(s Skills, vb *errors.ValidationBuilder) {
	for _, v := range skillValues(s) {
		errors.ValidateRange("skills."+v.name, v.value, 0, MaxSkill, vb)
	}
}

func validateVital(name string, s Stat, vb *errors.ValidationBuilder) {
	errors.ValidateNonNegative(name+".max", s.Max, vb)
	errors.ValidateRange(name, s.Current, 0, s.Max, vb)
}

func skillValues(s Skills) []namedValue {
	return []namedValue{
		{"brawl", s.Fight.Brawl},
		{"channel", s.Fight.Channel},
		{"clash", s.Fight.Clash},
		{"evasion", s.Fight.Evasion},
		{"alert", s.Survival.Alert},
		{"athletic", s.Survival.Athletic},
		{"nature", s.Survival.Nature},
		{"stealth", s.Survival.Stealth},
		{"allure", s.Social.Allure},
		{"etiquette", s.Social.Etiquette},
		{"intimidate", s.Social.Intimidate},
		{"perform", s.Social.Perform},
	}
}

func contestValues(c Contest) []namedValue {
	return []namedValue{
		{"tough", c.Tough},
		{"cool", c.Cool},
		{"beauty", c.Beauty},
		{"cute", c.Cute},
		{"clever", c.Clever},
	}
}
