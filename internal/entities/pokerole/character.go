package pokerole

import "strings"

// Stat is a value with a ceiling, used for attributes and vitals
type Stat struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// NewStat returns a full stat
func NewStat(value int) Stat {
	return Stat{Current: value, Max: value}
}

// Attributes are the five primary attributes
type Attributes struct {
	Strength  Stat `json:"strength"`
	Dexterity Stat `json:"dexterity"`
	Vitality  Stat `json:"vitality"`
	Special   Stat `json:"special"`
	Insight   Stat `json:"insight"`
}

// FightSkills are the combat skills
type FightSkills struct {
	Brawl   int `json:"brawl"`
	Channel int `json:"channel"`
	Clash   int `json:"clash"`
	Evasion int `json:"evasion"`
}

// SurvivalSkills are the field skills
type SurvivalSkills struct {
	Alert    int `json:"alert"`
	Athletic int `json:"athletic"`
	Nature   int `json:"nature"`
	Stealth  int `json:"stealth"`
}

// SocialSkills are the interaction skills
type SocialSkills struct {
	Allure     int `json:"allure"`
	Etiquette  int `json:"etiquette"`
	Intimidate int `json:"intimidate"`
	Perform    int `json:"perform"`
}

// Skills groups the twelve skills, each valued 0-5
type Skills struct {
	Fight    FightSkills    `json:"fight"`
	Survival SurvivalSkills `json:"survival"`
	Social   SocialSkills   `json:"social"`
}

// Contest holds the five contest stats, each valued 0-5
type Contest struct {
	Tough  int `json:"tough"`
	Cool   int `json:"cool"`
	Beauty int `json:"beauty"`
	Cute   int `json:"cute"`
	Clever int `json:"clever"`
}

// Combat holds quick-reference modifiers
type Combat struct {
	Accuracy int `json:"accuracy"`
	Damage   int `json:"damage"`
}

// StatBlock is the part of a sheet that dice pools draw from.
// Contest is nil for sheets without contest stats.
type StatBlock struct {
	Attributes *Attributes
	Skills     *Skills
	Contest    *Contest
}

// Character is a single creature owned by a player
type Character struct {
	ID          string     `json:"id"`
	DexID       int        `json:"dex_id"`
	Nickname    string     `json:"nickname"`
	SpeciesName string     `json:"species_name"`
	Type1       string     `json:"type1"`
	Type2       string     `json:"type2,omitempty"`
	Rank        Rank       `json:"rank"`
	Attributes  Attributes `json:"attributes"`
	Skills      Skills     `json:"skills"`
	HP          Stat       `json:"hp"`
	Will        Stat       `json:"will"`
	Moves       []string   `json:"moves"`
	Nature      string     `json:"nature"`
	Confidence  string     `json:"confidence"`
	Happiness   int        `json:"happiness"`
	Loyalty     int        `json:"loyalty"`
	Battles     int        `json:"battles"`
	Victories   int        `json:"victories"`
	Item        string     `json:"item"`
	Status      Status     `json:"status"`
	Accessory   string     `json:"accessory"`
	Contest     Contest    `json:"contest"`
	Combat      Combat     `json:"combat"`
	Size        string     `json:"size"`
	Weight      string     `json:"weight"`
	Image       string     `json:"image"`
}

// StatBlock exposes the character's attributes, skills and contest stats
func (c *Character) StatBlock() StatBlock {
	return StatBlock{
		Attributes: &c.Attributes,
		Skills:     &c.Skills,
		Contest:    &c.Contest,
	}
}

// Types returns the character's elemental types, skipping an empty second type
func (c *Character) Types() []string {
	if c.Type2 == "" {
		return []string{c.Type1}
	}
	return []string{c.Type1, c.Type2}
}

// KnowsMove reports whether name is already in the move list, ignoring case
func (c *Character) KnowsMove(name string) bool {
	for _, m := range c.Moves {
		if strings.EqualFold(m, name) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}
	out := *c
	if c.Moves != nil {
		out.Moves = append([]string(nil), c.Moves...)
	}
	return &out
}
