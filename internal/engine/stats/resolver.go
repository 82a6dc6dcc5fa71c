// Package stats resolves attribute, skill and contest names on a sheet to
// the number of dice they contribute.
package stats

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/pokerole-api/internal/entities/pokerole"
)

// Sheet is anything dice pools can be drawn from. Both characters and
// trainers satisfy it.
type Sheet interface {
	StatBlock() pokerole.StatBlock
}

type accessor func(b *pokerole.StatBlock) int

type entry struct {
	name string
	get  accessor
}

var attributes = []entry{
	{"strength", func(b *pokerole.StatBlock) int { return b.Attributes.Strength.Current }},
	{"dexterity", func(b *pokerole.StatBlock) int { return b.Attributes.Dexterity.Current }},
	{"vitality", func(b *pokerole.StatBlock) int { return b.Attributes.Vitality.Current }},
	{"special", func(b *pokerole.StatBlock) int { return b.Attributes.Special.Current }},
	{"insight", func(b *pokerole.StatBlock) int { return b.Attributes.Insight.Current }},
}

var skills = []entry{
	{"brawl", func(b *pokerole.StatBlock) int { return b.Skills.Fight.Brawl }},
	{"channel", func(b *pokerole.StatBlock) int { return b.Skills.Fight.Channel }},
	{"clash", func(b *pokerole.StatBlock) int { return b.Skills.Fight.Clash }},
	{"evasion", func(b *pokerole.StatBlock) int { return b.Skills.Fight.Evasion }},
	{"alert", func(b *pokerole.StatBlock) int { return b.Skills.Survival.Alert }},
	{"athletic", func(b *pokerole.StatBlock) int { return b.Skills.Survival.Athletic }},
	{"nature", func(b *pokerole.StatBlock) int { return b.Skills.Survival.Nature }},
	{"stealth", func(b *pokerole.StatBlock) int { return b.Skills.Survival.Stealth }},
	{"allure", func(b *pokerole.StatBlock) int { return b.Skills.Social.Allure }},
	{"etiquette", func(b *pokerole.StatBlock) int { return b.Skills.Social.Etiquette }},
	{"intimidate", func(b *pokerole.StatBlock) int { return b.Skills.Social.Intimidate }},
	{"perform", func(b *pokerole.StatBlock) int { return b.Skills.Social.Perform }},
}

var contestStats = []entry{
	{"tough", contest(func(c *pokerole.Contest) int { return c.Tough })},
	{"cool", contest(func(c *pokerole.Contest) int { return c.Cool })},
	{"beauty", contest(func(c *pokerole.Contest) int { return c.Beauty })},
	{"cute", contest(func(c *pokerole.Contest) int { return c.Cute })},
	{"clever", contest(func(c *pokerole.Contest) int { return c.Clever })},
}

// lookup is probed in order: attributes, then skills, then contest stats.
var lookup = concat(attributes, skills, contestStats)

// byName indexes lookup; built once at init
var byName = func() map[string]accessor {
	m := make(map[string]accessor, len(lookup))
	for _, e := range lookup {
		if _, dup := m[e.name]; !dup {
			m[e.name] = e.get
		}
	}
	return m
}()

func concat(groups ...[]entry) []entry {
	var out []entry
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func contest(f func(c *pokerole.Contest) int) accessor {
	return func(b *pokerole.StatBlock) int {
		if b.Contest == nil {
			return 0
		}
		return f(b.Contest)
	}
}

// Resolve returns the number of dice token contributes on sheet.
//
// A literal integer (including signed forms like "+2") is returned as-is.
// Anything else is matched case-insensitively against attribute, skill and
// contest names. Unknown names resolve to 0 rather than failing, since the
// reference data does not spell every token consistently. The result is
// never negative.
func Resolve(sheet Sheet, token string) int {
	trimmed := strings.TrimSpace(token)
	if n, err := strconv.Atoi(trimmed); err == nil {
		return clamp(n)
	}

	if sheet == nil {
		return 0
	}

	get, ok := byName[strings.ToLower(trimmed)]
	if !ok {
		return 0
	}

	block := sheet.StatBlock()
	if block.Attributes == nil || block.Skills == nil {
		return 0
	}
	return clamp(get(&block))
}

// Known reports whether token names a stat or is a literal number
func Known(token string) bool {
	trimmed := strings.TrimSpace(token)
	if _, err := strconv.Atoi(trimmed); err == nil {
		return true
	}
	_, ok := byName[strings.ToLower(trimmed)]
	return ok
}

// Names returns every resolvable stat name in probe order
func Names() []string {
	out := make([]string, len(lookup))
	for i, e := range lookup {
		out[i] = e.name
	}
	return out
}

// IsAttribute reports whether name is one of the five attributes
func IsAttribute(name string) bool {
	return in(attributes, name)
}

// IsSkill reports whether name is one of the twelve skills
func IsSkill(name string) bool {
	return in(skills, name)
}

func in(group []entry, name string) bool {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, e := range group {
		if e.name == n {
			return true
		}
	}
	return false
}

func clamp(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
