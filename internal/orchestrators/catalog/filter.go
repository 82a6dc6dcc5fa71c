package catalog

import (
	"strings"

	"github.com/KirkDiggler/pokerole-api/internal/entities/pokerole"
)

// RegionNational disables the region filter
const RegionNational = "National"

type dexRange struct{ lo, hi int }

var regionRanges = map[string]dexRange{
	"Kanto":  {1, 151},
	"Johto":  {152, 251},
	"Hoenn":  {252, 386},
	"Sinnoh": {387, 493},
	"Unova":  {494, 649},
	"Kalos":  {650, 721},
	"Alola":  {722, 809},
	"Galar":  {810, 905},
	"Paldea": {906, 2000},
}

// Regional forms belong to the region they were introduced in, whatever their dex number
var regionalForms = []struct {
	marker string
	region string
}{
	{"alolan", "Alola"},
	{"galarian", "Galar"},
	{"paldean", "Paldea"},
	{"hisuian", "Sinnoh"},
}

// Regions returns the recognised region names, National first
func Regions() []string {
	return []string{RegionNational, "Kanto", "Johto", "Hoenn", "Sinnoh", "Unova", "Kalos", "Alola", "Galar", "Paldea"}
}

// MinStats holds lower bounds on base attributes; zero means no bound
type MinStats struct {
	Strength  int
	Dexterity int
	Vitality  int
	Special   int
	Insight   int
}

// SpeciesFilter narrows a species list. Empty fields match everything.
type SpeciesFilter struct {
	Region string
	// Name matches case-insensitively anywhere in the species name
	Name string
	// Types matches a species having any of them
	Types []string
	// Ranks matches the recommended rank
	Ranks       []pokerole.Rank
	StarterOnly bool
	Min         MinStats
}

// IsEmpty reports whether the filter matches everything
func (f SpeciesFilter) IsEmpty() bool {
	return (f.Region == "" || f.Region == RegionNational) &&
		strings.TrimSpace(f.Name) == "" &&
		len(f.Types) == 0 &&
		len(f.Ranks) == 0 &&
		!f.StarterOnly &&
		f.Min == MinStats{}
}

// Match reports whether s passes every set criterion
func (f SpeciesFilter) Match(s *pokerole.Species) bool {
	if s == nil {
		return false
	}
	if !f.matchRegion(s) {
		return false
	}
	if term := strings.ToLower(strings.TrimSpace(f.Name)); term != "" &&
		!strings.Contains(strings.ToLower(s.Name), term) {
		return false
	}
	if len(f.Types) > 0 && !f.matchType(s) {
		return false
	}
	if len(f.Ranks) > 0 && !f.matchRank(s) {
		return false
	}
	if f.StarterOnly && !s.GoodStarter {
		return false
	}
	return s.Strength >= f.Min.Strength &&
		s.Dexterity >= f.Min.Dexterity &&
		s.Vitality >= f.Min.Vitality &&
		s.Special >= f.Min.Special &&
		s.Insight >= f.Min.Insight
}

func (f SpeciesFilter) matchRegion(s *pokerole.Species) bool {
	r, ok := regionRanges[f.Region]
	if !ok {
		return true
	}
	name := strings.ToLower(s.Name)
	for _, form := range regionalForms {
		if strings.Contains(name, form.marker) {
			return form.region == f.Region
		}
	}
	return s.Number >= r.lo && s.Number <= r.hi
}

func (f SpeciesFilter) matchType(s *pokerole.Species) bool {
	for _, t := range f.Types {
		if s.HasType(t) {
			return true
		}
	}
	return false
}

func (f SpeciesFilter) matchRank(s *pokerole.Species) bool {
	rank := pokerole.ParseRank(s.RecommendedRank)
	for _, r := range f.Ranks {
		if r == rank {
			return true
		}
	}
	return false
}

// FilterSpecies returns the species matching f, keeping their order
func FilterSpecies(species []*pokerole.Species, f SpeciesFilter) []*pokerole.Species {
	out := make([]*pokerole.Species, 0, len(species))
	for _, s := range species {
		if f.Match(s) {
			out = append(out, s)
		}
	}
	return out
}
