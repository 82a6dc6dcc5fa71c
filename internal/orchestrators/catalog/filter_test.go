package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/pokerole-api/internal/entities/pokerole"
	"github.com/KirkDiggler/pokerole-api/internal/orchestrators/catalog"
)

func TestSpeciesFilterMatch(t *testing.T) {
	pikachu := &pokerole.Species{
		Name: "Pikachu", Number: 25, Type1: "Electric",
		RecommendedRank: "Starter", GoodStarter: true,
		Strength: 2, Dexterity: 3, Special: 2,
	}
	alolanRaichu := &pokerole.Species{
		Name: "Alolan Raichu", Number: 26, Type1: "Electric", Type2: "Psychic",
		RecommendedRank: "Amateur", Special: 4,
	}
	sprigatito := &pokerole.Species{Name: "Sprigatito", Number: 906, Type1: "Grass"}

	tests := []struct {
		name    string
		filter  catalog.SpeciesFilter
		species *pokerole.Species
		want    bool
	}{
		{"empty filter matches", catalog.SpeciesFilter{}, pikachu, true},
		{"nil species never matches", catalog.SpeciesFilter{}, nil, false},
		{"national region matches", catalog.SpeciesFilter{Region: catalog.RegionNational}, sprigatito, true},
		{"dex range in region", catalog.SpeciesFilter{Region: "Kanto"}, pikachu, true},
		{"dex range outside region", catalog.SpeciesFilter{Region: "Johto"}, pikachu, false},
		{"open ended last region", catalog.SpeciesFilter{Region: "Paldea"}, sprigatito, true},
		{"regional form ignores dex number", catalog.SpeciesFilter{Region: "Kanto"}, alolanRaichu, false},
		{"regional form in its region", catalog.SpeciesFilter{Region: "Alola"}, alolanRaichu, true},
		{"name substring any case", catalog.SpeciesFilter{Name: "CHU"}, pikachu, true},
		{"name mismatch", catalog.SpeciesFilter{Name: "saur"}, pikachu, false},
		{"secondary type matches", catalog.SpeciesFilter{Types: []string{"Psychic"}}, alolanRaichu, true},
		{"no type in list", catalog.SpeciesFilter{Types: []string{"Water", "Fire"}}, pikachu, false},
		{"rank in list", catalog.SpeciesFilter{Ranks: []pokerole.Rank{pokerole.RankAmateur}}, alolanRaichu, true},
		{"rank not in list", catalog.SpeciesFilter{Ranks: []pokerole.Rank{pokerole.RankAmateur}}, pikachu, false},
		{"starter only", catalog.SpeciesFilter{StarterOnly: true}, alolanRaichu, false},
		{"min stat met", catalog.SpeciesFilter{Min: catalog.MinStats{Dexterity: 3}}, pikachu, true},
		{"min stat missed", catalog.SpeciesFilter{Min: catalog.MinStats{Special: 3}}, pikachu, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Match(tt.species))
		})
	}
}

func TestSpeciesFilterIsEmpty(t *testing.T) {
	assert.True(t, catalog.SpeciesFilter{}.IsEmpty())
	assert.True(t, catalog.SpeciesFilter{Region: catalog.RegionNational}.IsEmpty())
	assert.False(t, catalog.SpeciesFilter{StarterOnly: true}.IsEmpty())
	assert.False(t, catalog.SpeciesFilter{Min: catalog.MinStats{Insight: 1}}.IsEmpty())
}

func TestFilterSpeciesKeepsOrder(t *testing.T) {
	list := []*pokerole.Species{
		{Name: "Squirtle", Type1: "Water"},
		{Name: "Charmander", Type1: "Fire"},
		{Name: "Psyduck", Type1: "Water"},
	}

	got := catalog.FilterSpecies(list, catalog.SpeciesFilter{Types: []string{"Water"}})
	assert.Len(t, got, 2)
	assert.Equal(t, "Squirtle", got[0].Name)
	assert.Equal(t, "Psyduck", got[1].Name)
}

func TestRegionsStartWithNational(t *testing.T) {
	regions := catalog.Regions()
	assert.Equal(t, catalog.RegionNational, regions[0])
	assert.Contains(t, regions, "Galar")
}
