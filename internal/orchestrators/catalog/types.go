package catalog

import (
	"github.com/KirkDiggler/pokerole-api/internal/entities/pokerole"
)

// SyncInput controls how much reference data is pulled into the cache
type SyncInput struct {
	// IndexOnly refreshes the path index without fetching species and item documents
	IndexOnly bool
}

// SyncOutput reports what was cached
type SyncOutput struct {
	Indexed        map[string]int
	SpeciesFetched int
	ItemsFetched   int
}

// GetSpeciesInput names a species
type GetSpeciesInput struct {
	Name string
}

// GetSpeciesOutput contains the species
type GetSpeciesOutput struct {
	Species *pokerole.Species
}

// GetMoveInput names a move
type GetMoveInput struct {
	Name string
}

// GetMoveOutput contains the move
type GetMoveOutput struct {
	Move *pokerole.MoveData
}

// GetAbilityInput names an ability
type GetAbilityInput struct {
	Name string
}

// GetAbilityOutput contains the ability
type GetAbilityOutput struct {
	Ability *pokerole.Ability
}

// GetNatureInput names a nature
type GetNatureInput struct {
	Name string
}

// GetNatureOutput contains the nature
type GetNatureOutput struct {
	Nature *pokerole.Nature
}

// GetItemInput names an item
type GetItemInput struct {
	Name string
}

// GetItemOutput contains the item
type GetItemOutput struct {
	Item *pokerole.Item
}

// SearchSpeciesInput filters the species list
type SearchSpeciesInput struct {
	Filter SpeciesFilter
	// Limit caps the number of results (optional)
	Limit int
}

// SearchSpeciesOutput lists matching species sorted by dex number
type SearchSpeciesOutput struct {
	Species []*pokerole.Species
	// Total counts every match before Limit is applied
	Total int
}

// ListNamesInput selects a reference kind
type ListNamesInput struct {
	Kind string
}

// ListNamesOutput lists the document names of a kind in sorted order
type ListNamesOutput struct {
	Names []string
}
