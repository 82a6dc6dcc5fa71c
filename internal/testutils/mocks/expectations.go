// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/pokerole-api/internal/entities/pokerole"
	"github.com/KirkDiggler/pokerole-api/internal/orchestrators/catalog"
	catalogmock "github.com/KirkDiggler/pokerole-api/internal/orchestrators/catalog/mock"
)

// ExpectSpeciesLookup sets up a single catalog lookup of any species name
// returning species
func ExpectSpeciesLookup(mockCatalog *catalogmock.MockService, species *pokerole.Species) {
	mockCatalog.EXPECT().
		GetSpecies(gomock.Any(), gomock.Any()).
		Return(&catalog.GetSpeciesOutput{Species: species}, nil)
}

// ExpectLearnsetLookup sets up the lookups a move change performs: the move
// is canonicalized first, then the character's species is loaded for its
// learnset
func ExpectLearnsetLookup(mockCatalog *catalogmock.MockService, move *pokerole.MoveData, species *pokerole.Species) {
	gomock.InOrder(
		mockCatalog.EXPECT().
			GetMove(gomock.Any(), gomock.Any()).
			Return(&catalog.GetMoveOutput{Move: move}, nil),
		mockCatalog.EXPECT().
			GetSpecies(gomock.Any(), &catalog.GetSpeciesInput{Name: species.Name}).
			Return(&catalog.GetSpeciesOutput{Species: species}, nil),
	)
}
