// Package roster provides the interface for roster persistence
package roster

//go:generate mockgen -destination=mock/mock_repository.go -package=rostermock github.com/KirkDiggler/pokerole-api/internal/repositories/roster Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/pokerole-api/internal/entities/pokerole"
)

// Repository defines the interface for roster persistence.
// A roster document holds a player's party, boxes and trainer sheet.
type Repository interface {
	// Get retrieves a user's roster, normalized to the fixed party and box sizes
	// Returns errors.InvalidArgument for an empty user ID
	// Returns errors.NotFound if the user has no roster
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save creates or replaces a user's roster
	// Returns errors.InvalidArgument for an empty user ID or nil roster
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete removes a user's roster
	// Returns errors.NotFound if the user has no roster
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListUserIDs returns every user with a stored roster
	// Returns errors.Internal for storage failures
	ListUserIDs(ctx context.Context, input ListUserIDsInput) (*ListUserIDsOutput, error)
}

// GetInput defines the input for getting a roster
type GetInput struct {
	UserID string
}

// GetOutput defines the output for getting a roster
type GetOutput struct {
	Roster    *pokerole.Roster
	UpdatedAt time.Time
	// Normalized is true when the stored document had to be padded or repaired
	Normalized bool
}

// SaveInput defines the input for saving a roster
type SaveInput struct {
	UserID string
	Roster *pokerole.Roster
}

// SaveOutput defines the output for saving a roster
type SaveOutput struct {
	UpdatedAt time.Time
}

// DeleteInput defines the input for deleting a roster
type DeleteInput struct {
	UserID string
}

// DeleteOutput defines the output for deleting a roster
type DeleteOutput struct{}

// ListUserIDsInput defines the input for listing stored rosters
type ListUserIDsInput struct {
	// BatchSize is the SCAN count hint (optional)
	BatchSize int64
}

// ListUserIDsOutput defines the output for listing stored rosters
type ListUserIDsOutput struct {
	UserIDs []string
}
