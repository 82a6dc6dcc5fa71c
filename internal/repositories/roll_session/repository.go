// Package rollsession stores the active dice check of each subject
package rollsession

//go:generate mockgen -destination=mock/mock_repository.go -package=rollsessionmock github.com/KirkDiggler/pokerole-api/internal/repositories/roll_session Repository

import (
	"context"
	"fmt"
	"time"

	"github.com/KirkDiggler/pokerole-api/internal/engine/roll"
	"github.com/KirkDiggler/pokerole-api/internal/entities/pokerole"
	"github.com/KirkDiggler/pokerole-api/internal/errors"
)

// DefaultTTL is how long an untouched session lives
const DefaultTTL = 15 * time.Minute

// Pending stages
const (
	StageAccuracy = "accuracy"
	StageDamage   = "damage"
)

// Key identifies the subject a session belongs to. A user has at most one
// active session per subject.
type Key struct {
	UserID      string `json:"user_id"`
	SubjectType string `json:"subject_type"`
	SubjectID   string `json:"subject_id"`
}

// Validate checks that every part of the key is set
func (k Key) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("UserID", k.UserID, vb)
	errors.ValidateRequired("SubjectType", k.SubjectType, vb)
	errors.ValidateRequired("SubjectID", k.SubjectID, vb)
	return vb.Build()
}

func (k Key) String() string {
	return fmt.Sprintf("%s:%s:%s", k.UserID, k.SubjectType, k.SubjectID)
}

// PendingChoice records a move check waiting for the player to pick an
// attribute out of an either-or pool
type PendingChoice struct {
	Stage   string             `json:"stage"`
	Move    *pokerole.MoveData `json:"move"`
	Options []string           `json:"options"`
}

// Record is the stored state for one subject. Pending is set while a
// choice is outstanding. During a damage choice Session still holds the
// accuracy result the damage follows.
type Record struct {
	Key
	Session   *roll.Session  `json:"session,omitempty"`
	Pending   *PendingChoice `json:"pending,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	ExpiresAt time.Time      `json:"expires_at"`
}

// Repository defines the interface for roll session storage
type Repository interface {
	// Save creates or replaces the record for its key and restarts its TTL
	// Returns errors.InvalidArgument for a nil record or incomplete key
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get retrieves the record for a key
	// Returns errors.NotFound when there is none or it has expired
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes the record for a key; deleting a missing record is not an error
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// SaveInput contains the record to store
type SaveInput struct {
	Record *Record
	// TTL overrides DefaultTTL (optional)
	TTL time.Duration
}

// SaveOutput contains the stored record with its timestamps filled in
type SaveOutput struct {
	Record *Record
}

// GetInput contains the key to look up
type GetInput struct {
	Key Key
}

// GetOutput contains the stored record
type GetOutput struct {
	Record *Record
}

// DeleteInput contains the key to remove
type DeleteInput struct {
	Key Key
}

// DeleteOutput reports whether a record was removed
type DeleteOutput struct {
	Deleted bool
}

func validateSave(input SaveInput) error {
	if input.Record == nil {
		return errors.InvalidArgument("record cannot be nil")
	}
	if input.TTL < 0 {
		return errors.InvalidArgument("TTL must not be negative")
	}
	return input.Record.Key.Validate()
}

// stamp fills in the timestamps of a record being saved
func stamp(rec *Record, now time.Time, ttl time.Duration) {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.ExpiresAt = now.Add(ttl)
}
