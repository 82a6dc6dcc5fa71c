package rollsession

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/KirkDiggler/pokerole-api/internal/errors"
	"github.com/KirkDiggler/pokerole-api/internal/pkg/clock"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	store map[Key][]byte
}

// NewInMemory creates a new in-memory repository. A nil clock uses real time.
func NewInMemory(clk clock.Clock) *InMemoryRepository {
	if clk == nil {
		clk = clock.New()
	}
	return &InMemoryRepository{
		clock: clk,
		store: make(map[Key][]byte),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Save stores a record, replacing any previous one for its key
func (r *InMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	rec := *input.Record
	stamp(&rec, r.clock.Now(), input.TTL)

	// Stored encoded so callers never share session slices with the store
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal roll session")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.store[rec.Key] = data

	return &SaveOutput{Record: &rec}, nil
}

// Get retrieves a record by key
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if err := input.Key.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	data, exists := r.store[input.Key]
	r.mu.RUnlock()
	if !exists {
		return nil, errors.NotFoundf("no roll session for %s", input.Key)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to unmarshal roll session")
	}

	if r.clock.Now().After(rec.ExpiresAt) {
		r.mu.Lock()
		delete(r.store, input.Key)
		r.mu.Unlock()
		return nil, errors.NotFoundf("roll session for %s has expired", input.Key)
	}

	return &GetOutput{Record: &rec}, nil
}

// Delete removes a record by key
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := input.Key.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, exists := r.store[input.Key]
	delete(r.store, input.Key)

	return &DeleteOutput{Deleted: exists}, nil
}
