// Package referencecache caches reference documents and their path index in Redis
package referencecache

//go:generate mockgen -destination=mock/mock_repository.go -package=referencecachemock github.com/KirkDiggler/pokerole-api/internal/repositories/reference_cache Repository

import (
	"context"
	"time"
)

// Repository defines the interface for the reference data cache
type Repository interface {
	// GetIndex returns the cached name to path map for a kind
	// Returns errors.NotFound when the kind has not been indexed
	GetIndex(ctx context.Context, input GetIndexInput) (*GetIndexOutput, error)

	// SaveIndex replaces the cached name to path map for a kind
	SaveIndex(ctx context.Context, input SaveIndexInput) (*SaveIndexOutput, error)

	// GetDocument returns one cached document
	// Returns errors.NotFound on a cache miss
	GetDocument(ctx context.Context, input GetDocumentInput) (*GetDocumentOutput, error)

	// GetDocuments returns the cached documents among Names; misses are left out
	GetDocuments(ctx context.Context, input GetDocumentsInput) (*GetDocumentsOutput, error)

	// SaveDocument caches one document
	SaveDocument(ctx context.Context, input SaveDocumentInput) (*SaveDocumentOutput, error)
}

// GetIndexInput defines the input for reading an index
type GetIndexInput struct {
	Kind string
}

// GetIndexOutput defines the output for reading an index
type GetIndexOutput struct {
	Paths map[string]string
}

// SaveIndexInput defines the input for replacing an index
type SaveIndexInput struct {
	Kind  string
	Paths map[string]string
	// TTL overrides the configured expiry (optional)
	TTL time.Duration
}

// SaveIndexOutput defines the output for replacing an index
type SaveIndexOutput struct {
	Count int
}

// GetDocumentInput defines the input for reading a document
type GetDocumentInput struct {
	Kind string
	Name string
}

// GetDocumentOutput defines the output for reading a document
type GetDocumentOutput struct {
	Data []byte
}

// GetDocumentsInput defines the input for reading several documents
type GetDocumentsInput struct {
	Kind  string
	Names []string
}

// GetDocumentsOutput defines the output for reading several documents
type GetDocumentsOutput struct {
	Documents map[string][]byte
}

// SaveDocumentInput defines the input for caching a document
type SaveDocumentInput struct {
	Kind string
	Name string
	Data []byte
	// TTL overrides the configured expiry (optional)
	TTL time.Duration
}

// SaveDocumentOutput defines the output for caching a document
type SaveDocumentOutput struct{}
