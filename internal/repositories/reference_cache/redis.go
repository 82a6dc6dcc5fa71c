package referencecache

import (
	"context"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/pokerole-api/internal/errors"
	redisclient "github.com/KirkDiggler/pokerole-api/internal/redis"
)

const (
	// Key patterns:
	//   reference:index:{kind}       hash of name -> path
	//   reference:doc:{kind}:{name}  raw JSON document
	indexKeyPrefix    = "reference:index:"
	documentKeyPrefix = "reference:doc:"

	// DefaultTTL is how long cached reference data lives
	DefaultTTL = 24 * time.Hour

	errKindEmpty = "kind cannot be empty"
	errNameEmpty = "name cannot be empty"
)

// Config holds the configuration for the Redis cache
type Config struct {
	Client redisclient.Client
	// TTL for cached entries (optional, defaults to 24 hours)
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.TTL == 0 {
		c.TTL = DefaultTTL
	}
	if c.TTL < 0 {
		return errors.InvalidArgument("TTL must not be negative")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis-backed reference cache
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		ttl:    cfg.TTL,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) GetIndex(ctx context.Context, input GetIndexInput) (*GetIndexOutput, error) {
	if input.Kind == "" {
		return nil, errors.InvalidArgument(errKindEmpty)
	}

	paths, err := r.client.HGetAll(ctx, indexKey(input.Kind)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s index", input.Kind)
	}
	if len(paths) == 0 {
		return nil, errors.NotFoundf("%s index not cached", input.Kind)
	}

	return &GetIndexOutput{Paths: paths}, nil
}

func (r *redisRepository) SaveIndex(ctx context.Context, input SaveIndexInput) (*SaveIndexOutput, error) {
	if input.Kind == "" {
		return nil, errors.InvalidArgument(errKindEmpty)
	}

	key := indexKey(input.Kind)
	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	if len(input.Paths) > 0 {
		values := make([]interface{}, 0, len(input.Paths)*2)
		for name, path := range input.Paths {
			values = append(values, name, path)
		}
		pipe.HSet(ctx, key, values...)
		pipe.Expire(ctx, key, r.ttlFor(input.TTL))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store %s index", input.Kind)
	}

	return &SaveIndexOutput{Count: len(input.Paths)}, nil
}

func (r *redisRepository) GetDocument(ctx context.Context, input GetDocumentInput) (*GetDocumentOutput, error) {
	if input.Kind == "" {
		return nil, errors.InvalidArgument(errKindEmpty)
	}
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	data, err := r.client.Get(ctx, documentKey(input.Kind, input.Name)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("%s %q not cached", input.Kind, input.Name)
		}
		return nil, errors.Wrapf(err, "failed to read cached %s", input.Kind)
	}

	return &GetDocumentOutput{Data: data}, nil
}

func (r *redisRepository) GetDocuments(ctx context.Context, input GetDocumentsInput) (*GetDocumentsOutput, error) {
	if input.Kind == "" {
		return nil, errors.InvalidArgument(errKindEmpty)
	}

	docs := make(map[string][]byte, len(input.Names))
	if len(input.Names) == 0 {
		return &GetDocumentsOutput{Documents: docs}, nil
	}

	keys := make([]string, len(input.Names))
	for i, name := range input.Names {
		keys[i] = documentKey(input.Kind, name)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read cached %s documents", input.Kind)
	}
	for i, v := range values {
		if s, ok := v.(string); ok {
			docs[input.Names[i]] = []byte(s)
		}
	}

	return &GetDocumentsOutput{Documents: docs}, nil
}

func (r *redisRepository) SaveDocument(ctx context.Context, input SaveDocumentInput) (*SaveDocumentOutput, error) {
	if input.Kind == "" {
		return nil, errors.InvalidArgument(errKindEmpty)
	}
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}
	if len(input.Data) == 0 {
		return nil, errors.InvalidArgument("document data cannot be empty")
	}

	key := documentKey(input.Kind, input.Name)
	if err := r.client.Set(ctx, key, input.Data, r.ttlFor(input.TTL)).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to cache %s %q", input.Kind, input.Name)
	}

	return &SaveDocumentOutput{}, nil
}

func (r *redisRepository) ttlFor(override time.Duration) time.Duration {
	if override > 0 {
		return override
	}
	return r.ttl
}

func indexKey(kind string) string {
	return indexKeyPrefix + kind
}

func documentKey(kind, name string) string {
	return fmt.Sprintf("%s%s:%s", documentKeyPrefix, kind, name)
}
