package rollsession

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/pokerole-api/internal/errors"
	"github.com/KirkDiggler/pokerole-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/pokerole-api/internal/redis"
)

// Key pattern: roll_session:{user_id}:{subject_type}:{subject_id}
const sessionKeyPrefix = "roll_session:"

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for roll sessions
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	rec := *input.Record
	stamp(&rec, r.clock.Now(), input.TTL)

	data, err := json.Marshal(rec)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal roll session")
	}

	ttl := rec.ExpiresAt.Sub(r.clock.Now())
	if err := r.client.Set(ctx, buildKey(rec.Key), data, ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store roll session in Redis")
	}

	return &SaveOutput{Record: &rec}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := input.Key.Validate(); err != nil {
		return nil, err
	}

	key := buildKey(input.Key)
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no roll session for %s", input.Key)
		}
		return nil, errors.Wrapf(err, "failed to get roll session from Redis")
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to unmarshal roll session")
	}

	// Expiry follows the injected clock, which Redis does not see
	if r.clock.Now().After(rec.ExpiresAt) {
		_ = r.client.Del(ctx, key)
		return nil, errors.NotFoundf("roll session for %s has expired", input.Key)
	}

	return &GetOutput{Record: &rec}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := input.Key.Validate(); err != nil {
		return nil, err
	}

	n, err := r.client.Del(ctx, buildKey(input.Key)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete roll session from Redis")
	}

	return &DeleteOutput{Deleted: n > 0}, nil
}

func buildKey(k Key) string {
	return sessionKeyPrefix + k.String()
}
