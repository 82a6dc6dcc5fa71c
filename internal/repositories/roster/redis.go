package roster

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/pokerole-api/internal/entities/pokerole"
	"github.com/KirkDiggler/pokerole-api/internal/errors"
	"github.com/KirkDiggler/pokerole-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/pokerole-api/internal/redis"
)

const (
	// Key pattern: roster:{user_id}
	rosterKeyPrefix = "roster:"

	defaultScanCount = 100

	errUserIDEmpty = "user ID cannot be empty"
	errRosterNil   = "roster cannot be nil"
)

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
		c.Clock = clock.New()
	}
	return nil
}

// document is the stored form of a roster
type document struct {
	UserID    string           `json:"user_id"`
	Roster    *pokerole.Roster `json:"roster"`
	UpdatedAt time.Time        `json:"updated_at"`
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for rosters
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

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	data, err := r.client.Get(ctx, buildKey(input.UserID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("roster for user %s not found", input.UserID)
		}
		return nil, errors.Wrapf(err, "failed to get roster from Redis")
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "failed to unmarshal roster for user %s", input.UserID)
	}
	if doc.Roster == nil {
		doc.Roster = &pokerole.Roster{}
	}

	normalized := doc.Roster.Normalize()

	return &GetOutput{
		Roster:     doc.Roster,
		UpdatedAt:  doc.UpdatedAt,
		Normalized: normalized,
	}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}
	if input.Roster == nil {
		return nil, errors.InvalidArgument(errRosterNil)
	}

	input.Roster.Normalize()
	doc := document{
		UserID:    input.UserID,
		Roster:    input.Roster,
		UpdatedAt: r.clock.Now().UTC(),
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal roster")
	}

	if err := r.client.Set(ctx, buildKey(input.UserID), data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store roster in Redis")
	}

	return &SaveOutput{UpdatedAt: doc.UpdatedAt}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	deleted, err := r.client.Del(ctx, buildKey(input.UserID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete roster from Redis")
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("roster for user %s not found", input.UserID)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListUserIDs(ctx context.Context, input ListUserIDsInput) (*ListUserIDsOutput, error) {
	count := input.BatchSize
	if count <= 0 {
		count = defaultScanCount
	}

	var userIDs []string
	iter := r.client.Scan(ctx, 0, rosterKeyPrefix+"*", count).Iterator()
	for iter.Next(ctx) {
		userIDs = append(userIDs, strings.TrimPrefix(iter.Val(), rosterKeyPrefix))
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to scan rosters")
	}

	sort.Strings(userIDs)
	return &ListUserIDsOutput{UserIDs: userIDs}, nil
}

func buildKey(userID string) string {
	return fmt.Sprintf("%s%s", rosterKeyPrefix, userID)
}
