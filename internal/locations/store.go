// Package locations persists per-user saved locations in redis.
// Each user gets one hash keyed locations:<userID>, with location ids
// as fields and JSON records as values.
package locations

import (
	"context"
	"encoding/json"
	"errors"
	"sort"

	"github.com/google/uuid"
	redisv9 "github.com/redis/go-redis/v9"

	"github.com/benatkinsonstarling/tempus/internal/model"
	"github.com/benatkinsonstarling/tempus/internal/redis"
)

var ErrNotFound = errors.New("location not found")

// Store defines CRUD over a user's saved locations.
type Store interface {
	List(ctx context.Context, userID string) ([]model.SavedLocation, error)
	Save(ctx context.Context, userID string, req model.SaveLocationRequest) (*model.SavedLocation, error)
	Delete(ctx context.Context, userID, locationID string) error
	ToggleFavorite(ctx context.Context, userID, locationID string) (*model.SavedLocation, error)
}

// redisHash is the subset of the redis client the store needs.
type redisHash interface {
	HGet(ctx context.Context, key, field string) *redisv9.StringCmd
	HGetAll(ctx context.Context, key string) *redisv9.MapStringStringCmd
	HSet(ctx context.Context, key string, values ...interface{}) *redisv9.IntCmd
	HDel(ctx context.Context, key string, fields ...string) *redisv9.IntCmd
}

type store struct {
	client redisHash
}

// NewStore creates a redis-backed location store.
func NewStore() Store {
	return &store{client: redis.GetClient()}
}

// NewStoreWithClient creates a store over a specific redis client.
func NewStoreWithClient(client redisv9.UniversalClient) Store {
	return &store{client: client}
}

func userKey(userID string) string {
	return "locations:" + userID
}

// List returns the user's saved locations ordered by name.
func (s *store) List(ctx context.Context, userID string) ([]model.SavedLocation, error) {
	entries, err := s.client.HGetAll(ctx, userKey(userID)).Result()
	if err != nil {
		return nil, err
	}

	result := make([]model.SavedLocation, 0, len(entries))
	for _, raw := range entries {
		var loc model.SavedLocation
		if err := json.Unmarshal([]byte(raw), &loc); err != nil {
			continue
		}
		result = append(result, loc)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// Save stores a new location under a fresh id and returns it.
func (s *store) Save(ctx context.Context, userID string, req model.SaveLocationRequest) (*model.SavedLocation, error) {
	loc := &model.SavedLocation{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		IsFavorite: req.IsFavorite,
	}

	if err := s.put(ctx, userID, loc); err != nil {
		return nil, err
	}
	return loc, nil
}

// Delete removes a location. Deleting an unknown id returns ErrNotFound.
func (s *store) Delete(ctx context.Context, userID, locationID string) error {
	removed, err := s.client.HDel(ctx, userKey(userID), locationID).Result()
	if err != nil {
		return err
	}
	if removed == 0 {
		return ErrNotFound
	}
	return nil
}

// ToggleFavorite flips the favorite flag and returns the updated record.
func (s *store) ToggleFavorite(ctx context.Context, userID, locationID string) (*model.SavedLocation, error) {
	raw, err := s.client.HGet(ctx, userKey(userID), locationID).Result()
	if err != nil {
		if errors.Is(err, redisv9.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var loc model.SavedLocation
	if err := json.Unmarshal([]byte(raw), &loc); err != nil {
		return nil, err
	}

	loc.IsFavorite = !loc.IsFavorite
	if err := s.put(ctx, userID, &loc); err != nil {
		return nil, err
	}
	return &loc, nil
}

func (s *store) put(ctx context.Context, userID string, loc *model.SavedLocation) error {
	b, err := json.Marshal(loc)
	if err != nil {
		return err
	}
	return s.client.HSet(ctx, userKey(userID), loc.ID, b).Err()
}
