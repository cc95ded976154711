package rediskv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/leavehub/leavehub-backend-go/internal/domain/notification"
	"github.com/redis/go-redis/v9"
)

// viewStateStoreImpl keeps the per-user viewed cursors in Redis. Keys are
// viewstate:<category>:<user>, values RFC3339 timestamps. Cursors are tiny
// and rebuildable, losing one only re-shows a badge.
type viewStateStoreImpl struct {
	client *redis.Client
}

func NewViewStateStore(client *redis.Client) notification.ViewStateStore {
	return &viewStateStoreImpl{client: client}
}

func (s *viewStateStoreImpl) Get(ctx context.Context, userID string, category notification.Category) (*time.Time, error) {
	raw, err := s.client.Get(ctx, viewStateKey(userID, category)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get view state: %w", err)
	}

	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return nil, fmt.Errorf("parse view state timestamp: %w", err)
	}
	return &t, nil
}

func (s *viewStateStoreImpl) Set(ctx context.Context, userID string, category notification.Category, viewedAt time.Time) error {
	value := viewedAt.UTC().Format(time.RFC3339Nano)
	if err := s.client.Set(ctx, viewStateKey(userID, category), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set view state: %w", err)
	}
	return nil
}

func viewStateKey(userID string, category notification.Category) string {
	return fmt.Sprintf("viewstate:%s:%s", category, userID)
}
