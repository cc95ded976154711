package notification

import (
	"context"
	"time"
)

// ViewStateStore persists the per-user, per-category "last viewed" cursor.
// A missing cursor means the user has never opened that view.
type ViewStateStore interface {
	Get(ctx context.Context, userID string, category Category) (*time.Time, error)
	Set(ctx context.Context, userID string, category Category, viewedAt time.Time) error
}
