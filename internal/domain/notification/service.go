package notification

import (
	"context"

	"github.com/leavehub/leavehub-backend-go/internal/domain/employee"
)

type NotificationService interface {
	// UnreadCounts computes both badge values for the user. The pending
	// counter only fills for approver roles.
	UnreadCounts(ctx context.Context, userID string, role employee.Role) (UnreadCounts, error)
	// MarkViewed advances the user's cursor for the category to now,
	// zeroing that badge until newer events arrive.
	MarkViewed(ctx context.Context, userID string, category Category) error
}
