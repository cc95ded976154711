package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/leavehub/leavehub-backend-go/internal/domain/employee"
	"github.com/leavehub/leavehub-backend-go/internal/domain/notification"
	"github.com/leavehub/leavehub-backend-go/internal/domain/request"
)

type NotificationService struct {
	request.RequestRepository
	notification.ViewStateStore
}

func NewNotificationService(requestRepository request.RequestRepository, viewStateStore notification.ViewStateStore) *NotificationService {
	return &NotificationService{
		RequestRepository: requestRepository,
		ViewStateStore:    viewStateStore,
	}
}

func (s *NotificationService) UnreadCounts(ctx context.Context, userID string, role employee.Role) (notification.UnreadCounts, error) {
	var counts notification.UnreadCounts

	approved, err := s.countApproved(ctx, userID)
	if err != nil {
		return notification.UnreadCounts{}, err
	}
	counts.Approved = approved

	if role.CanApprove() {
		pending, err := s.countPending(ctx, userID)
		if err != nil {
			return notification.UnreadCounts{}, err
		}
		counts.Pending = pending
	}

	return counts, nil
}

func (s *NotificationService) MarkViewed(ctx context.Context, userID string, category notification.Category) error {
	if !category.Valid() {
		return notification.ErrUnknownCategory
	}
	if err := s.ViewStateStore.Set(ctx, userID, category, time.Now()); err != nil {
		return fmt.Errorf("failed to store view state: %w", err)
	}
	return nil
}

// countApproved counts the user's own approved requests decided after the
// user's cursor. Without a cursor every approved request counts.
func (s *NotificationService) countApproved(ctx context.Context, userID string) (int, error) {
	requests, err := s.RequestRepository.ListByEmployee(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to list requests: %w", err)
	}

	cursor, err := s.ViewStateStore.Get(ctx, userID, notification.CategoryApproved)
	if err != nil {
		return 0, fmt.Errorf("failed to load view state: %w", err)
	}

	count := 0
	for _, req := range requests {
		if req.Status != request.StatusApproved {
			continue
		}
		if unseen(eventTime(req), cursor) {
			count++
		}
	}
	return count, nil
}

// countPending counts requests sitting in the approver's queue that arrived
// after the approver's cursor.
func (s *NotificationService) countPending(ctx context.Context, approverID string) (int, error) {
	requests, err := s.RequestRepository.ListPendingForManager(ctx, approverID)
	if err != nil {
		return 0, fmt.Errorf("failed to list pending requests: %w", err)
	}

	cursor, err := s.ViewStateStore.Get(ctx, approverID, notification.CategoryPending)
	if err != nil {
		return 0, fmt.Errorf("failed to load view state: %w", err)
	}

	count := 0
	for _, req := range requests {
		if unseen(req.CreatedAt, cursor) {
			count++
		}
	}
	return count, nil
}

// eventTime is the moment an approved request becomes notifiable, the stage
// decision timestamp when stamped, the last update otherwise.
func eventTime(req request.Request) time.Time {
	if decidedAt := req.DecidedAt(); decidedAt != nil {
		return *decidedAt
	}
	return req.UpdatedAt
}

// unseen applies the cursor rule, strictly newer events count and a missing
// cursor counts everything.
func unseen(event time.Time, cursor *time.Time) bool {
	if cursor == nil {
		return true
	}
	return event.After(*cursor)
}
