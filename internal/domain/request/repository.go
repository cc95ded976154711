package request

import (
	"context"
	"time"
)

type RequestRepository interface {
	Create(ctx context.Context, req Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Request, error)
	ListAll(ctx context.Context) ([]Request, error)
	// ListPendingForManager returns pending requests awaiting the manager's
	// action, excluding the manager's own submissions.
	ListPendingForManager(ctx context.Context, managerID string) ([]Request, error)
	// ListByMonth returns requests whose date range overlaps the given month.
	ListByMonth(ctx context.Context, year int, month time.Month) ([]Request, error)
	// ApplyApproval stamps the stage, moves the request to approved and
	// returns the updated row.
	ApplyApproval(ctx context.Context, id string, stage Stage, approverID string, at time.Time) (Request, error)
	// ApplyRejection stamps the stage with the reason, moves the request to
	// rejected and returns the updated row.
	ApplyRejection(ctx context.Context, id string, stage Stage, approverID, reason string, at time.Time) (Request, error)
}
