package request

import (
	"context"

	"github.com/leavehub/leavehub-backend-go/internal/domain/employee"
)

type RequestService interface {
	Create(ctx context.Context, req CreateRequestRequest) (RequestResponse, error)
	Approve(ctx context.Context, requestID string, approverRole employee.Role, approverID string) (RequestResponse, error)
	Reject(ctx context.Context, requestID string, approverRole employee.Role, approverID, reason string) (RequestResponse, error)
	ListMine(ctx context.Context, employeeID string) ([]RequestResponse, error)
	ListAll(ctx context.Context) ([]RequestResponse, error)
	ListPendingForManager(ctx context.Context, managerID string) ([]RequestResponse, error)
	DashboardStats(ctx context.Context, managerID string) (DashboardStats, error)
}
