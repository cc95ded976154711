package request

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/leavehub/leavehub-backend-go/internal/domain/employee"
	"github.com/leavehub/leavehub-backend-go/internal/domain/request"
)

type RequestService struct {
	request.RequestRepository
	employee.EmployeeRepository
}

func NewRequestService(requestRepository request.RequestRepository, employeeRepository employee.EmployeeRepository) *RequestService {
	return &RequestService{
		RequestRepository:  requestRepository,
		EmployeeRepository: employeeRepository,
	}
}

func (s *RequestService) Create(ctx context.Context, req request.CreateRequestRequest) (request.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return request.RequestResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return request.RequestResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return request.RequestResponse{}, fmt.Errorf("failed to parse start date: %w", err)
	}

	entity := request.Request{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		Type:       request.RequestType(req.Type),
		Status:     request.StatusPending,
		StartDate:  startDate,
		Reason:     req.Reason,
	}

	if req.EndDate != "" {
		endDate, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return request.RequestResponse{}, fmt.Errorf("failed to parse end date: %w", err)
		}
		if endDate.Before(startDate) {
			return request.RequestResponse{}, request.ErrInvalidDateRange
		}
		entity.EndDate = &endDate
	}

	if entity.Type == request.TypePermission {
		startTime, err := time.Parse("15:04", req.StartTime)
		if err != nil {
			return request.RequestResponse{}, request.ErrInvalidTimeRange
		}
		endTime, err := time.Parse("15:04", req.EndTime)
		if err != nil {
			return request.RequestResponse{}, request.ErrInvalidTimeRange
		}
		if !endTime.After(startTime) {
			return request.RequestResponse{}, request.ErrInvalidTimeRange
		}
		entity.StartTime = &req.StartTime
		entity.EndTime = &req.EndTime
	}

	created, err := s.RequestRepository.Create(ctx, entity)
	if err != nil {
		return request.RequestResponse{}, fmt.Errorf("failed to create request: %w", err)
	}

	return request.ToResponse(created), nil
}

func (s *RequestService) Approve(ctx context.Context, requestID string, approverRole employee.Role, approverID string) (request.RequestResponse, error) {
	stage, ok := request.StageForRole(approverRole)
	if !ok {
		return request.RequestResponse{}, request.ErrApproverRoleInvalid
	}

	req, err := s.RequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return request.RequestResponse{}, fmt.Errorf("failed to get request by ID: %w", err)
	}

	if req.Status != request.StatusPending {
		return request.RequestResponse{}, request.ErrRequestAlreadyProcessed
	}

	updated, err := s.RequestRepository.ApplyApproval(ctx, requestID, stage, approverID, time.Now())
	if err != nil {
		return request.RequestResponse{}, fmt.Errorf("failed to approve request: %w", err)
	}

	return request.ToResponse(updated), nil
}

func (s *RequestService) Reject(ctx context.Context, requestID string, approverRole employee.Role, approverID, reason string) (request.RequestResponse, error) {
	stage, ok := request.StageForRole(approverRole)
	if !ok {
		return request.RequestResponse{}, request.ErrApproverRoleInvalid
	}

	if strings.TrimSpace(reason) == "" {
		return request.RequestResponse{}, request.ErrRejectionReasonRequired
	}

	req, err := s.RequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return request.RequestResponse{}, fmt.Errorf("failed to get request by ID: %w", err)
	}

	if req.Status != request.StatusPending {
		return request.RequestResponse{}, request.ErrRequestAlreadyProcessed
	}

	updated, err := s.RequestRepository.ApplyRejection(ctx, requestID, stage, approverID, reason, time.Now())
	if err != nil {
		return request.RequestResponse{}, fmt.Errorf("failed to reject request: %w", err)
	}

	return request.ToResponse(updated), nil
}

func (s *RequestService) ListMine(ctx context.Context, employeeID string) ([]request.RequestResponse, error) {
	requests, err := s.RequestRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	return request.ToResponses(requests), nil
}

func (s *RequestService) ListAll(ctx context.Context) ([]request.RequestResponse, error) {
	requests, err := s.RequestRepository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	return request.ToResponses(requests), nil
}

func (s *RequestService) ListPendingForManager(ctx context.Context, managerID string) ([]request.RequestResponse, error) {
	requests, err := s.RequestRepository.ListPendingForManager(ctx, managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending requests: %w", err)
	}
	return request.ToResponses(requests), nil
}

func (s *RequestService) DashboardStats(ctx context.Context, managerID string) (request.DashboardStats, error) {
	requests, err := s.RequestRepository.ListAll(ctx)
	if err != nil {
		return request.DashboardStats{}, fmt.Errorf("failed to list requests: %w", err)
	}

	today := time.Now()
	var stats request.DashboardStats
	for _, req := range requests {
		switch req.Status {
		case request.StatusPending:
			if req.EmployeeID != managerID {
				stats.Pending++
			}
		case request.StatusApproved:
			stats.Approved++
		case request.StatusRejected:
			stats.Rejected++
		}
		if sameDay(req.CreatedAt, today) {
			stats.Today++
		}
	}
	return stats, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
