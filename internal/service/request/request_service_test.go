package request

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leavehub/leavehub-backend-go/internal/domain/employee"
	"github.com/leavehub/leavehub-backend-go/internal/domain/request"
)

type fakeRequestRepo struct {
	byID map[string]*request.Request
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{byID: make(map[string]*request.Request)}
}

func (f *fakeRequestRepo) Create(ctx context.Context, req request.Request) (request.Request, error) {
	now := time.Now()
	req.CreatedAt = now
	req.UpdatedAt = now
	stored := req
	f.byID[req.ID] = &stored
	return req, nil
}

func (f *fakeRequestRepo) GetByID(ctx context.Context, id string) (request.Request, error) {
	req, ok := f.byID[id]
	if !ok {
		return request.Request{}, request.ErrRequestNotFound
	}
	return *req, nil
}

func (f *fakeRequestRepo) ListByEmployee(ctx context.Context, employeeID string) ([]request.Request, error) {
	var out []request.Request
	for _, req := range f.byID {
		if req.EmployeeID == employeeID {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) ListAll(ctx context.Context) ([]request.Request, error) {
	var out []request.Request
	for _, req := range f.byID {
		out = append(out, *req)
	}
	return out, nil
}

func (f *fakeRequestRepo) ListPendingForManager(ctx context.Context, managerID string) ([]request.Request, error) {
	var out []request.Request
	for _, req := range f.byID {
		if req.Status == request.StatusPending && req.EmployeeID != managerID {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) ListByMonth(ctx context.Context, year int, month time.Month) ([]request.Request, error) {
	var out []request.Request
	for _, req := range f.byID {
		if req.StartDate.Year() == year && req.StartDate.Month() == month {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) ApplyApproval(ctx context.Context, id string, stage request.Stage, approverID string, at time.Time) (request.Request, error) {
	req, ok := f.byID[id]
	if !ok {
		return request.Request{}, request.ErrRequestNotFound
	}
	if req.Status != request.StatusPending {
		return request.Request{}, request.ErrRequestAlreadyProcessed
	}
	req.Status = request.StatusApproved
	setDecision(req, stage, approverID, at)
	req.UpdatedAt = at
	return *req, nil
}

func (f *fakeRequestRepo) ApplyRejection(ctx context.Context, id string, stage request.Stage, approverID, reason string, at time.Time) (request.Request, error) {
	req, ok := f.byID[id]
	if !ok {
		return request.Request{}, request.ErrRequestNotFound
	}
	if req.Status != request.StatusPending {
		return request.Request{}, request.ErrRequestAlreadyProcessed
	}
	req.Status = request.StatusRejected
	setDecision(req, stage, approverID, at)
	req.RejectedStage = &stage
	req.RejectionReason = &reason
	req.UpdatedAt = at
	return *req, nil
}

func setDecision(req *request.Request, stage request.Stage, approverID string, at time.Time) {
	decision := &request.Decision{ApproverID: approverID, DecidedAt: at}
	switch stage {
	case request.StageManager:
		req.ManagerDecision = decision
	case request.StageHR:
		req.HRDecision = decision
	case request.StageSuperAdmin:
		req.SuperAdminDecision = decision
	}
}

type fakeEmployeeRepo struct {
	byID map[string]employee.Employee
}

func newFakeEmployeeRepo(employees ...employee.Employee) *fakeEmployeeRepo {
	f := &fakeEmployeeRepo{byID: make(map[string]employee.Employee)}
	for _, e := range employees {
		f.byID[e.ID] = e
	}
	return f
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := f.byID[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	for _, e := range f.byID {
		if e.Code == code {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	for _, e := range f.byID {
		if e.Email == email {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.byID {
		out = append(out, e)
	}
	return out, nil
}

func newTestService() (*RequestService, *fakeRequestRepo) {
	requestRepo := newFakeRequestRepo()
	employeeRepo := newFakeEmployeeRepo(
		employee.Employee{ID: "emp-1", Code: "1000-0001", FullName: "Ari Wibowo", Department: "Technology", Role: employee.RoleEmployee, Status: employee.StatusActive},
		employee.Employee{ID: "mgr-1", Code: "1000-0002", FullName: "Dewi Lestari", Department: "Technology", Role: employee.RoleManager, Status: employee.StatusActive},
	)
	return NewRequestService(requestRepo, employeeRepo), requestRepo
}

func TestCreateLeaveRequest(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), request.CreateRequestRequest{
		EmployeeID: "emp-1",
		Type:       "leave",
		StartDate:  "2024-03-10",
		EndDate:    "2024-03-12",
		Reason:     "Family trip",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "pending", created.Status)
	assert.Equal(t, "2024-03-10", created.StartDate)
	require.NotNil(t, created.EndDate)
	assert.Equal(t, "2024-03-12", *created.EndDate)
}

func TestCreateRequestValidation(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), request.CreateRequestRequest{
		EmployeeID: "emp-1",
		Type:       "vacation",
		StartDate:  "not-a-date",
	})
	require.Error(t, err)
}

func TestCreateRequestEndBeforeStart(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), request.CreateRequestRequest{
		EmployeeID: "emp-1",
		Type:       "leave",
		StartDate:  "2024-03-12",
		EndDate:    "2024-03-10",
		Reason:     "Backwards range",
	})
	assert.ErrorIs(t, err, request.ErrInvalidDateRange)
}

func TestCreatePermissionSingleDigitHour(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), request.CreateRequestRequest{
		EmployeeID: "emp-1",
		Type:       "permission",
		StartDate:  "2024-03-10",
		StartTime:  "9:00",
		EndTime:    "10:00",
		Reason:     "School pickup",
	})
	require.NoError(t, err)

	require.NotNil(t, created.StartTime)
	assert.Equal(t, "9:00", *created.StartTime)
	require.NotNil(t, created.EndTime)
	assert.Equal(t, "10:00", *created.EndTime)
}

func TestCreatePermissionEndNotAfterStart(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), request.CreateRequestRequest{
		EmployeeID: "emp-1",
		Type:       "permission",
		StartDate:  "2024-03-10",
		StartTime:  "11:00",
		EndTime:    "09:00",
		Reason:     "Backwards window",
	})
	assert.ErrorIs(t, err, request.ErrInvalidTimeRange)

	_, err = svc.Create(context.Background(), request.CreateRequestRequest{
		EmployeeID: "emp-1",
		Type:       "permission",
		StartDate:  "2024-03-10",
		StartTime:  "09:00",
		EndTime:    "09:00",
		Reason:     "Empty window",
	})
	assert.ErrorIs(t, err, request.ErrInvalidTimeRange)
}

func TestApproveStampsStageForRole(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), request.CreateRequestRequest{
		EmployeeID: "emp-1",
		Type:       "leave",
		StartDate:  "2024-03-10",
		EndDate:    "2024-03-12",
		Reason:     "Family trip",
	})
	require.NoError(t, err)

	approved, err := svc.Approve(context.Background(), created.ID, employee.RoleHR, "hr-9")
	require.NoError(t, err)

	assert.Equal(t, "approved", approved.Status)
	require.NotNil(t, approved.HRDecision)
	assert.Equal(t, "hr-9", approved.HRDecision.ApproverID)
	assert.Nil(t, approved.ManagerDecision)
	assert.Nil(t, approved.SuperAdminDecision)
}

func TestApproveTwiceConflicts(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), request.CreateRequestRequest{
		EmployeeID: "emp-1",
		Type:       "leave",
		StartDate:  "2024-03-10",
		EndDate:    "2024-03-12",
		Reason:     "Family trip",
	})
	require.NoError(t, err)

	_, err = svc.Approve(context.Background(), created.ID, employee.RoleManager, "mgr-1")
	require.NoError(t, err)

	_, err = svc.Approve(context.Background(), created.ID, employee.RoleManager, "mgr-1")
	assert.ErrorIs(t, err, request.ErrRequestAlreadyProcessed)
}

func TestApproveAfterRejectConflicts(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), request.CreateRequestRequest{
		EmployeeID: "emp-1",
		Type:       "permission",
		StartDate:  "2024-03-10",
		StartTime:  "09:00",
		EndTime:    "11:30",
		Reason:     "Doctor visit",
	})
	require.NoError(t, err)

	_, err = svc.Reject(context.Background(), created.ID, employee.RoleManager, "mgr-1", "Short staffed")
	require.NoError(t, err)

	_, err = svc.Approve(context.Background(), created.ID, employee.RoleManager, "mgr-1")
	assert.ErrorIs(t, err, request.ErrRequestAlreadyProcessed)
}

func TestRejectRequiresReason(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), request.CreateRequestRequest{
		EmployeeID: "emp-1",
		Type:       "leave",
		StartDate:  "2024-03-10",
		EndDate:    "2024-03-12",
		Reason:     "Family trip",
	})
	require.NoError(t, err)

	_, err = svc.Reject(context.Background(), created.ID, employee.RoleManager, "mgr-1", "   ")
	assert.ErrorIs(t, err, request.ErrRejectionReasonRequired)

	// The request stays pending and can still be rejected properly.
	rejected, err := svc.Reject(context.Background(), created.ID, employee.RoleManager, "mgr-1", "Coverage gap")
	require.NoError(t, err)
	assert.Equal(t, "rejected", rejected.Status)
	require.NotNil(t, rejected.RejectionReason)
	assert.Equal(t, "Coverage gap", *rejected.RejectionReason)
	require.NotNil(t, rejected.RejectedStage)
	assert.Equal(t, "manager", *rejected.RejectedStage)
}

func TestApproveRejectRoleGate(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), request.CreateRequestRequest{
		EmployeeID: "emp-1",
		Type:       "leave",
		StartDate:  "2024-03-10",
		EndDate:    "2024-03-12",
		Reason:     "Family trip",
	})
	require.NoError(t, err)

	_, err = svc.Approve(context.Background(), created.ID, employee.RoleEmployee, "emp-1")
	assert.ErrorIs(t, err, request.ErrApproverRoleInvalid)

	_, err = svc.Reject(context.Background(), created.ID, employee.RoleIntern, "emp-1", "Nope")
	assert.ErrorIs(t, err, request.ErrApproverRoleInvalid)
}

func TestListPendingForManagerExcludesOwn(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), request.CreateRequestRequest{
		EmployeeID: "emp-1",
		Type:       "leave",
		StartDate:  "2024-03-10",
		EndDate:    "2024-03-12",
		Reason:     "Family trip",
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), request.CreateRequestRequest{
		EmployeeID: "mgr-1",
		Type:       "leave",
		StartDate:  "2024-03-11",
		EndDate:    "2024-03-11",
		Reason:     "Own leave",
	})
	require.NoError(t, err)

	pending, err := svc.ListPendingForManager(context.Background(), "mgr-1")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "emp-1", pending[0].EmployeeID)
}
