package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/leavehub/leavehub-backend-go/internal/domain/attendance"
	"github.com/leavehub/leavehub-backend-go/internal/domain/employee"
	"github.com/leavehub/leavehub-backend-go/internal/domain/holiday"
	"github.com/leavehub/leavehub-backend-go/internal/domain/request"
)

type AttendanceService struct {
	employee.EmployeeRepository
	request.RequestRepository
	holiday.HolidayRepository

	matchStartDateOnly bool
}

func NewAttendanceService(
	employeeRepository employee.EmployeeRepository,
	requestRepository request.RequestRepository,
	holidayRepository holiday.HolidayRepository,
	matchStartDateOnly bool,
) *AttendanceService {
	return &AttendanceService{
		EmployeeRepository: employeeRepository,
		RequestRepository:  requestRepository,
		HolidayRepository:  holidayRepository,
		matchStartDateOnly: matchStartDateOnly,
	}
}

func (s *AttendanceService) TodayReport(ctx context.Context) (attendance.Report, error) {
	today := time.Now().UTC()

	// A failed roster fetch degrades to an empty report rather than losing
	// the whole page.
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		slog.Warn("employee list unavailable for attendance report", "error", err)
		employees = nil
	}

	requests, err := s.RequestRepository.ListByMonth(ctx, today.Year(), today.Month())
	if err != nil {
		return attendance.Report{}, fmt.Errorf("failed to list requests: %w", err)
	}

	return BuildReport(today, employees, requests, s.matchStartDateOnly), nil
}

func (s *AttendanceService) DepartmentReport(ctx context.Context, department string) (attendance.DepartmentReport, error) {
	report, err := s.TodayReport(ctx)
	if err != nil {
		return attendance.DepartmentReport{}, err
	}
	return report.SelectDepartment(department), nil
}

func (s *AttendanceService) TomorrowHoliday(ctx context.Context) (*holiday.Holiday, error) {
	tomorrow := time.Now().UTC().AddDate(0, 0, 1)
	tomorrow = time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 0, 0, 0, 0, time.UTC)

	h, err := s.HolidayRepository.GetByDate(ctx, tomorrow)
	if errors.Is(err, holiday.ErrHolidayNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get holiday: %w", err)
	}
	return &h, nil
}

// BuildReport resolves every tracked employee's state for the given day. Only
// active employees in tracked roles enter the roster; everyone not covered by
// an approved request counts as present, so absent stays zero and the buckets
// always partition the roster.
func BuildReport(day time.Time, employees []employee.Employee, requests []request.Request, matchStartDateOnly bool) attendance.Report {
	approvedByEmployee := make(map[string][]request.Request)
	for _, req := range requests {
		if req.Status != request.StatusApproved {
			continue
		}
		approvedByEmployee[req.EmployeeID] = append(approvedByEmployee[req.EmployeeID], req)
	}

	report := attendance.Report{
		Date:        attendance.DateKey(day),
		Departments: make(map[string]attendance.Summary),
	}

	for _, emp := range employees {
		if !emp.EligibleForAttendance() {
			continue
		}

		status := attendance.EmployeeStatus{
			EmployeeID: emp.ID,
			Name:       emp.FullName,
			Department: emp.Department,
			Status:     attendance.StatusPresent,
		}

		for _, req := range approvedByEmployee[emp.ID] {
			if !matchesDay(req, day, matchStartDateOnly) {
				continue
			}
			if req.Type.IsLeaveKind() {
				setAbsence(&status, attendance.StatusOnLeave, req)
				break
			}
			// A permission only sticks until a leave is found.
			if status.Status == attendance.StatusPresent {
				setAbsence(&status, attendance.StatusOnPermission, req)
			}
		}

		report.Employees = append(report.Employees, status)
		report.Summary = bump(report.Summary, status.Status)
		report.Departments[emp.Department] = bump(report.Departments[emp.Department], status.Status)
	}

	return report
}

func setAbsence(status *attendance.EmployeeStatus, kind attendance.PresenceStatus, req request.Request) {
	status.Status = kind
	status.RequestID = req.ID
	status.RequestType = string(req.Type)
	status.Reason = req.Reason
}

func matchesDay(req request.Request, day time.Time, matchStartDateOnly bool) bool {
	if matchStartDateOnly {
		return req.StartsOn(day)
	}
	return req.CoversDate(day)
}

func bump(s attendance.Summary, status attendance.PresenceStatus) attendance.Summary {
	switch status {
	case attendance.StatusOnLeave:
		s.OnLeave++
	case attendance.StatusOnPermission:
		s.OnPermission++
	default:
		s.Present++
	}
	s.Total++
	return s
}
