package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/leavehub/leavehub-backend-go/internal/domain/calendar"
	"github.com/leavehub/leavehub-backend-go/internal/domain/employee"
	"github.com/leavehub/leavehub-backend-go/internal/domain/holiday"
	"github.com/leavehub/leavehub-backend-go/internal/domain/request"
)

type CalendarService struct {
	request.RequestRepository
	employee.EmployeeRepository
	holiday.HolidayRepository
}

func NewCalendarService(
	requestRepository request.RequestRepository,
	employeeRepository employee.EmployeeRepository,
	holidayRepository holiday.HolidayRepository,
) *CalendarService {
	return &CalendarService{
		RequestRepository:  requestRepository,
		EmployeeRepository: employeeRepository,
		HolidayRepository:  holidayRepository,
	}
}

func (s *CalendarService) MonthCalendar(ctx context.Context, year int, month time.Month, scope calendar.Scope, viewerID string) (calendar.MonthCalendar, error) {
	if month < time.January || month > time.December {
		return calendar.MonthCalendar{}, calendar.ErrInvalidMonth
	}

	requests, err := s.RequestRepository.ListByMonth(ctx, year, month)
	if err != nil {
		return calendar.MonthCalendar{}, fmt.Errorf("failed to list requests: %w", err)
	}
	if scope == calendar.ScopePersonal {
		requests = filterByOwner(requests, viewerID)
	}

	// Missing holidays leave the grid unmarked rather than failing it.
	holidays, err := s.HolidayRepository.ListByMonth(ctx, year, month)
	if err != nil {
		slog.Warn("holiday list unavailable for calendar", "error", err)
		holidays = nil
	}

	return BuildMonthCalendar(year, month, requests, holidays), nil
}

func (s *CalendarService) MonthlySummary(ctx context.Context, year int, month time.Month, viewerID string) (calendar.MonthSummary, error) {
	if month < time.January || month > time.December {
		return calendar.MonthSummary{}, calendar.ErrInvalidMonth
	}

	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return calendar.MonthSummary{}, fmt.Errorf("failed to list employees: %w", err)
	}

	requests, err := s.RequestRepository.ListByMonth(ctx, year, month)
	if err != nil {
		return calendar.MonthSummary{}, fmt.Errorf("failed to list requests: %w", err)
	}

	if viewerID != "" {
		filtered := employees[:0:0]
		for _, emp := range employees {
			if emp.ID == viewerID {
				filtered = append(filtered, emp)
			}
		}
		employees = filtered
		requests = filterByOwner(requests, viewerID)
	}

	return SummarizeMonth(year, month, employees, requests), nil
}

func filterByOwner(requests []request.Request, ownerID string) []request.Request {
	var out []request.Request
	for _, req := range requests {
		if req.EmployeeID == ownerID {
			out = append(out, req)
		}
	}
	return out
}

// BuildMonthCalendar lays the month out as a Sunday-first padded grid with
// approved absences and holidays placed on their days.
func BuildMonthCalendar(year int, month time.Month, requests []request.Request, holidays []holiday.Holiday) calendar.MonthCalendar {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := monthStart.AddDate(0, 1, 0).AddDate(0, 0, -1).Day()

	holidayByDate := make(map[string]holiday.Holiday, len(holidays))
	for _, h := range holidays {
		holidayByDate[h.Date.Format("2006-01-02")] = h
	}

	cal := calendar.MonthCalendar{Year: year, Month: month}

	// Leading padding up to the weekday of the first.
	for i := 0; i < int(monthStart.Weekday()); i++ {
		cal.Cells = append(cal.Cells, nil)
	}

	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		cell := &calendar.DayCell{
			Day:     day,
			Date:    date.Format("2006-01-02"),
			Entries: []calendar.Entry{},
		}

		if h, ok := holidayByDate[cell.Date]; ok {
			cell.IsHoliday = true
			cell.Holiday = h.Name
		}

		for _, req := range requests {
			if req.Status != request.StatusApproved || !req.CoversDate(date) {
				continue
			}
			cell.Entries = append(cell.Entries, toEntry(req))
		}

		cal.Cells = append(cal.Cells, cell)
	}

	return cal
}

// SummarizeMonth totals each employee's absences for the month. Day totals
// accrue from approved leave, hour totals from approved permissions, while
// the status counters cover every request regardless of outcome.
func SummarizeMonth(year int, month time.Month, employees []employee.Employee, requests []request.Request) calendar.MonthSummary {
	byEmployee := make(map[string]*calendar.EmployeeSummary, len(employees))
	for _, emp := range employees {
		if !emp.Status.IsActive() {
			continue
		}
		byEmployee[emp.ID] = &calendar.EmployeeSummary{
			EmployeeID: emp.ID,
			Name:       emp.FullName,
			Department: emp.Department,
		}
	}

	for _, req := range requests {
		summary, ok := byEmployee[req.EmployeeID]
		if !ok {
			continue
		}

		switch req.Status {
		case request.StatusApproved:
			summary.Approved++
		case request.StatusPending:
			summary.Pending++
		case request.StatusRejected:
			summary.Rejected++
		}

		if req.Status != request.StatusApproved {
			continue
		}
		switch req.Type {
		case request.TypeLeave:
			summary.LeaveDays += req.TotalDays()
		case request.TypePermission:
			summary.PermissionHours += req.PermissionHours()
		}
	}

	out := calendar.MonthSummary{Year: year, Month: month}
	for _, summary := range byEmployee {
		out.Employees = append(out.Employees, *summary)
	}
	sort.Slice(out.Employees, func(i, j int) bool {
		return out.Employees[i].Name < out.Employees[j].Name
	})
	return out
}

func toEntry(req request.Request) calendar.Entry {
	entry := calendar.Entry{
		RequestID:  req.ID,
		EmployeeID: req.EmployeeID,
		Type:       string(req.Type),
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
	}
	if req.EmployeeName != nil {
		entry.EmployeeName = *req.EmployeeName
	}
	if req.Department != nil {
		entry.Department = *req.Department
	}
	return entry
}
