package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leavehub/leavehub-backend-go/internal/domain/employee"
	"github.com/leavehub/leavehub-backend-go/internal/domain/holiday"
	"github.com/leavehub/leavehub-backend-go/internal/domain/request"
)

func approvedLeave(id, employeeID string, start, end time.Time) request.Request {
	name := "Ari Wibowo"
	department := "Technology"
	return request.Request{
		ID:           id,
		EmployeeID:   employeeID,
		Type:         request.TypeLeave,
		Status:       request.StatusApproved,
		StartDate:    start,
		EndDate:      &end,
		EmployeeName: &name,
		Department:   &department,
	}
}

func TestBuildMonthCalendarFebruary2024(t *testing.T) {
	cal := BuildMonthCalendar(2024, time.February, nil, nil)

	// 2024-02-01 is a Thursday, so four leading nil cells before day one.
	require.GreaterOrEqual(t, len(cal.Cells), 29)
	leading := 0
	for _, cell := range cal.Cells {
		if cell != nil {
			break
		}
		leading++
	}
	firstWeekday := int(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC).Weekday())
	assert.Equal(t, firstWeekday, leading)
	assert.Equal(t, 4, leading)

	days := 0
	for _, cell := range cal.Cells {
		if cell != nil {
			days++
		}
	}
	assert.Equal(t, 29, days)

	first := cal.Cells[leading]
	require.NotNil(t, first)
	assert.Equal(t, 1, first.Day)
	assert.Equal(t, "2024-02-01", first.Date)

	last := cal.Cells[len(cal.Cells)-1]
	require.NotNil(t, last)
	assert.Equal(t, 29, last.Day)
}

func TestBuildMonthCalendarPlacesEntries(t *testing.T) {
	start := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC)
	requests := []request.Request{approvedLeave("r1", "e1", start, end)}

	pendingStart := time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)
	pending := approvedLeave("r2", "e2", pendingStart, pendingStart)
	pending.Status = request.StatusPending
	requests = append(requests, pending)

	holidays := []holiday.Holiday{
		{ID: "h1", Name: "Nyepi", Date: time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)},
	}

	cal := BuildMonthCalendar(2024, time.March, requests, holidays)

	entryDays := make(map[int]int)
	for _, cell := range cal.Cells {
		if cell == nil {
			continue
		}
		entryDays[cell.Day] = len(cell.Entries)
		if cell.Day == 11 {
			assert.True(t, cell.IsHoliday)
			assert.Equal(t, "Nyepi", cell.Holiday)
		}
	}

	assert.Equal(t, 1, entryDays[10])
	assert.Equal(t, 1, entryDays[11])
	assert.Equal(t, 1, entryDays[12])
	assert.Equal(t, 0, entryDays[9])
	assert.Equal(t, 0, entryDays[13])
}

func TestFilterByOwner(t *testing.T) {
	start := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	requests := []request.Request{
		approvedLeave("r1", "e1", start, start),
		approvedLeave("r2", "e2", start, start),
		approvedLeave("r3", "e1", start, start),
	}

	mine := filterByOwner(requests, "e1")
	require.Len(t, mine, 2)
	assert.Equal(t, "r1", mine[0].ID)
	assert.Equal(t, "r3", mine[1].ID)

	assert.Empty(t, filterByOwner(requests, "e9"))
}

func TestWeeksChunking(t *testing.T) {
	cal := BuildMonthCalendar(2024, time.February, nil, nil)
	weeks := cal.Weeks()

	require.NotEmpty(t, weeks)
	for _, week := range weeks {
		assert.Len(t, week, 7)
	}
}

func TestMonthCalendarResponseWeeks(t *testing.T) {
	cal := BuildMonthCalendar(2024, time.February, nil, nil)
	resp := cal.ToResponse()

	assert.Equal(t, 2024, resp.Year)
	assert.Equal(t, time.February, resp.Month)

	require.Len(t, resp.Weeks, 5)
	for _, week := range resp.Weeks {
		assert.Len(t, week, 7)
	}

	// Feb 29 lands on the Thursday of the last week, the rest is padding.
	last := resp.Weeks[4]
	require.NotNil(t, last[4])
	assert.Equal(t, 29, last[4].Day)
	assert.Nil(t, last[5])
	assert.Nil(t, last[6])
}

func TestSummarizeMonthTotals(t *testing.T) {
	employees := []employee.Employee{
		{ID: "e1", FullName: "Ari Wibowo", Department: "Technology", Role: employee.RoleEmployee, Status: employee.StatusActive},
		{ID: "e2", FullName: "Budi Santoso", Department: "Marketing", Role: employee.RoleEmployee, Status: employee.StatusActive},
	}

	leaveStart := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	leaveEnd := time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC)

	startTime := "09:00"
	endTime := "11:30"
	permission := request.Request{
		ID:         "r2",
		EmployeeID: "e1",
		Type:       request.TypePermission,
		Status:     request.StatusApproved,
		StartDate:  leaveStart,
		StartTime:  &startTime,
		EndTime:    &endTime,
	}

	rejected := approvedLeave("r3", "e2", leaveStart, leaveEnd)
	rejected.Status = request.StatusRejected

	requests := []request.Request{
		approvedLeave("r1", "e1", leaveStart, leaveEnd),
		permission,
		rejected,
	}

	summary := SummarizeMonth(2024, time.March, employees, requests)
	require.Len(t, summary.Employees, 2)

	byID := make(map[string]int)
	for i, emp := range summary.Employees {
		byID[emp.EmployeeID] = i
	}

	ari := summary.Employees[byID["e1"]]
	assert.Equal(t, 3, ari.LeaveDays)
	assert.InDelta(t, 2.5, ari.PermissionHours, 0.0001)
	assert.Equal(t, 2, ari.Approved)
	assert.Equal(t, 0, ari.Rejected)

	budi := summary.Employees[byID["e2"]]
	assert.Equal(t, 0, budi.LeaveDays)
	assert.Equal(t, 1, budi.Rejected)
}

func TestSummarizeMonthSkipsInactive(t *testing.T) {
	employees := []employee.Employee{
		{ID: "e1", FullName: "Ari Wibowo", Status: employee.StatusActive},
		{ID: "e2", FullName: "Budi Santoso", Status: employee.StatusInactive},
	}

	summary := SummarizeMonth(2024, time.March, employees, nil)
	require.Len(t, summary.Employees, 1)
	assert.Equal(t, "e1", summary.Employees[0].EmployeeID)
}
