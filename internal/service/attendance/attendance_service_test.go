package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leavehub/leavehub-backend-go/internal/domain/attendance"
	"github.com/leavehub/leavehub-backend-go/internal/domain/employee"
	"github.com/leavehub/leavehub-backend-go/internal/domain/request"
)

var reportDay = time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)

func rosterFixture() []employee.Employee {
	return []employee.Employee{
		{ID: "e1", FullName: "Ari Wibowo", Department: "Technology", Role: employee.RoleEmployee, Status: employee.StatusActive},
		{ID: "e2", FullName: "Budi Santoso", Department: "Technology", Role: employee.RoleEmployee, Status: employee.StatusActive},
		{ID: "e3", FullName: "Citra Ayu", Department: "Marketing", Role: employee.RoleHR, Status: employee.StatusActive},
		{ID: "e4", FullName: "Dian Putra", Department: "Marketing", Role: employee.RoleIntern, Status: employee.StatusRejoined},
		{ID: "e5", FullName: "Eka Sari", Department: "Technology", Role: employee.RoleAssociate, Status: employee.StatusActive},
	}
}

func leaveOn(id, employeeID string, start, end time.Time) request.Request {
	return request.Request{
		ID:         id,
		EmployeeID: employeeID,
		Type:       request.TypeLeave,
		Status:     request.StatusApproved,
		StartDate:  start,
		EndDate:    &end,
	}
}

func permissionOn(id, employeeID string, day time.Time) request.Request {
	start := "09:00"
	end := "11:30"
	return request.Request{
		ID:         id,
		EmployeeID: employeeID,
		Type:       request.TypePermission,
		Status:     request.StatusApproved,
		StartDate:  day,
		StartTime:  &start,
		EndTime:    &end,
	}
}

func TestBuildReportBuckets(t *testing.T) {
	employees := rosterFixture()
	requests := []request.Request{
		leaveOn("r1", "e2", reportDay, reportDay.AddDate(0, 0, 1)),
		permissionOn("r2", "e4", reportDay),
	}

	report := BuildReport(reportDay, employees, requests, false)

	assert.Equal(t, 3, report.Summary.Present)
	assert.Equal(t, 1, report.Summary.OnLeave)
	assert.Equal(t, 1, report.Summary.OnPermission)
	assert.Equal(t, 0, report.Summary.Absent)
	assert.Equal(t, 5, report.Summary.Total)
}

func TestBuildReportIdempotent(t *testing.T) {
	employees := rosterFixture()
	requests := []request.Request{
		leaveOn("r1", "e2", reportDay, reportDay),
		permissionOn("r2", "e4", reportDay),
	}

	first := BuildReport(reportDay, employees, requests, false)
	second := BuildReport(reportDay, employees, requests, false)

	assert.Equal(t, first, second)
}

func TestBuildReportExcludesInactiveAndLeadership(t *testing.T) {
	employees := append(rosterFixture(),
		employee.Employee{ID: "e6", FullName: "Fajar Hidayat", Department: "Technology", Role: employee.RoleEmployee, Status: employee.StatusInactive},
		employee.Employee{ID: "e7", FullName: "Gita Permata", Department: "Technology", Role: employee.RoleManager, Status: employee.StatusActive},
		employee.Employee{ID: "e8", FullName: "Hadi Nugroho", Department: "Technology", Role: employee.RoleSuperAdmin, Status: employee.StatusActive},
	)

	report := BuildReport(reportDay, employees, nil, false)

	assert.Equal(t, 5, report.Summary.Total)
	for _, status := range report.Employees {
		assert.NotEqual(t, "e6", status.EmployeeID)
		assert.NotEqual(t, "e7", status.EmployeeID)
		assert.NotEqual(t, "e8", status.EmployeeID)
	}
}

func TestBuildReportPendingAndRejectedIgnored(t *testing.T) {
	employees := rosterFixture()
	pending := leaveOn("r1", "e1", reportDay, reportDay)
	pending.Status = request.StatusPending
	rejected := leaveOn("r2", "e2", reportDay, reportDay)
	rejected.Status = request.StatusRejected

	report := BuildReport(reportDay, employees, []request.Request{pending, rejected}, false)

	assert.Equal(t, 5, report.Summary.Present)
	assert.Equal(t, 0, report.Summary.OnLeave)
}

func TestBuildReportRangeMatching(t *testing.T) {
	employees := rosterFixture()
	// Started two days before the report day, still running.
	requests := []request.Request{
		leaveOn("r1", "e1", reportDay.AddDate(0, 0, -2), reportDay.AddDate(0, 0, 2)),
	}

	inclusive := BuildReport(reportDay, employees, requests, false)
	assert.Equal(t, 1, inclusive.Summary.OnLeave)

	startOnly := BuildReport(reportDay, employees, requests, true)
	assert.Equal(t, 0, startOnly.Summary.OnLeave)
	assert.Equal(t, 5, startOnly.Summary.Present)
}

func TestSelectDepartmentPartition(t *testing.T) {
	employees := rosterFixture()
	requests := []request.Request{
		leaveOn("r1", "e2", reportDay, reportDay),
		permissionOn("r2", "e4", reportDay),
	}

	report := BuildReport(reportDay, employees, requests, false)
	tech := report.SelectDepartment("Technology")

	assert.Equal(t, "Technology", tech.Department)
	assert.Equal(t, 3, tech.Summary.Total)
	sum := tech.Summary.Present + tech.Summary.OnLeave + tech.Summary.OnPermission + tech.Summary.Absent
	assert.Equal(t, tech.Summary.Total, sum)
	require.Len(t, tech.Employees, 3)
	for _, status := range tech.Employees {
		assert.Equal(t, "Technology", status.Department)
	}

	// Department summaries add back up to the organization totals.
	var total attendance.Summary
	for _, summary := range report.Departments {
		total.Present += summary.Present
		total.OnLeave += summary.OnLeave
		total.OnPermission += summary.OnPermission
		total.Absent += summary.Absent
		total.Total += summary.Total
	}
	assert.Equal(t, report.Summary, total)
}

func TestSelectUnknownDepartmentEmpty(t *testing.T) {
	report := BuildReport(reportDay, rosterFixture(), nil, false)

	ghost := report.SelectDepartment("Ghost")
	assert.Equal(t, attendance.Summary{}, ghost.Summary)
	assert.Empty(t, ghost.Employees)
}

func TestLeaveWinsOverPermission(t *testing.T) {
	employees := rosterFixture()
	requests := []request.Request{
		permissionOn("r1", "e1", reportDay),
		leaveOn("r2", "e1", reportDay, reportDay),
	}

	report := BuildReport(reportDay, employees, requests, false)

	assert.Equal(t, 1, report.Summary.OnLeave)
	assert.Equal(t, 0, report.Summary.OnPermission)
	for _, status := range report.Employees {
		if status.EmployeeID == "e1" {
			assert.Equal(t, attendance.StatusOnLeave, status.Status)
			assert.Equal(t, "r2", status.RequestID)
		}
	}
}
