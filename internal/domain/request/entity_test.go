package request

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/leavehub/leavehub-backend-go/internal/domain/employee"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTotalDaysInclusive(t *testing.T) {
	end := day(2024, time.March, 12)
	req := Request{StartDate: day(2024, time.March, 10), EndDate: &end}
	assert.Equal(t, 3, req.TotalDays())
}

func TestTotalDaysSingleDay(t *testing.T) {
	req := Request{StartDate: day(2024, time.March, 10)}
	assert.Equal(t, 1, req.TotalDays())

	sameDay := day(2024, time.March, 10)
	req.EndDate = &sameDay
	assert.Equal(t, 1, req.TotalDays())
}

func TestTotalDaysNeverBelowOne(t *testing.T) {
	end := day(2024, time.March, 8)
	req := Request{StartDate: day(2024, time.March, 10), EndDate: &end}
	assert.Equal(t, 1, req.TotalDays())
}

func TestPermissionHours(t *testing.T) {
	start, end := "09:00", "11:30"
	req := Request{StartTime: &start, EndTime: &end}
	assert.InDelta(t, 2.5, req.PermissionHours(), 0.0001)
}

func TestPermissionHoursMalformed(t *testing.T) {
	assert.Zero(t, Request{}.PermissionHours())

	bad, end := "nine", "11:30"
	req := Request{StartTime: &bad, EndTime: &end}
	assert.Zero(t, req.PermissionHours())

	// Reversed times clamp to zero instead of going negative.
	late, early := "15:00", "09:00"
	req = Request{StartTime: &late, EndTime: &early}
	assert.Zero(t, req.PermissionHours())
}

func TestCoversDateInclusive(t *testing.T) {
	end := day(2024, time.March, 12)
	req := Request{StartDate: day(2024, time.March, 10), EndDate: &end}

	assert.False(t, req.CoversDate(day(2024, time.March, 9)))
	assert.True(t, req.CoversDate(day(2024, time.March, 10)))
	assert.True(t, req.CoversDate(day(2024, time.March, 11)))
	assert.True(t, req.CoversDate(day(2024, time.March, 12)))
	assert.False(t, req.CoversDate(day(2024, time.March, 13)))
}

func TestCoversDateZeroStart(t *testing.T) {
	assert.False(t, Request{}.CoversDate(day(2024, time.March, 10)))
}

func TestStageForRole(t *testing.T) {
	cases := []struct {
		role  employee.Role
		stage Stage
		ok    bool
	}{
		{employee.RoleManager, StageManager, true},
		{employee.RoleHR, StageHR, true},
		{employee.RoleSuperAdmin, StageSuperAdmin, true},
		{employee.RoleEmployee, "", false},
		{employee.RoleIntern, "", false},
	}
	for _, tc := range cases {
		stage, ok := StageForRole(tc.role)
		assert.Equal(t, tc.ok, ok, "role %s", tc.role)
		assert.Equal(t, tc.stage, stage, "role %s", tc.role)
	}
}

func TestDecidedAtPicksStampedStage(t *testing.T) {
	at := time.Now()
	req := Request{HRDecision: &Decision{ApproverID: "hr-1", DecidedAt: at}}

	decidedAt := req.DecidedAt()
	if assert.NotNil(t, decidedAt) {
		assert.True(t, decidedAt.Equal(at))
	}

	assert.Nil(t, Request{}.DecidedAt())
}
