package request

import (
	"time"

	"github.com/leavehub/leavehub-backend-go/internal/domain/employee"
)

type RequestType string

const (
	TypeLeave      RequestType = "leave"
	TypeHalfDay    RequestType = "halfday"
	TypePermission RequestType = "permission"
)

// IsLeaveKind groups the day-based types as opposed to the hour-based
// permission type.
func (t RequestType) IsLeaveKind() bool {
	return t == TypeLeave || t == TypeHalfDay
}

type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
)

// Terminal reports whether no further transition is accepted.
func (s RequestStatus) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Stage is one of the three approval slots a request carries.
type Stage string

const (
	StageManager    Stage = "manager"
	StageHR         Stage = "hr"
	StageSuperAdmin Stage = "superadmin"
)

// StageForRole maps an approver role to the stage it stamps. Roles outside
// the approver set get ok=false.
func StageForRole(role employee.Role) (Stage, bool) {
	switch role {
	case employee.RoleManager:
		return StageManager, true
	case employee.RoleHR:
		return StageHR, true
	case employee.RoleSuperAdmin:
		return StageSuperAdmin, true
	}
	return "", false
}

// Decision is a stamped stage record: who acted and when. For a rejection the
// reason lives on the request itself, attached to the stage that rejected.
type Decision struct {
	ApproverID string
	DecidedAt  time.Time
}

// Request is a leave, half-day or permission request. Leave kinds carry an
// inclusive calendar date range; permissions carry a single date plus a
// start/end time of day ("15:04").
type Request struct {
	ID         string
	EmployeeID string
	Type       RequestType
	Status     RequestStatus

	StartDate time.Time
	EndDate   *time.Time
	StartTime *string
	EndTime   *string

	Reason string

	ManagerDecision    *Decision
	HRDecision         *Decision
	SuperAdminDecision *Decision
	RejectedStage      *Stage
	RejectionReason    *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for responses
	EmployeeName *string
	Department   *string
}

// DecisionFor returns the decision stamped in the given stage, if any.
func (r Request) DecisionFor(stage Stage) *Decision {
	switch stage {
	case StageManager:
		return r.ManagerDecision
	case StageHR:
		return r.HRDecision
	case StageSuperAdmin:
		return r.SuperAdminDecision
	}
	return nil
}

// DecidedAt returns the timestamp of whichever stage acted. For a terminal
// request exactly one stage carries one.
func (r Request) DecidedAt() *time.Time {
	for _, d := range []*Decision{r.ManagerDecision, r.HRDecision, r.SuperAdminDecision} {
		if d != nil {
			t := d.DecidedAt
			return &t
		}
	}
	return nil
}

// EffectiveEnd is the last day the request covers. A request without an end
// date is single-day.
func (r Request) EffectiveEnd() time.Time {
	if r.EndDate != nil {
		return *r.EndDate
	}
	return r.StartDate
}

// CoversDate reports whether day falls inside the request's inclusive date
// range. Requests with no usable start date never match.
func (r Request) CoversDate(day time.Time) bool {
	if r.StartDate.IsZero() {
		return false
	}
	start := dateOnly(r.StartDate)
	end := dateOnly(r.EffectiveEnd())
	d := dateOnly(day)
	return !d.Before(start) && !d.After(end)
}

// StartsOn reports whether the request's start date equals day. This is the
// original dashboard's matching rule, kept behind a compatibility flag.
func (r Request) StartsOn(day time.Time) bool {
	if r.StartDate.IsZero() {
		return false
	}
	return dateOnly(r.StartDate).Equal(dateOnly(day))
}

// TotalDays is the inclusive day count of the range, minimum 1.
func (r Request) TotalDays() int {
	days := int(dateOnly(r.EffectiveEnd()).Sub(dateOnly(r.StartDate)).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}

// PermissionHours is the end-time minus start-time span in fractional hours.
// Missing or malformed times yield 0.
func (r Request) PermissionHours() float64 {
	if r.StartTime == nil || r.EndTime == nil {
		return 0
	}
	start, err := time.Parse("15:04", *r.StartTime)
	if err != nil {
		return 0
	}
	end, err := time.Parse("15:04", *r.EndTime)
	if err != nil {
		return 0
	}
	hours := end.Sub(start).Hours()
	if hours < 0 {
		return 0
	}
	return hours
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
