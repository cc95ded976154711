package employee

import (
	"strings"
	"time"
)

// Employee is the roster record. The employee code doubles as the login
// credential; everything else is display/reporting data owned by HR.
type Employee struct {
	ID           string
	Code         string
	FullName     string
	Email        string
	Department   string
	Role         Role
	Status       Status
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Role string

const (
	RoleEmployee   Role = "employee"
	RoleManager    Role = "manager"
	RoleHR         Role = "hr"
	RoleSuperAdmin Role = "superadmin"

	// Legacy sub-roles. Treated as employee-equivalent everywhere except the
	// department grouping they happen to sit in.
	RoleIntern    Role = "intern"
	RoleDI        Role = "di"
	RoleDM        Role = "dm"
	RoleAssociate Role = "associate"
)

// CanApprove reports whether the role may close a pending request.
func (r Role) CanApprove() bool {
	switch r {
	case RoleManager, RoleHR, RoleSuperAdmin:
		return true
	}
	return false
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusRejoined Status = "rejoined"
)

// IsActive treats every status except "inactive" (any casing) as active,
// including the empty string.
func (s Status) IsActive() bool {
	return !strings.EqualFold(string(s), string(StatusInactive))
}

// AttendanceClass says whether a role belongs in the attendance roster.
type AttendanceClass int

const (
	// Tracked roles appear in the daily report.
	Tracked AttendanceClass = iota
	// ExcludedAsLeadership roles (and anything unrecognized) are left out:
	// the report describes the team, not the people running it.
	ExcludedAsLeadership
)

var attendanceRoles = map[Role]struct{}{
	RoleEmployee:  {},
	RoleHR:        {},
	RoleIntern:    {},
	RoleDI:        {},
	RoleDM:        {},
	RoleAssociate: {},
}

// ClassifyForAttendance maps a role to its attendance classification.
// Adding a role means touching this table, nothing else.
func ClassifyForAttendance(r Role) AttendanceClass {
	if _, ok := attendanceRoles[Role(strings.ToLower(string(r)))]; ok {
		return Tracked
	}
	return ExcludedAsLeadership
}

// EligibleForAttendance combines the status and role checks of the daily
// report roster filter.
func (e Employee) EligibleForAttendance() bool {
	return e.Status.IsActive() && ClassifyForAttendance(e.Role) == Tracked
}
