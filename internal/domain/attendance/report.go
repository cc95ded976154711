package attendance

import "time"

// PresenceStatus is an employee's state for a single day.
type PresenceStatus string

const (
	StatusPresent      PresenceStatus = "present"
	StatusOnLeave      PresenceStatus = "leave"
	StatusOnPermission PresenceStatus = "permission"
)

// Summary is one bucket count set. Absent is carried for API shape but is
// always zero, presence is inferred rather than clocked.
type Summary struct {
	Present      int `json:"present"`
	OnLeave      int `json:"on_leave"`
	OnPermission int `json:"on_permission"`
	Absent       int `json:"absent"`
	Total        int `json:"total"`
}

// EmployeeStatus is one tracked employee's resolved state for the day.
type EmployeeStatus struct {
	EmployeeID string         `json:"employee_id"`
	Name       string         `json:"name"`
	Department string         `json:"department"`
	Status     PresenceStatus `json:"status"`
	// Request fields describe the approved request that moved the employee
	// off present, empty otherwise.
	RequestID   string `json:"request_id,omitempty"`
	RequestType string `json:"request_type,omitempty"`
	Reason      string `json:"reason,omitempty"`
}

// Report is the whole-organization attendance picture for one day.
type Report struct {
	Date        string             `json:"date"`
	Summary     Summary            `json:"summary"`
	Departments map[string]Summary `json:"departments"`
	Employees   []EmployeeStatus   `json:"employees"`
}

// DepartmentReport is the projection of a Report onto one department.
type DepartmentReport struct {
	Date       string           `json:"date"`
	Department string           `json:"department"`
	Summary    Summary          `json:"summary"`
	Employees  []EmployeeStatus `json:"employees"`
}

// SelectDepartment narrows the report to a single department. An unknown
// department yields empty counts, not an error.
func (r Report) SelectDepartment(department string) DepartmentReport {
	out := DepartmentReport{
		Date:       r.Date,
		Department: department,
		Summary:    r.Departments[department],
	}
	for _, e := range r.Employees {
		if e.Department == department {
			out.Employees = append(out.Employees, e)
		}
	}
	return out
}

// DateKey formats a day the way reports key on it.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
