package calendar

import "time"

// Scope picks whose requests a calendar view covers.
type Scope string

const (
	// ScopePersonal keeps only the viewer's own requests.
	ScopePersonal Scope = "personal"
	// ScopeTeam keeps everyone's.
	ScopeTeam Scope = "team"
)

// Entry is one approved absence shown on a calendar day.
type Entry struct {
	RequestID    string `json:"request_id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Department   string `json:"department"`
	Type         string `json:"type"`
	// Times are set for permission entries only.
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
}

// DayCell is one rendered day. Cells slices use nil for the leading padding
// before the first of the month, so a month starting on Thursday begins with
// four nil cells (weeks run Sunday first).
type DayCell struct {
	Day       int     `json:"day"`
	Date      string  `json:"date"`
	IsHoliday bool    `json:"is_holiday"`
	Holiday   string  `json:"holiday,omitempty"`
	Entries   []Entry `json:"entries"`
}

// MonthCalendar is the padded cell grid for one month.
type MonthCalendar struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Cells []*DayCell `json:"cells"`
}

// Weeks chunks the cells into Sunday-first rows of seven, padding the last
// row with nil.
func (m MonthCalendar) Weeks() [][]*DayCell {
	var weeks [][]*DayCell
	for start := 0; start < len(m.Cells); start += 7 {
		week := make([]*DayCell, 7)
		copy(week, m.Cells[start:min(start+7, len(m.Cells))])
		weeks = append(weeks, week)
	}
	return weeks
}

// EmployeeSummary is one employee's monthly absence totals.
type EmployeeSummary struct {
	EmployeeID      string  `json:"employee_id"`
	Name            string  `json:"name"`
	Department      string  `json:"department"`
	LeaveDays       int     `json:"leave_days"`
	PermissionHours float64 `json:"permission_hours"`
	Approved        int     `json:"approved"`
	Pending         int     `json:"pending"`
	Rejected        int     `json:"rejected"`
}

// MonthSummary aggregates a month of requests per employee.
type MonthSummary struct {
	Year      int               `json:"year"`
	Month     time.Month        `json:"month"`
	Employees []EmployeeSummary `json:"employees"`
}
