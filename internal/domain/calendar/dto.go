package calendar

import "time"

// MonthCalendarResponse carries the grid as Sunday-first rows of seven cells,
// with nil placeholders padding the first and last week.
type MonthCalendarResponse struct {
	Year  int          `json:"year"`
	Month time.Month   `json:"month"`
	Weeks [][]*DayCell `json:"weeks"`
}

func (m MonthCalendar) ToResponse() MonthCalendarResponse {
	return MonthCalendarResponse{
		Year:  m.Year,
		Month: m.Month,
		Weeks: m.Weeks(),
	}
}
