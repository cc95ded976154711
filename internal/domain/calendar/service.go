package calendar

import (
	"context"
	"time"
)

type CalendarService interface {
	// MonthCalendar builds the padded day grid with approved absences and
	// holidays placed on their days. ScopePersonal narrows the grid to the
	// viewer's own requests.
	MonthCalendar(ctx context.Context, year int, month time.Month, scope Scope, viewerID string) (MonthCalendar, error)
	// MonthlySummary totals leave days, permission hours and request counts
	// per employee for the month. A non-empty viewerID narrows the summary
	// to that employee's row.
	MonthlySummary(ctx context.Context, year int, month time.Month, viewerID string) (MonthSummary, error)
}
