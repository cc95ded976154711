package attendance

import (
	"context"

	"github.com/leavehub/leavehub-backend-go/internal/domain/holiday"
)

type AttendanceService interface {
	// TodayReport aggregates the active roster against today's approved
	// requests. Calling it twice on an unchanged day yields the same report.
	TodayReport(ctx context.Context) (Report, error)
	DepartmentReport(ctx context.Context, department string) (DepartmentReport, error)
	// TomorrowHoliday returns the holiday falling on the next calendar day,
	// or nil when there is none.
	TomorrowHoliday(ctx context.Context) (*holiday.Holiday, error)
}
