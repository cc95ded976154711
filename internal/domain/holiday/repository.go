package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	// GetByDate returns the holiday on the given calendar day. Returns
	// ErrHolidayNotFound when the day is a working day.
	GetByDate(ctx context.Context, date time.Time) (Holiday, error)
	ListByMonth(ctx context.Context, year int, month time.Month) ([]Holiday, error)
}
