package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/leavehub/leavehub-backend-go/internal/domain/holiday"
	"github.com/leavehub/leavehub-backend-go/internal/pkg/database"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

func (r *holidayRepositoryImpl) GetByDate(ctx context.Context, date time.Time) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, date, created_at
		FROM holidays
		WHERE date = $1
	`
	var h holiday.Holiday
	err := q.QueryRow(ctx, query, date).Scan(&h.ID, &h.Name, &h.Date, &h.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return holiday.Holiday{}, holiday.ErrHolidayNotFound
	}
	if err != nil {
		return holiday.Holiday{}, err
	}
	return h, nil
}

func (r *holidayRepositoryImpl) ListByMonth(ctx context.Context, year int, month time.Month) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	query := `
		SELECT id, name, date, created_at
		FROM holidays
		WHERE date >= $1 AND date < $2
		ORDER BY date ASC
	`
	rows, err := q.Query(ctx, query, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(&h.ID, &h.Name, &h.Date, &h.CreatedAt); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}
