package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/leavehub/leavehub-backend-go/internal/domain/request"
	"github.com/leavehub/leavehub-backend-go/internal/pkg/database"
)

type requestRepositoryImpl struct {
	db *database.DB
}

func NewRequestRepository(db *database.DB) request.RequestRepository {
	return &requestRepositoryImpl{db: db}
}

const requestColumns = `
	r.id, r.employee_id, r.type, r.status,
	r.start_date, r.end_date, r.start_time, r.end_time, r.reason,
	r.manager_decided_by, r.manager_decided_at,
	r.hr_decided_by, r.hr_decided_at,
	r.superadmin_decided_by, r.superadmin_decided_at,
	r.rejected_stage, r.rejection_reason,
	r.created_at, r.updated_at,
	e.full_name, e.department
`

const requestFrom = `
	FROM requests r
	INNER JOIN employees e ON r.employee_id = e.id
`

func (r *requestRepositoryImpl) Create(ctx context.Context, req request.Request) (request.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO requests (
			id, employee_id, type, status,
			start_date, end_date, start_time, end_time, reason,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7, $8, $9,
			NOW(), NOW()
		)
		RETURNING id, created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		req.ID,
		req.EmployeeID,
		req.Type,
		req.Status,
		req.StartDate,
		req.EndDate,
		req.StartTime,
		req.EndTime,
		req.Reason,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return request.Request{}, err
	}
	return req, nil
}

func (r *requestRepositoryImpl) GetByID(ctx context.Context, id string) (request.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + requestColumns + requestFrom + `WHERE r.id = $1`

	req, err := scanRequest(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return request.Request{}, request.ErrRequestNotFound
	}
	if err != nil {
		return request.Request{}, err
	}
	return req, nil
}

func (r *requestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]request.Request, error) {
	query := `
		SELECT ` + requestColumns + requestFrom + `
		WHERE r.employee_id = $1
		ORDER BY r.created_at DESC
	`
	return r.list(ctx, query, employeeID)
}

func (r *requestRepositoryImpl) ListAll(ctx context.Context) ([]request.Request, error) {
	query := `
		SELECT ` + requestColumns + requestFrom + `
		ORDER BY r.created_at DESC
	`
	return r.list(ctx, query)
}

func (r *requestRepositoryImpl) ListPendingForManager(ctx context.Context, managerID string) ([]request.Request, error) {
	query := `
		SELECT ` + requestColumns + requestFrom + `
		WHERE r.status = $1 AND r.employee_id <> $2
		ORDER BY r.created_at ASC
	`
	return r.list(ctx, query, request.StatusPending, managerID)
}

func (r *requestRepositoryImpl) ListByMonth(ctx context.Context, year int, month time.Month) ([]request.Request, error) {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0).AddDate(0, 0, -1)

	// A request overlaps the month when its range touches any day of it.
	query := `
		SELECT ` + requestColumns + requestFrom + `
		WHERE r.start_date <= $2 AND COALESCE(r.end_date, r.start_date) >= $1
		ORDER BY r.start_date ASC
	`
	return r.list(ctx, query, monthStart, monthEnd)
}

// stageColumns maps a stage onto its decision column pair. Keys are fixed so
// the stage never reaches the SQL text unescaped.
var stageColumns = map[request.Stage]struct{ by, at string }{
	request.StageManager:    {by: "manager_decided_by", at: "manager_decided_at"},
	request.StageHR:         {by: "hr_decided_by", at: "hr_decided_at"},
	request.StageSuperAdmin: {by: "superadmin_decided_by", at: "superadmin_decided_at"},
}

func (r *requestRepositoryImpl) ApplyApproval(ctx context.Context, id string, stage request.Stage, approverID string, at time.Time) (request.Request, error) {
	cols, ok := stageColumns[stage]
	if !ok {
		return request.Request{}, request.ErrApproverRoleInvalid
	}

	query := fmt.Sprintf(`
		UPDATE requests
		SET status = $1, %s = $2, %s = $3, updated_at = NOW()
		WHERE id = $4 AND status = $5
	`, cols.by, cols.at)

	var updated request.Request
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		tag, err := tx.Exec(txCtx, query, request.StatusApproved, approverID, at, id, request.StatusPending)
		if err != nil {
			return err
		}
		if tag.RowsAffected() != 1 {
			return request.ErrRequestAlreadyProcessed
		}

		updated, err = r.GetByID(txCtx, id)
		return err
	})
	if err != nil {
		return request.Request{}, err
	}
	return updated, nil
}

func (r *requestRepositoryImpl) ApplyRejection(ctx context.Context, id string, stage request.Stage, approverID, reason string, at time.Time) (request.Request, error) {
	cols, ok := stageColumns[stage]
	if !ok {
		return request.Request{}, request.ErrApproverRoleInvalid
	}

	query := fmt.Sprintf(`
		UPDATE requests
		SET status = $1, %s = $2, %s = $3, rejected_stage = $4, rejection_reason = $5, updated_at = NOW()
		WHERE id = $6 AND status = $7
	`, cols.by, cols.at)

	var updated request.Request
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		tag, err := tx.Exec(txCtx, query, request.StatusRejected, approverID, at, stage, reason, id, request.StatusPending)
		if err != nil {
			return err
		}
		if tag.RowsAffected() != 1 {
			return request.ErrRequestAlreadyProcessed
		}

		updated, err = r.GetByID(txCtx, id)
		return err
	})
	if err != nil {
		return request.Request{}, err
	}
	return updated, nil
}

func (r *requestRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]request.Request, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []request.Request
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func scanRequest(row pgx.Row) (request.Request, error) {
	var (
		req           request.Request
		managerBy     *string
		managerAt     *time.Time
		hrBy          *string
		hrAt          *time.Time
		superBy       *string
		superAt       *time.Time
		rejectedStage *string
	)

	err := row.Scan(
		&req.ID,
		&req.EmployeeID,
		&req.Type,
		&req.Status,
		&req.StartDate,
		&req.EndDate,
		&req.StartTime,
		&req.EndTime,
		&req.Reason,
		&managerBy,
		&managerAt,
		&hrBy,
		&hrAt,
		&superBy,
		&superAt,
		&rejectedStage,
		&req.RejectionReason,
		&req.CreatedAt,
		&req.UpdatedAt,
		&req.EmployeeName,
		&req.Department,
	)
	if err != nil {
		return request.Request{}, err
	}

	req.ManagerDecision = toDecision(managerBy, managerAt)
	req.HRDecision = toDecision(hrBy, hrAt)
	req.SuperAdminDecision = toDecision(superBy, superAt)
	if rejectedStage != nil {
		stage := request.Stage(*rejectedStage)
		req.RejectedStage = &stage
	}
	return req, nil
}

func toDecision(by *string, at *time.Time) *request.Decision {
	if by == nil || at == nil {
		return nil
	}
	return &request.Decision{ApproverID: *by, DecidedAt: *at}
}
