package request

import (
	"time"

	"github.com/leavehub/leavehub-backend-go/internal/pkg/validator"
)

// CreateRequestRequest is the submission payload. Dates are "2006-01-02",
// times "15:04". EndDate is required for leave kinds, the time pair for
// permissions.
type CreateRequestRequest struct {
	EmployeeID string `json:"-"`
	Type       string `json:"type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date,omitempty"`
	StartTime  string `json:"start_time,omitempty"`
	EndTime    string `json:"end_time,omitempty"`
	Reason     string `json:"reason"`
}

func (r *CreateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Type, []string{string(TypeLeave), string(TypeHalfDay), string(TypePermission)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of leave, halfday, permission",
		})
	}

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if r.EndDate != "" {
		if _, ok := validator.IsValidDate(r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if RequestType(r.Type) == TypePermission {
		if validator.IsEmpty(r.StartTime) {
			errs = append(errs, validator.ValidationError{
				Field:   "start_time",
				Message: "start_time is required for permission requests",
			})
		} else if _, ok := validator.IsValidTimeOfDay(r.StartTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_time",
				Message: "start_time must be in HH:MM format",
			})
		}
		if validator.IsEmpty(r.EndTime) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: "end_time is required for permission requests",
			})
		} else if _, ok := validator.IsValidTimeOfDay(r.EndTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: "end_time must be in HH:MM format",
			})
		}
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DecisionResponse struct {
	ApproverID string    `json:"approver_id"`
	DecidedAt  time.Time `json:"decided_at"`
}

type RequestResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Type       string `json:"type"`
	Status     string `json:"status"`

	StartDate string  `json:"start_date"`
	EndDate   *string `json:"end_date,omitempty"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`

	Reason string `json:"reason"`

	ManagerDecision    *DecisionResponse `json:"manager_decision,omitempty"`
	HRDecision         *DecisionResponse `json:"hr_decision,omitempty"`
	SuperAdminDecision *DecisionResponse `json:"superadmin_decision,omitempty"`
	RejectedStage      *string           `json:"rejected_stage,omitempty"`
	RejectionReason    *string           `json:"rejection_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`

	EmployeeName *string `json:"employee_name,omitempty"`
	Department   *string `json:"department,omitempty"`
}

// ToResponse converts the entity into its API shape.
func ToResponse(r Request) RequestResponse {
	resp := RequestResponse{
		ID:              r.ID,
		EmployeeID:      r.EmployeeID,
		Type:            string(r.Type),
		Status:          string(r.Status),
		StartDate:       r.StartDate.Format("2006-01-02"),
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		Reason:          r.Reason,
		RejectionReason: r.RejectionReason,
		CreatedAt:       r.CreatedAt,
		EmployeeName:    r.EmployeeName,
		Department:      r.Department,
	}
	if r.EndDate != nil {
		end := r.EndDate.Format("2006-01-02")
		resp.EndDate = &end
	}
	if r.RejectedStage != nil {
		stage := string(*r.RejectedStage)
		resp.RejectedStage = &stage
	}
	resp.ManagerDecision = toDecisionResponse(r.ManagerDecision)
	resp.HRDecision = toDecisionResponse(r.HRDecision)
	resp.SuperAdminDecision = toDecisionResponse(r.SuperAdminDecision)
	return resp
}

func toDecisionResponse(d *Decision) *DecisionResponse {
	if d == nil {
		return nil
	}
	return &DecisionResponse{ApproverID: d.ApproverID, DecidedAt: d.DecidedAt}
}

// ToResponses converts a slice, preserving order.
func ToResponses(requests []Request) []RequestResponse {
	responses := make([]RequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, ToResponse(r))
	}
	return responses
}

// DashboardStats backs the manager dashboard cards.
type DashboardStats struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Today    int `json:"today"`
}
