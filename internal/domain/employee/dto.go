package employee

import "time"

type EmployeeResponse struct {
	ID         string    `json:"id"`
	Code       string    `json:"code"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	Role       string    `json:"role"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		Code:       e.Code,
		FullName:   e.FullName,
		Email:      e.Email,
		Department: e.Department,
		Role:       string(e.Role),
		Status:     string(e.Status),
		CreatedAt:  e.CreatedAt,
	}
}

func ToResponses(employees []Employee) []EmployeeResponse {
	responses := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, ToResponse(e))
	}
	return responses
}
