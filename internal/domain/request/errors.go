package request

import "errors"

var (
	ErrRequestNotFound         = errors.New("Request not found")
	ErrRequestAlreadyProcessed = errors.New("Request already processed")
	ErrRejectionReasonRequired = errors.New("Rejection reason is required")
	ErrApproverRoleInvalid     = errors.New("Role is not allowed to decide requests")
	ErrInvalidDateRange        = errors.New("End date is before start date")
	ErrInvalidTimeRange        = errors.New("End time is before start time")
)
