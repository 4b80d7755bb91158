package leave

import "errors"

var (
	ErrInvalidDateFormat = errors.New("start and end dates must be valid YYYY-MM-DD dates")
	ErrStartDateInPast   = errors.New("start date cannot be in the past")
	ErrEndBeforeStart    = errors.New("end date cannot be before start date")

	ErrRequestNotFound  = errors.New("leave request not found")
	ErrAlreadyProcessed = errors.New("leave request already processed")
)
