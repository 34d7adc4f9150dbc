package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("Leave request not found")
	ErrLeaveTypeNotFound    = errors.New("Leave type not found")
	ErrAlreadyProcessed     = errors.New("Leave request already processed")
	ErrDecisionInFlight     = errors.New("A decision for this leave request is already in flight")
	ErrInvalidDateRange     = errors.New("End date must not be before start date")
)
