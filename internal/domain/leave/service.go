package leave

import (
	"context"

	"github.com/careeradvance/jobboard-gateway/internal/pkg/upstream"
)

// LeaveService is the typed client surface over the upstream leave API.
// Every call forwards the caller's credentials; failures carry the upstream
// message. No retries anywhere — presentation of a failure is the caller's
// concern.
type LeaveService interface {
	// Request
	CreateLeaveRequest(ctx context.Context, creds upstream.Credentials, req CreateLeaveRequestRequest) (LeaveRequest, error)
	ListLeaveRequests(ctx context.Context, creds upstream.Credentials, companyID int) ([]LeaveRequest, error)
	ListEmployeeLeaveRequests(ctx context.Context, creds upstream.Credentials, employeeID, companyID int) ([]LeaveRequest, error)
	ListSeekerLeaveRequests(ctx context.Context, creds upstream.Credentials, jobseekerID, companyID int) ([]LeaveRequest, error)
	UpdateLeaveRequest(ctx context.Context, creds upstream.Credentials, req UpdateLeaveRequestRequest) (LeaveRequest, error)
	ApproveLeaveRequest(ctx context.Context, creds upstream.Credentials, req LeaveDecisionRequest) (LeaveRequest, error)
	RejectLeaveRequest(ctx context.Context, creds upstream.Credentials, req LeaveDecisionRequest) (LeaveRequest, error)
	DeleteLeaveRequest(ctx context.Context, creds upstream.Credentials, id int) error
	// Type
	ListLeaveTypes(ctx context.Context, creds upstream.Credentials, companyID int) ([]LeaveType, error)
	CreateLeaveType(ctx context.Context, creds upstream.Credentials, req CreateLeaveTypeRequest) (LeaveType, error)
	UpdateLeaveType(ctx context.Context, creds upstream.Credentials, req UpdateLeaveTypeRequest) (LeaveType, error)
	DeleteLeaveType(ctx context.Context, creds upstream.Credentials, id int) error
}
