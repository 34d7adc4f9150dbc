package leave

import (
	"context"
	"sync"

	"github.com/careeradvance/jobboard-gateway/internal/domain/leave"
	"github.com/careeradvance/jobboard-gateway/internal/pkg/upstream"
)

type ApprovalState string

const (
	ApprovalStateViewing    ApprovalState = "viewing"
	ApprovalStateEditing    ApprovalState = "editing"
	ApprovalStateSubmitting ApprovalState = "submitting"
	ApprovalStateDecided    ApprovalState = "decided"
)

// decisionClient is the slice of the leave service the workflow needs.
type decisionClient interface {
	ApproveLeaveRequest(ctx context.Context, creds upstream.Credentials, req leave.LeaveDecisionRequest) (leave.LeaveRequest, error)
	RejectLeaveRequest(ctx context.Context, creds upstream.Credentials, req leave.LeaveDecisionRequest) (leave.LeaveRequest, error)
}

// Approval models one approver's review of one pending leave request: the
// approved window starts out mirroring the request, either date can be edited
// with the day count recomputed, the count itself can then be overridden, and
// exactly one approve/reject call may be in flight at a time. A failed
// submission drops back to editing with the edits intact so the approver can
// retry.
type Approval struct {
	mu     sync.Mutex
	client decisionClient

	request leave.LeaveRequest
	state   ApprovalState

	approvedStart leave.Date
	approvedEnd   leave.Date
	approvedDays  int
}

// NewApproval opens a review of the given request. Approved and rejected
// requests are terminal and cannot be reopened.
func NewApproval(client decisionClient, request leave.LeaveRequest) (*Approval, error) {
	if request.Status != leave.LeaveRequestStatusPending {
		return nil, leave.ErrAlreadyProcessed
	}

	a := &Approval{
		client:  client,
		request: request,
		state:   ApprovalStateViewing,
	}

	// Prefill from any previously stored approved window, else from the
	// window the employee asked for.
	a.approvedStart = request.ApplyStartDate
	a.approvedEnd = request.ApplyEndDate
	if request.ApprovedStartDate != nil && !request.ApprovedStartDate.IsZero() {
		a.approvedStart = *request.ApprovedStartDate
	}
	if request.ApprovedEndDate != nil && !request.ApprovedEndDate.IsZero() {
		a.approvedEnd = *request.ApprovedEndDate
	}

	a.approvedDays = leave.InclusiveDays(a.approvedStart, a.approvedEnd)
	if request.NumApprovedDays != nil {
		a.approvedDays = *request.NumApprovedDays
	}

	return a, nil
}

func (a *Approval) State() ApprovalState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

func (a *Approval) Request() leave.LeaveRequest {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.request
}

// Window returns the approved window as currently edited.
func (a *Approval) Window() (start, end leave.Date, days int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.approvedStart, a.approvedEnd, a.approvedDays
}

// SetApprovedStart moves the start of the approved window and recomputes the
// day count.
func (a *Approval) SetApprovedStart(d leave.Date) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.editableLocked(); err != nil {
		return err
	}
	if a.approvedEnd.Before(d.Time) {
		return leave.ErrInvalidDateRange
	}

	a.approvedStart = d
	a.approvedDays = leave.InclusiveDays(a.approvedStart, a.approvedEnd)
	a.state = ApprovalStateEditing
	return nil
}

// SetApprovedEnd moves the end of the approved window and recomputes the day
// count.
func (a *Approval) SetApprovedEnd(d leave.Date) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.editableLocked(); err != nil {
		return err
	}
	if d.Before(a.approvedStart.Time) {
		return leave.ErrInvalidDateRange
	}

	a.approvedEnd = d
	a.approvedDays = leave.InclusiveDays(a.approvedStart, a.approvedEnd)
	a.state = ApprovalStateEditing
	return nil
}

// SetApprovedDays overrides the computed day count. The override survives
// until the next date edit, which recomputes it again.
func (a *Approval) SetApprovedDays(days int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.editableLocked(); err != nil {
		return err
	}
	a.approvedDays = days
	a.state = ApprovalStateEditing
	return nil
}

func (a *Approval) editableLocked() error {
	switch a.state {
	case ApprovalStateSubmitting:
		return leave.ErrDecisionInFlight
	case ApprovalStateDecided:
		return leave.ErrAlreadyProcessed
	}
	return nil
}

// Approve commits the current approved window as an approval.
func (a *Approval) Approve(ctx context.Context, creds upstream.Credentials) (leave.LeaveRequest, error) {
	return a.decide(ctx, creds, a.client.ApproveLeaveRequest)
}

// Reject commits the current approved window as a rejection.
func (a *Approval) Reject(ctx context.Context, creds upstream.Credentials) (leave.LeaveRequest, error) {
	return a.decide(ctx, creds, a.client.RejectLeaveRequest)
}

func (a *Approval) decide(
	ctx context.Context,
	creds upstream.Credentials,
	commit func(context.Context, upstream.Credentials, leave.LeaveDecisionRequest) (leave.LeaveRequest, error),
) (leave.LeaveRequest, error) {
	a.mu.Lock()
	switch a.state {
	case ApprovalStateSubmitting:
		a.mu.Unlock()
		return leave.LeaveRequest{}, leave.ErrDecisionInFlight
	case ApprovalStateDecided:
		a.mu.Unlock()
		return leave.LeaveRequest{}, leave.ErrAlreadyProcessed
	}
	a.state = ApprovalStateSubmitting
	req := leave.LeaveDecisionRequest{
		ID:                a.request.ID,
		ApprovedStartDate: a.approvedStart.String(),
		ApprovedEndDate:   a.approvedEnd.String(),
		NumApprovedDays:   a.approvedDays,
	}
	a.mu.Unlock()

	decided, err := commit(ctx, creds, req)

	a.mu.Lock()
	defer a.mu.Unlock()
	if err != nil {
		// Back to editing with the approver's edits intact.
		a.state = ApprovalStateEditing
		return leave.LeaveRequest{}, err
	}

	a.state = ApprovalStateDecided
	a.request = decided
	return decided, nil
}
