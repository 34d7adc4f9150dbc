package leave

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/careeradvance/jobboard-gateway/internal/domain/employment"
	"github.com/careeradvance/jobboard-gateway/internal/domain/leave"
	"github.com/careeradvance/jobboard-gateway/internal/pkg/upstream"
	employmentService "github.com/careeradvance/jobboard-gateway/internal/service/employment"
)

// CreateLeaveRequest implements leave.LeaveService. The upstream endpoint
// takes multipart form data because of the optional supporting document; the
// backend assigns the id, pending status and timestamps.
func (s *LeaveServiceImpl) CreateLeaveRequest(ctx context.Context, creds upstream.Credentials, req leave.CreateLeaveRequestRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	form := upstream.NewForm()
	form.WriteField("employee_id", strconv.Itoa(req.EmployeeID))
	form.WriteField("leave_type", req.LeaveType)
	form.WriteField("apply_start_date", req.StartDate)
	form.WriteField("apply_end_date", req.EndDate)
	form.WriteField("reason", req.Reason)
	if req.File != nil && req.FileHeader != nil {
		form.WriteFile("apply_hard_copy", req.FileHeader.Filename, req.File)
	}

	env, err := s.upstream.PostMultipart(ctx, creds, "api/leave-requests", form)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	var created leave.LeaveRequest
	if err := env.Decode(&created); err != nil {
		return leave.LeaveRequest{}, err
	}

	return created, nil
}

// ListLeaveRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaveRequests(ctx context.Context, creds upstream.Credentials, companyID int) ([]leave.LeaveRequest, error) {
	query := url.Values{}
	if companyID > 0 {
		query.Set("company_id", strconv.Itoa(companyID))
	}

	env, err := s.upstream.Get(ctx, creds, "api/leave-requests", query)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	var requests []leave.LeaveRequest
	if err := env.Decode(&requests); err != nil {
		return nil, err
	}

	return requests, nil
}

// ListEmployeeLeaveRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) ListEmployeeLeaveRequests(ctx context.Context, creds upstream.Credentials, employeeID, companyID int) ([]leave.LeaveRequest, error) {
	query := url.Values{}
	if companyID > 0 {
		query.Set("company_id", strconv.Itoa(companyID))
	}

	env, err := s.upstream.Get(ctx, creds, "api/leave-requests/employee/"+strconv.Itoa(employeeID), query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee leave requests: %w", err)
	}

	var requests []leave.LeaveRequest
	if err := env.Decode(&requests); err != nil {
		return nil, err
	}

	return requests, nil
}

// ListSeekerLeaveRequests implements leave.LeaveService. A seeker with no
// employee mapping has no leave history; that is an empty result, not an
// error.
func (s *LeaveServiceImpl) ListSeekerLeaveRequests(ctx context.Context, creds upstream.Credentials, jobseekerID, companyID int) ([]leave.LeaveRequest, error) {
	ec, err := s.resolver.ResolveEmployeeContext(ctx, creds, employmentService.ResolveQuery{
		JobseekerID: jobseekerID,
		CompanyID:   companyID,
	})
	if err != nil {
		if errors.Is(err, employment.ErrNoEmployeeMapping) {
			return []leave.LeaveRequest{}, nil
		}
		return nil, err
	}

	return s.ListEmployeeLeaveRequests(ctx, creds, ec.EmployeeID, ec.CompanyID)
}

// UpdateLeaveRequest implements leave.LeaveService. Partial update; only
// supplied fields are sent upstream.
func (s *LeaveServiceImpl) UpdateLeaveRequest(ctx context.Context, creds upstream.Credentials, req leave.UpdateLeaveRequestRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	env, err := s.upstream.PutJSON(ctx, creds, "api/leave-requests/"+strconv.Itoa(req.ID), req)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	var updated leave.LeaveRequest
	if err := env.Decode(&updated); err != nil {
		return leave.LeaveRequest{}, err
	}

	return updated, nil
}

// ApproveLeaveRequest implements leave.LeaveService. The request must still
// be pending; the backend enforces that and its refusal is surfaced as-is.
func (s *LeaveServiceImpl) ApproveLeaveRequest(ctx context.Context, creds upstream.Credentials, req leave.LeaveDecisionRequest) (leave.LeaveRequest, error) {
	return s.decide(ctx, creds, "approve", req)
}

// RejectLeaveRequest implements leave.LeaveService. Same payload shape as
// approve; the approved-window values are persisted as submitted.
func (s *LeaveServiceImpl) RejectLeaveRequest(ctx context.Context, creds upstream.Credentials, req leave.LeaveDecisionRequest) (leave.LeaveRequest, error) {
	return s.decide(ctx, creds, "reject", req)
}

func (s *LeaveServiceImpl) decide(ctx context.Context, creds upstream.Credentials, action string, req leave.LeaveDecisionRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	path := fmt.Sprintf("api/leave-requests/%d/%s", req.ID, action)
	env, err := s.upstream.PutJSON(ctx, creds, path, req)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to %s leave request: %w", action, err)
	}

	var decided leave.LeaveRequest
	if err := env.Decode(&decided); err != nil {
		return leave.LeaveRequest{}, err
	}

	return decided, nil
}

// DeleteLeaveRequest implements leave.LeaveService. Deletion is an
// administrative operation, separate from the approval workflow.
func (s *LeaveServiceImpl) DeleteLeaveRequest(ctx context.Context, creds upstream.Credentials, id int) error {
	if _, err := s.upstream.Delete(ctx, creds, "api/leave-requests/"+strconv.Itoa(id)); err != nil {
		return fmt.Errorf("failed to delete leave request: %w", err)
	}
	return nil
}
