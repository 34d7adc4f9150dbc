package leave

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/careeradvance/jobboard-gateway/internal/domain/leave"
	"github.com/careeradvance/jobboard-gateway/internal/pkg/upstream"
)

// ListLeaveTypes implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaveTypes(ctx context.Context, creds upstream.Credentials, companyID int) ([]leave.LeaveType, error) {
	query := url.Values{}
	if companyID > 0 {
		query.Set("company_id", strconv.Itoa(companyID))
	}

	env, err := s.upstream.Get(ctx, creds, "api/leave-types", query)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}

	var types []leave.LeaveType
	if err := env.Decode(&types); err != nil {
		return nil, err
	}

	return types, nil
}

// CreateLeaveType implements leave.LeaveService.
func (s *LeaveServiceImpl) CreateLeaveType(ctx context.Context, creds upstream.Credentials, req leave.CreateLeaveTypeRequest) (leave.LeaveType, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveType{}, err
	}

	env, err := s.upstream.PostJSON(ctx, creds, "api/leave-types", req)
	if err != nil {
		return leave.LeaveType{}, fmt.Errorf("failed to create leave type: %w", err)
	}

	var created leave.LeaveType
	if err := env.Decode(&created); err != nil {
		return leave.LeaveType{}, err
	}

	return created, nil
}

// UpdateLeaveType implements leave.LeaveService.
func (s *LeaveServiceImpl) UpdateLeaveType(ctx context.Context, creds upstream.Credentials, req leave.UpdateLeaveTypeRequest) (leave.LeaveType, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveType{}, err
	}

	env, err := s.upstream.PutJSON(ctx, creds, "api/leave-types/"+strconv.Itoa(req.ID), req)
	if err != nil {
		return leave.LeaveType{}, fmt.Errorf("failed to update leave type: %w", err)
	}

	var updated leave.LeaveType
	if err := env.Decode(&updated); err != nil {
		return leave.LeaveType{}, err
	}

	return updated, nil
}

// DeleteLeaveType implements leave.LeaveService.
func (s *LeaveServiceImpl) DeleteLeaveType(ctx context.Context, creds upstream.Credentials, id int) error {
	if _, err := s.upstream.Delete(ctx, creds, "api/leave-types/"+strconv.Itoa(id)); err != nil {
		return fmt.Errorf("failed to delete leave type: %w", err)
	}
	return nil
}
