package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/careeradvance/jobboard-gateway/internal/domain/leave"
	"github.com/careeradvance/jobboard-gateway/internal/handler/http/middleware"
	"github.com/careeradvance/jobboard-gateway/internal/handler/http/response"
	"github.com/careeradvance/jobboard-gateway/internal/pkg/upstream"
	leaveService "github.com/careeradvance/jobboard-gateway/internal/service/leave"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	ListRequests(w http.ResponseWriter, r *http.Request)
	ListEmployeeRequests(w http.ResponseWriter, r *http.Request)
	UpdateRequest(w http.ResponseWriter, r *http.Request)
	ApproveRequest(w http.ResponseWriter, r *http.Request)
	RejectRequest(w http.ResponseWriter, r *http.Request)
	DeleteRequest(w http.ResponseWriter, r *http.Request)

	ListTypes(w http.ResponseWriter, r *http.Request)
	CreateType(w http.ResponseWriter, r *http.Request)
	UpdateType(w http.ResponseWriter, r *http.Request)
	DeleteType(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(svc leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: svc}
}

// ListRequests implements LeaveHandler.
func (l *LeaveHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	ident, _ := middleware.IdentityFromContext(r.Context())
	creds := upstream.CredentialsFromRequest(r)

	requests, err := l.leaveService.ListLeaveRequests(r.Context(), creds, ident.CompanyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// ListEmployeeRequests implements LeaveHandler.
func (l *LeaveHandlerImpl) ListEmployeeRequests(w http.ResponseWriter, r *http.Request) {
	employeeID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || employeeID <= 0 {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	ident, _ := middleware.IdentityFromContext(r.Context())
	creds := upstream.CredentialsFromRequest(r)

	requests, err := l.leaveService.ListEmployeeLeaveRequests(r.Context(), creds, employeeID, ident.CompanyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// UpdateRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) UpdateRequest(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	var req leave.UpdateLeaveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	creds := upstream.CredentialsFromRequest(r)
	updated, err := l.leaveService.UpdateLeaveRequest(r.Context(), creds, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request updated successfully", updated)
}

// decisionInput is the approver's optional overrides of the approved window.
// Absent fields keep the values prefilled from the request itself.
type decisionInput struct {
	ApprovedStartDate *string `json:"approved_start_date,omitempty"`
	ApprovedEndDate   *string `json:"approved_end_date,omitempty"`
	NumApprovedDays   *int    `json:"num_approved_days,omitempty"`
}

// ApproveRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	l.decideRequest(w, r, func(a *leaveService.Approval, creds upstream.Credentials) (leave.LeaveRequest, error) {
		return a.Approve(r.Context(), creds)
	}, "Leave request approved successfully")
}

// RejectRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) RejectRequest(w http.ResponseWriter, r *http.Request) {
	l.decideRequest(w, r, func(a *leaveService.Approval, creds upstream.Credentials) (leave.LeaveRequest, error) {
		return a.Reject(r.Context(), creds)
	}, "Leave request rejected successfully")
}

func (l *LeaveHandlerImpl) decideRequest(
	w http.ResponseWriter,
	r *http.Request,
	commit func(*leaveService.Approval, upstream.Credentials) (leave.LeaveRequest, error),
	message string,
) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	var input decisionInput
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			slog.Error("decision decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	ident, _ := middleware.IdentityFromContext(r.Context())
	creds := upstream.CredentialsFromRequest(r)

	request, err := l.findCompanyRequest(r, creds, ident.CompanyID, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	approval, err := leaveService.NewApproval(l.leaveService, request)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if input.ApprovedStartDate != nil {
		start, parseErr := leave.ParseDate(*input.ApprovedStartDate)
		if parseErr != nil {
			response.BadRequest(w, "approved_start_date must be a valid date (YYYY-MM-DD)", nil)
			return
		}
		if err := approval.SetApprovedStart(start); err != nil {
			response.HandleError(w, err)
			return
		}
	}
	if input.ApprovedEndDate != nil {
		end, parseErr := leave.ParseDate(*input.ApprovedEndDate)
		if parseErr != nil {
			response.BadRequest(w, "approved_end_date must be a valid date (YYYY-MM-DD)", nil)
			return
		}
		if err := approval.SetApprovedEnd(end); err != nil {
			response.HandleError(w, err)
			return
		}
	}
	// A manual day-count override comes after the date edits so it wins.
	if input.NumApprovedDays != nil {
		if err := approval.SetApprovedDays(*input.NumApprovedDays); err != nil {
			response.HandleError(w, err)
			return
		}
	}

	decided, err := commit(approval, creds)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, decided)
}

func (l *LeaveHandlerImpl) findCompanyRequest(r *http.Request, creds upstream.Credentials, companyID, id int) (leave.LeaveRequest, error) {
	requests, err := l.leaveService.ListLeaveRequests(r.Context(), creds, companyID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	for _, request := range requests {
		if request.ID == id {
			return request, nil
		}
	}
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

// DeleteRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) DeleteRequest(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	creds := upstream.CredentialsFromRequest(r)
	if err := l.leaveService.DeleteLeaveRequest(r.Context(), creds, id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request deleted successfully", nil)
}

// ListTypes implements LeaveHandler.
func (l *LeaveHandlerImpl) ListTypes(w http.ResponseWriter, r *http.Request) {
	ident, _ := middleware.IdentityFromContext(r.Context())
	creds := upstream.CredentialsFromRequest(r)

	types, err := l.leaveService.ListLeaveTypes(r.Context(), creds, ident.CompanyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, types)
}

// CreateType implements LeaveHandler.
func (l *LeaveHandlerImpl) CreateType(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateType decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	ident, _ := middleware.IdentityFromContext(r.Context())
	if req.CompanyID == 0 {
		req.CompanyID = ident.CompanyID
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	creds := upstream.CredentialsFromRequest(r)
	created, err := l.leaveService.CreateLeaveType(r.Context(), creds, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave type created successfully", created)
}

// UpdateType implements LeaveHandler.
func (l *LeaveHandlerImpl) UpdateType(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		response.BadRequest(w, "Leave type ID is required", nil)
		return
	}

	var req leave.UpdateLeaveTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateType decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	creds := upstream.CredentialsFromRequest(r)
	updated, err := l.leaveService.UpdateLeaveType(r.Context(), creds, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave type updated successfully", updated)
}

// DeleteType implements LeaveHandler.
func (l *LeaveHandlerImpl) DeleteType(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		response.BadRequest(w, "Leave type ID is required", nil)
		return
	}

	creds := upstream.CredentialsFromRequest(r)
	if err := l.leaveService.DeleteLeaveType(r.Context(), creds, id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave type deleted successfully", nil)
}
