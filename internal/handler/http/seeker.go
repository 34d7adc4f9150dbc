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
	employmentService "github.com/careeradvance/jobboard-gateway/internal/service/employment"
)

type SeekerHandler interface {
	ListLeaveRequests(w http.ResponseWriter, r *http.Request)
	CreateLeaveRequest(w http.ResponseWriter, r *http.Request)
}

type SeekerHandlerImpl struct {
	leaveService leave.LeaveService
	resolver     *employmentService.Resolver
}

func NewSeekerHandler(svc leave.LeaveService, resolver *employmentService.Resolver) SeekerHandler {
	return &SeekerHandlerImpl{
		leaveService: svc,
		resolver:     resolver,
	}
}

// ListLeaveRequests implements SeekerHandler. An unmapped seeker gets an
// empty list, not an error.
func (s *SeekerHandlerImpl) ListLeaveRequests(w http.ResponseWriter, r *http.Request) {
	ident, _ := middleware.IdentityFromContext(r.Context())
	creds := upstream.CredentialsFromRequest(r)

	// An explicit employee_id query parameter skips resolution entirely.
	if employeeID := queryInt(r, "employee_id"); employeeID > 0 {
		requests, err := s.leaveService.ListEmployeeLeaveRequests(r.Context(), creds, employeeID, queryInt(r, "company_id"))
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, requests)
		return
	}

	requests, err := s.leaveService.ListSeekerLeaveRequests(r.Context(), creds, ident.JobseekerID, queryInt(r, "company_id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// CreateLeaveRequest implements SeekerHandler. Multipart because of the
// optional supporting document; the employee identity comes from the
// resolver, never from the form.
func (s *SeekerHandlerImpl) CreateLeaveRequest(w http.ResponseWriter, r *http.Request) {
	ident, _ := middleware.IdentityFromContext(r.Context())
	creds := upstream.CredentialsFromRequest(r)

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	dataJSON := r.FormValue("data")
	if dataJSON == "" {
		response.BadRequest(w, "Field 'data' is required", nil)
		return
	}

	var req leave.CreateLeaveRequestRequest
	if err := json.Unmarshal([]byte(dataJSON), &req); err != nil {
		slog.Error("Failed to unmarshal JSON data", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	ec, err := s.resolver.ResolveEmployeeContext(r.Context(), creds, employmentService.ResolveQuery{
		JobseekerID: ident.JobseekerID,
		EmployeeID:  queryInt(r, "employee_id"),
		CompanyID:   queryInt(r, "company_id"),
	})
	if err != nil {
		// A seeker with no employment cannot apply for leave.
		response.HandleError(w, err)
		return
	}
	req.EmployeeID = ec.EmployeeID

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	file, fileHeader, err := r.FormFile("apply_hard_copy")
	if err != nil && err != http.ErrMissingFile {
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	req.File = file
	req.FileHeader = fileHeader

	created, err := s.leaveService.CreateLeaveRequest(r.Context(), creds, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request created successfully", created)
}

func queryInt(r *http.Request, name string) int {
	value := r.URL.Query().Get(name)
	if value == "" {
		return 0
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}
