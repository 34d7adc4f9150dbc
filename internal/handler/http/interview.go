package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/careeradvance/jobboard-gateway/internal/handler/http/middleware"
	"github.com/careeradvance/jobboard-gateway/internal/handler/http/response"
	"github.com/careeradvance/jobboard-gateway/internal/pkg/upstream"
	"github.com/go-chi/chi/v5"
)

type InterviewHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

// InterviewHandlerImpl forwards interview scheduling to upstream verbatim,
// except that the employer id is filled in from the session when the payload
// omits it.
type InterviewHandlerImpl struct {
	upstream *upstream.Client
}

func NewInterviewHandler(client *upstream.Client) InterviewHandler {
	return &InterviewHandlerImpl{upstream: client}
}

// List implements InterviewHandler.
func (i *InterviewHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	ident, _ := middleware.IdentityFromContext(r.Context())
	creds := upstream.CredentialsFromRequest(r)

	query := url.Values{}
	if ident.EmployerID > 0 {
		query.Set("employer_id", strconv.Itoa(ident.EmployerID))
	}
	if jobID := r.URL.Query().Get("job_id"); jobID != "" {
		query.Set("job_id", jobID)
	}

	env, err := i.upstream.Get(r.Context(), creds, "api/employer/interviews", query)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, env.Data)
}

// Create implements InterviewHandler.
func (i *InterviewHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		slog.Error("Interview create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	ident, _ := middleware.IdentityFromContext(r.Context())
	if _, ok := payload["employer_id"]; !ok && ident.EmployerID > 0 {
		payload["employer_id"] = ident.EmployerID
	}

	creds := upstream.CredentialsFromRequest(r)
	env, err := i.upstream.PostJSON(r.Context(), creds, "api/employer/interviews", payload)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Interview scheduled successfully", env.Data)
}

// Update implements InterviewHandler.
func (i *InterviewHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Interview ID is required", nil)
		return
	}

	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		slog.Error("Interview update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	creds := upstream.CredentialsFromRequest(r)
	env, err := i.upstream.PutJSON(r.Context(), creds, "api/employer/interviews/"+id, payload)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Interview updated successfully", env.Data)
}
