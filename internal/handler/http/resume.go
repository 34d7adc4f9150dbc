package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/careeradvance/jobboard-gateway/internal/handler/http/middleware"
	"github.com/careeradvance/jobboard-gateway/internal/handler/http/response"
	"github.com/careeradvance/jobboard-gateway/internal/pkg/upstream"
	"github.com/careeradvance/jobboard-gateway/internal/pkg/validator"
	"github.com/google/uuid"
)

const maxResumeSize = 10 << 20

var allowedResumeExts = []string{".pdf", ".doc", ".docx"}

type ResumeHandler interface {
	Upload(w http.ResponseWriter, r *http.Request)
}

type ResumeHandlerImpl struct {
	upstream *upstream.Client
}

func NewResumeHandler(client *upstream.Client) ResumeHandler {
	return &ResumeHandlerImpl{upstream: client}
}

// Upload implements ResumeHandler. The file passes straight through to
// upstream under a collision-proof name; nothing is stored here.
func (h *ResumeHandlerImpl) Upload(w http.ResponseWriter, r *http.Request) {
	ident, _ := middleware.IdentityFromContext(r.Context())
	creds := upstream.CredentialsFromRequest(r)

	if err := r.ParseMultipartForm(maxResumeSize); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, fileHeader, err := r.FormFile("resume")
	if err != nil {
		response.BadRequest(w, "Field 'resume' is required", nil)
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !validator.IsInSlice(ext, allowedResumeExts) {
		response.BadRequest(w, "Invalid file type: only pdf, doc, docx allowed", nil)
		return
	}

	filename := fmt.Sprintf("%d-%s%s", ident.JobseekerID, uuid.New().String(), ext)

	form := upstream.NewForm()
	form.WriteField("jobseeker_id", strconv.Itoa(ident.JobseekerID))
	form.WriteFile("resume", filename, file)

	env, err := h.upstream.PostMultipart(r.Context(), creds, "api/seeker/resume", form)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Resume uploaded successfully", env.Data)
}
