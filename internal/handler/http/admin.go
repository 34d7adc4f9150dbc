package http

import (
	"context"
	"net/http"

	"github.com/careeradvance/jobboard-gateway/internal/handler/http/response"
	"github.com/careeradvance/jobboard-gateway/internal/pkg/upstream"
)

type AdminHandler interface {
	ListUsers(w http.ResponseWriter, r *http.Request)
}

type AdminHandlerImpl struct {
	upstream *upstream.Client
}

func NewAdminHandler(client *upstream.Client) AdminHandler {
	return &AdminHandlerImpl{upstream: client}
}

// ListUsers implements AdminHandler. The upstream backend keeps seekers,
// employers and students in separate endpoints with separate payload shapes;
// this route fans them in and flattens everything into one list tagged with a
// role discriminator.
func (a *AdminHandlerImpl) ListUsers(w http.ResponseWriter, r *http.Request) {
	creds := upstream.CredentialsFromRequest(r)

	groups := []struct {
		role string
		path string
	}{
		{"seeker", "api/admin/seekers"},
		{"employer", "api/admin/employers"},
		{"student", "api/admin/students"},
	}

	users := make([]map[string]interface{}, 0)
	for _, group := range groups {
		records, err := a.fetchGroup(r.Context(), creds, group.path)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		for _, record := range records {
			record["role"] = group.role
			users = append(users, record)
		}
	}

	response.Success(w, users)
}

// fetchGroup normalizes both shapes upstream uses for user listings: a plain
// array, or an object keyed by id.
func (a *AdminHandlerImpl) fetchGroup(ctx context.Context, creds upstream.Credentials, path string) ([]map[string]interface{}, error) {
	env, err := a.upstream.Get(ctx, creds, path, nil)
	if err != nil {
		return nil, err
	}

	var records []map[string]interface{}
	if err := env.Decode(&records); err == nil {
		return records, nil
	}

	var keyed map[string]map[string]interface{}
	if err := env.Decode(&keyed); err != nil {
		return nil, err
	}

	records = make([]map[string]interface{}, 0, len(keyed))
	for id, record := range keyed {
		if _, ok := record["id"]; !ok {
			record["id"] = id
		}
		records = append(records, record)
	}
	return records, nil
}
