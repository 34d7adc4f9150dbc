package upstream

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/careeradvance/jobboard-gateway/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(config.UpstreamConfig{
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
	})
}

func TestClient_Get_ForwardsCredentials(t *testing.T) {
	t.Parallel()

	var gotCookie, gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("employer_id"); err == nil {
			gotCookie = c.Value
		}
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true,"data":[]}`))
	})

	creds := Credentials{
		Cookies:       []*http.Cookie{{Name: "employer_id", Value: "7"}},
		Authorization: "Bearer token-123",
	}

	_, err := client.Get(context.Background(), creds, "api/leave-requests", nil)
	require.NoError(t, err)

	assert.Equal(t, "7", gotCookie)
	assert.Equal(t, "Bearer token-123", gotAuth)
}

func TestClient_Get_QueryEncoding(t *testing.T) {
	t.Parallel()

	var gotQuery url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"success":true}`))
	})

	query := url.Values{"company_id": {"3"}}
	_, err := client.Get(context.Background(), Credentials{}, "/api/leave-requests", query)
	require.NoError(t, err)

	assert.Equal(t, "3", gotQuery.Get("company_id"))
}

func TestClient_Non2xx_UsesUpstreamMessage(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"success":false,"message":"Leave request already processed"}`))
	})

	_, err := client.Get(context.Background(), Credentials{}, "api/leave-requests/5/approve", nil)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "Leave request already processed", apiErr.Message)
}

func TestClient_Non2xx_NonJSONBody_FallsBackToStatusText(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>Fatal error in /var/www/api.php</html>"))
	})

	_, err := client.Get(context.Background(), Credentials{}, "api/leave-requests", nil)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "Internal Server Error", apiErr.Message)
	assert.Contains(t, err.Error(), "500")
}

func TestClient_EnvelopeFailure_OnSuccessStatus(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"No records"}`))
	})

	_, err := client.Get(context.Background(), Credentials{}, "api/leave-requests", nil)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "No records", apiErr.Message)
}

func TestClient_PostMultipart(t *testing.T) {
	t.Parallel()

	var gotContentType, gotField, gotFile string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotField = r.FormValue("employee_id")

		file, _, err := r.FormFile("apply_hard_copy")
		require.NoError(t, err)
		defer file.Close()
		content, _ := io.ReadAll(file)
		gotFile = string(content)

		w.Write([]byte(`{"success":true,"data":{"id":1}}`))
	})

	form := NewForm()
	form.WriteField("employee_id", "42")
	form.WriteFile("apply_hard_copy", "note.pdf", strings.NewReader("doctor note"))

	_, err := client.PostMultipart(context.Background(), Credentials{}, "api/leave-requests", form)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(gotContentType, "multipart/form-data"))
	assert.Equal(t, "42", gotField)
	assert.Equal(t, "doctor note", gotFile)
}

func TestClient_PutJSON_SendsBody(t *testing.T) {
	t.Parallel()

	var gotBody string
	var gotMethod string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		w.Write([]byte(`{"success":true}`))
	})

	body := map[string]string{"reason": "family event"}
	_, err := client.PutJSON(context.Background(), Credentials{}, "api/leave-requests/5", body)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.JSONEq(t, `{"reason":"family event"}`, gotBody)
}
