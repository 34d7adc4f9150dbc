package employment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/careeradvance/jobboard-gateway/internal/config"
	"github.com/careeradvance/jobboard-gateway/internal/domain/employment"
	"github.com/careeradvance/jobboard-gateway/internal/pkg/upstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	calls    atomic.Int64
	sessions http.HandlerFunc
	hiring   http.HandlerFunc
	mapping  http.HandlerFunc
}

func (f *fakeBackend) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.calls.Add(1)
		switch r.URL.Path {
		case "/api/seeker/time-tracking/active_session":
			f.sessions(w, r)
		case "/api/seeker/profile/get_hiring_employers":
			f.hiring(w, r)
		case "/api/seeker/profile/get_employee_mapping":
			f.mapping(w, r)
		default:
			http.NotFound(w, r)
		}
	}
}

func respond(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}
}

func respondStatus(status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}
}

func newTestResolver(t *testing.T, backend *fakeBackend) *Resolver {
	t.Helper()
	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)
	client := upstream.NewClient(config.UpstreamConfig{
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
	})
	return NewResolver(client, time.Minute)
}

func TestResolver_ExplicitEmployeeID_ShortCircuits(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{
		sessions: respond(`{"success":true}`),
		hiring:   respond(`{"success":true,"data":[]}`),
		mapping:  respond(`{"success":true}`),
	}
	resolver := newTestResolver(t, backend)

	ec, err := resolver.ResolveEmployeeContext(context.Background(), upstream.Credentials{}, ResolveQuery{
		JobseekerID: 9,
		EmployeeID:  42,
		CompanyID:   3,
	})
	require.NoError(t, err)

	assert.Equal(t, employment.EmployeeContext{EmployeeID: 42, CompanyID: 3}, ec)
	assert.Equal(t, int64(0), backend.calls.Load(), "no auxiliary HTTP calls may be made")
}

func TestResolver_ActiveSessionWins(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{
		sessions: respond(`{"success":true,"data":{"employee_id":11,"company_id":4}}`),
		hiring: func(w http.ResponseWriter, r *http.Request) {
			t.Error("hiring employers must not be queried once the session resolves")
		},
		mapping: func(w http.ResponseWriter, r *http.Request) {
			t.Error("employee mapping must not be queried once the session resolves")
		},
	}
	resolver := newTestResolver(t, backend)

	ec, err := resolver.ResolveEmployeeContext(context.Background(), upstream.Credentials{}, ResolveQuery{JobseekerID: 9})
	require.NoError(t, err)
	assert.Equal(t, employment.EmployeeContext{EmployeeID: 11, CompanyID: 4}, ec)
}

func TestResolver_SessionFailure_FallsToHiringEmployers(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{
		sessions: respondStatus(http.StatusInternalServerError),
		hiring:   respond(`{"success":true,"data":[{"employee_id":"21","company_id":"5"},{"employee_id":"99","company_id":"6"}]}`),
		mapping: func(w http.ResponseWriter, r *http.Request) {
			t.Error("employee mapping must not be queried once an employer resolves")
		},
	}
	resolver := newTestResolver(t, backend)

	ec, err := resolver.ResolveEmployeeContext(context.Background(), upstream.Credentials{}, ResolveQuery{JobseekerID: 9})
	require.NoError(t, err)

	// First-listed employer wins, string-typed ids included.
	assert.Equal(t, employment.EmployeeContext{EmployeeID: 21, CompanyID: 5}, ec)
}

func TestResolver_FallsThroughToEmployeeMapping(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{
		sessions: respond(`{"success":true,"data":{}}`),
		hiring:   respond(`[]`),
		mapping:  respond(`{"employee_id":33,"company_id":2}`),
	}
	resolver := newTestResolver(t, backend)

	ec, err := resolver.ResolveEmployeeContext(context.Background(), upstream.Credentials{}, ResolveQuery{JobseekerID: 9})
	require.NoError(t, err)
	assert.Equal(t, employment.EmployeeContext{EmployeeID: 33, CompanyID: 2}, ec)
}

func TestResolver_Exhausted_ReturnsNoMapping(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{
		sessions: respondStatus(http.StatusInternalServerError),
		hiring:   respondStatus(http.StatusBadGateway),
		mapping:  respond(`{"success":false,"message":"not found"}`),
	}
	resolver := newTestResolver(t, backend)

	_, err := resolver.ResolveEmployeeContext(context.Background(), upstream.Credentials{}, ResolveQuery{JobseekerID: 9})
	assert.ErrorIs(t, err, employment.ErrNoEmployeeMapping)
	assert.Equal(t, int64(3), backend.calls.Load(), "every fallback step is attempted exactly once")
}

func TestResolver_CachesResolvedContext(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{
		sessions: respond(`{"success":true,"data":{"employee_id":11,"company_id":4}}`),
	}
	resolver := newTestResolver(t, backend)

	ctx := context.Background()
	_, err := resolver.ResolveEmployeeContext(ctx, upstream.Credentials{}, ResolveQuery{JobseekerID: 9})
	require.NoError(t, err)

	ec, err := resolver.ResolveEmployeeContext(ctx, upstream.Credentials{}, ResolveQuery{JobseekerID: 9})
	require.NoError(t, err)

	assert.Equal(t, 11, ec.EmployeeID)
	assert.Equal(t, int64(1), backend.calls.Load(), "second resolution must be served from cache")
}

func TestResolver_CompanyScopedCacheKeys(t *testing.T) {
	t.Parallel()

	backend := &fakeBackend{
		sessions: respond(`{"success":true,"data":{"employee_id":11}}`),
	}
	resolver := newTestResolver(t, backend)

	ctx := context.Background()
	first, err := resolver.ResolveEmployeeContext(ctx, upstream.Credentials{}, ResolveQuery{JobseekerID: 9, CompanyID: 4})
	require.NoError(t, err)
	assert.Equal(t, 4, first.CompanyID, "query company id backfills a missing upstream company id")

	second, err := resolver.ResolveEmployeeContext(ctx, upstream.Credentials{}, ResolveQuery{JobseekerID: 9, CompanyID: 8})
	require.NoError(t, err)
	assert.Equal(t, 8, second.CompanyID)

	assert.Equal(t, int64(2), backend.calls.Load())
}
