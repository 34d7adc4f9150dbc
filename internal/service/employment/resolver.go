package employment

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"github.com/careeradvance/jobboard-gateway/internal/domain/employment"
	"github.com/careeradvance/jobboard-gateway/internal/pkg/upstream"
	gocache "github.com/patrickmn/go-cache"
)

// ResolveQuery identifies the job seeker whose employment context is wanted.
// A non-zero EmployeeID short-circuits resolution entirely.
type ResolveQuery struct {
	JobseekerID int
	EmployeeID  int
	CompanyID   int
}

// Resolver maps a job-seeker identity to the (employee, company) pair the
// upstream leave endpoints require. It walks an ordered best-effort chain:
// explicit id, active time-tracking session, hiring-employers list, employee
// mapping. A step that errors is skipped, not fatal; exhausting the chain
// yields ErrNoEmployeeMapping.
type Resolver struct {
	upstream *upstream.Client
	cache    *gocache.Cache
}

func NewResolver(client *upstream.Client, cacheTTL time.Duration) *Resolver {
	return &Resolver{
		upstream: client,
		cache:    gocache.New(cacheTTL, 2*cacheTTL),
	}
}

type lookupFunc func(ctx context.Context, creds upstream.Credentials, q ResolveQuery) (employment.EmployeeContext, bool, error)

func (r *Resolver) ResolveEmployeeContext(ctx context.Context, creds upstream.Credentials, q ResolveQuery) (employment.EmployeeContext, error) {
	if q.EmployeeID > 0 {
		return employment.EmployeeContext{EmployeeID: q.EmployeeID, CompanyID: q.CompanyID}, nil
	}

	key := fmt.Sprintf("seeker:%d:company:%d", q.JobseekerID, q.CompanyID)
	if cached, ok := r.cache.Get(key); ok {
		return cached.(employment.EmployeeContext), nil
	}

	lookups := []struct {
		name string
		fn   lookupFunc
	}{
		{"active_session", r.fromActiveSession},
		{"hiring_employers", r.fromHiringEmployers},
		{"employee_mapping", r.fromEmployeeMapping},
	}

	// Strictly sequential: once a step yields an employee id, the later
	// steps must not be called.
	for _, lookup := range lookups {
		ec, ok, err := lookup.fn(ctx, creds, q)
		if err != nil {
			slog.Debug("employee resolution step failed",
				"step", lookup.name,
				"jobseeker_id", q.JobseekerID,
				"error", err,
			)
			continue
		}
		if ok {
			r.cache.Set(key, ec, gocache.DefaultExpiration)
			return ec, nil
		}
	}

	return employment.EmployeeContext{}, employment.ErrNoEmployeeMapping
}

type employmentPayload struct {
	EmployeeID upstream.FlexInt `json:"employee_id"`
	CompanyID  upstream.FlexInt `json:"company_id"`
}

func (r *Resolver) fromActiveSession(ctx context.Context, creds upstream.Credentials, q ResolveQuery) (employment.EmployeeContext, bool, error) {
	query := url.Values{"jobseeker_id": {strconv.Itoa(q.JobseekerID)}}

	env, err := r.upstream.Get(ctx, creds, "api/seeker/time-tracking/active_session", query)
	if err != nil {
		return employment.EmployeeContext{}, false, err
	}

	var session employmentPayload
	if err := env.Decode(&session); err != nil {
		return employment.EmployeeContext{}, false, err
	}
	if session.EmployeeID == 0 {
		return employment.EmployeeContext{}, false, nil
	}

	return employment.EmployeeContext{
		EmployeeID: session.EmployeeID.Int(),
		CompanyID:  firstNonZero(session.CompanyID.Int(), q.CompanyID),
	}, true, nil
}

func (r *Resolver) fromHiringEmployers(ctx context.Context, creds upstream.Credentials, q ResolveQuery) (employment.EmployeeContext, bool, error) {
	query := url.Values{"jobseeker_id": {strconv.Itoa(q.JobseekerID)}}

	env, err := r.upstream.Get(ctx, creds, "api/seeker/profile/get_hiring_employers", query)
	if err != nil {
		return employment.EmployeeContext{}, false, err
	}

	var employers []employmentPayload
	if err := env.Decode(&employers); err != nil {
		return employment.EmployeeContext{}, false, err
	}
	// First-listed employer wins; no recency or primary-employer ranking.
	if len(employers) == 0 || employers[0].EmployeeID == 0 {
		return employment.EmployeeContext{}, false, nil
	}

	return employment.EmployeeContext{
		EmployeeID: employers[0].EmployeeID.Int(),
		CompanyID:  firstNonZero(employers[0].CompanyID.Int(), q.CompanyID),
	}, true, nil
}

func (r *Resolver) fromEmployeeMapping(ctx context.Context, creds upstream.Credentials, q ResolveQuery) (employment.EmployeeContext, bool, error) {
	query := url.Values{"jobseeker_id": {strconv.Itoa(q.JobseekerID)}}
	if q.CompanyID > 0 {
		query.Set("company_id", strconv.Itoa(q.CompanyID))
	}

	env, err := r.upstream.Get(ctx, creds, "api/seeker/profile/get_employee_mapping", query)
	if err != nil {
		return employment.EmployeeContext{}, false, err
	}

	var mapping employmentPayload
	if err := env.Decode(&mapping); err != nil {
		return employment.EmployeeContext{}, false, err
	}
	if mapping.EmployeeID == 0 {
		return employment.EmployeeContext{}, false, nil
	}

	return employment.EmployeeContext{
		EmployeeID: mapping.EmployeeID.Int(),
		CompanyID:  firstNonZero(mapping.CompanyID.Int(), q.CompanyID),
	}, true, nil
}

func firstNonZero(values ...int) int {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}
