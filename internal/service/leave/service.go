package leave

import (
	"context"

	"github.com/careeradvance/jobboard-gateway/internal/domain/employment"
	"github.com/careeradvance/jobboard-gateway/internal/domain/leave"
	"github.com/careeradvance/jobboard-gateway/internal/pkg/upstream"
	employmentService "github.com/careeradvance/jobboard-gateway/internal/service/employment"
)

// ContextResolver resolves a job seeker to an employment context. Satisfied
// by employment.Resolver.
type ContextResolver interface {
	ResolveEmployeeContext(ctx context.Context, creds upstream.Credentials, q employmentService.ResolveQuery) (employment.EmployeeContext, error)
}

type LeaveServiceImpl struct {
	upstream *upstream.Client
	resolver ContextResolver
}

func NewLeaveService(client *upstream.Client, resolver ContextResolver) leave.LeaveService {
	return &LeaveServiceImpl{
		upstream: client,
		resolver: resolver,
	}
}
