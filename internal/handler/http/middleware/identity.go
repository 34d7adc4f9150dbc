package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/careeradvance/jobboard-gateway/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// Identity is who the caller is, as far as this gateway can tell: the session
// JWT cookie when present, plain identifier cookies otherwise. The gateway
// never issues tokens; the upstream backend remains the authority and sees
// the original cookies on every forwarded call.
type Identity struct {
	JobseekerID int
	EmployerID  int
	CompanyID   int
	Role        string
}

type contextKey string

const identityKey contextKey = "identity"

// WithIdentity extracts the caller identity and stores it on the request
// context. It never rejects; the Require* middlewares do that per route.
func WithIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ident Identity

		if _, claims, err := jwtauth.FromContext(r.Context()); err == nil {
			ident.JobseekerID = claimInt(claims, "jobseeker_id")
			ident.EmployerID = claimInt(claims, "employer_id")
			ident.CompanyID = claimInt(claims, "company_id")
			if role, ok := claims["role"].(string); ok {
				ident.Role = role
			}
		}

		// Plain identifier cookies back-fill whatever the token lacked.
		if ident.JobseekerID == 0 {
			ident.JobseekerID = cookieInt(r, "jobseeker_id")
		}
		if ident.EmployerID == 0 {
			ident.EmployerID = cookieInt(r, "employer_id")
		}
		if ident.CompanyID == 0 {
			ident.CompanyID = cookieInt(r, "company_id")
		}

		ctx := context.WithValue(r.Context(), identityKey, ident)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// IdentityFromContext returns the identity stored by WithIdentity.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	ident, ok := ctx.Value(identityKey).(Identity)
	return ident, ok
}

func RequireSeeker(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident, ok := IdentityFromContext(r.Context())
		if !ok || ident.JobseekerID == 0 {
			response.Unauthorized(w, "Job seeker session required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func RequireEmployer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident, ok := IdentityFromContext(r.Context())
		if !ok || ident.EmployerID == 0 {
			response.Unauthorized(w, "Employer session required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident, ok := IdentityFromContext(r.Context())
		if !ok || ident.Role != "admin" {
			response.Forbidden(w, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// claimInt reads an integer claim, whichever of the JSON number, string or
// int encodings the issuer used.
func claimInt(claims map[string]interface{}, key string) int {
	switch v := claims[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return 0
}

func cookieInt(r *http.Request, name string) int {
	cookie, err := r.Cookie(name)
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(cookie.Value)
	if err != nil {
		return 0
	}
	return n
}
