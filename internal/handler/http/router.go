package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/careeradvance/jobboard-gateway/internal/config"
	"github.com/careeradvance/jobboard-gateway/internal/handler/http/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg config.AppConfig,
	authCfg config.AuthConfig,
	tokenAuth *jwtauth.JWTAuth,
	leaveHandler LeaveHandler,
	seekerHandler SeekerHandler,
	adminHandler AdminHandler,
	interviewHandler InterviewHandler,
	resumeHandler ResumeHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "jobboard-gateway"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// Session token is optional at this layer; each route group
		// enforces the identity it needs. The cookie name is
		// deployment-specific, so the default finder set won't do.
		r.Use(jwtauth.Verify(tokenAuth, jwtauth.TokenFromHeader, tokenFromCookie(authCfg.CookieName)))
		r.Use(middleware.WithIdentity)

		r.Route("/seeker", func(r chi.Router) {
			r.Use(middleware.RequireSeeker)
			r.Get("/leave-requests", seekerHandler.ListLeaveRequests)
			r.Post("/leave-requests", seekerHandler.CreateLeaveRequest)
			r.Post("/resume", resumeHandler.Upload)
		})

		r.Route("/employer", func(r chi.Router) {
			r.Use(middleware.RequireEmployer)

			r.Route("/leave-requests", func(r chi.Router) {
				r.Get("/", leaveHandler.ListRequests)
				r.Get("/employee/{id}", leaveHandler.ListEmployeeRequests)
				r.Put("/{id}", leaveHandler.UpdateRequest)
				r.Put("/{id}/approve", leaveHandler.ApproveRequest)
				r.Put("/{id}/reject", leaveHandler.RejectRequest)
				r.Delete("/{id}", leaveHandler.DeleteRequest)
			})

			r.Route("/leave-types", func(r chi.Router) {
				r.Get("/", leaveHandler.ListTypes)
				r.Post("/", leaveHandler.CreateType)
				r.Put("/{id}", leaveHandler.UpdateType)
				r.Delete("/{id}", leaveHandler.DeleteType)
			})

			r.Route("/interviews", func(r chi.Router) {
				r.Get("/", interviewHandler.List)
				r.Post("/", interviewHandler.Create)
				r.Put("/{id}", interviewHandler.Update)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Get("/users", adminHandler.ListUsers)
		})
	})

	return r
}

// tokenFromCookie is jwtauth.TokenFromCookie with a configurable cookie name.
func tokenFromCookie(name string) func(r *http.Request) string {
	return func(r *http.Request) string {
		cookie, err := r.Cookie(name)
		if err != nil {
			return ""
		}
		return cookie.Value
	}
}
