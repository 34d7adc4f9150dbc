package main

import (
	"fmt"
	"net/http"

	"github.com/careeradvance/jobboard-gateway/internal/config"
	appHTTP "github.com/careeradvance/jobboard-gateway/internal/handler/http"
	"github.com/careeradvance/jobboard-gateway/internal/pkg/upstream"
	employmentService "github.com/careeradvance/jobboard-gateway/internal/service/employment"
	leaveService "github.com/careeradvance/jobboard-gateway/internal/service/leave"
	"github.com/go-chi/jwtauth/v5"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	upstreamClient := upstream.NewClient(cfg.Upstream)
	tokenAuth := jwtauth.New("HS256", []byte(cfg.Auth.JWTSecret), nil)

	resolver := employmentService.NewResolver(upstreamClient, cfg.Resolver.CacheTTL)
	leaveSvc := leaveService.NewLeaveService(upstreamClient, resolver)

	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	seekerHandler := appHTTP.NewSeekerHandler(leaveSvc, resolver)
	adminHandler := appHTTP.NewAdminHandler(upstreamClient)
	interviewHandler := appHTTP.NewInterviewHandler(upstreamClient)
	resumeHandler := appHTTP.NewResumeHandler(upstreamClient)

	router := appHTTP.NewRouter(
		cfg.App,
		cfg.Auth,
		tokenAuth,
		leaveHandler,
		seekerHandler,
		adminHandler,
		interviewHandler,
		resumeHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
