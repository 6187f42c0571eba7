package main

import (
	"net/http"

	"github.com/openhire/jobboard-api/internal/handler"
	"github.com/openhire/jobboard-api/internal/middleware"
)

// newRouter registers all routes. Reads on the job collection are public;
// writes require a bearer token resolved through auth.
func newRouter(
	authHandler *handler.AuthHandler,
	jobHandler *handler.JobHandler,
	healthHandler *handler.HealthHandler,
	auth middleware.Authenticator,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", healthHandler.Health)

	mux.HandleFunc("POST /signup", authHandler.Signup)
	mux.HandleFunc("POST /token", authHandler.Token)

	// {$} pins collection routes to the exact path so POST /jobs/anything
	// does not fall through to Create.
	requireAuth := middleware.Auth(auth)
	mux.HandleFunc("GET /jobs/{$}", jobHandler.List)
	mux.HandleFunc("GET /jobs/{id}", jobHandler.Get)
	mux.Handle("POST /jobs/{$}", requireAuth(http.HandlerFunc(jobHandler.Create)))
	mux.Handle("PUT /jobs/{id}", requireAuth(http.HandlerFunc(jobHandler.Put)))
	mux.Handle("PATCH /jobs/{id}", requireAuth(http.HandlerFunc(jobHandler.Patch)))
	mux.Handle("DELETE /jobs/{id}", requireAuth(http.HandlerFunc(jobHandler.Delete)))

	return mux
}
