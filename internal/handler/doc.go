// Package handler provides HTTP request handlers for the job board API.
//
// The handler package contains all HTTP endpoint implementations organized by
// domain. Each handler struct encapsulates the service dependencies needed to
// serve requests for a specific feature area (authentication, job postings).
//
// # Handler Pattern
//
// All handlers follow a consistent pattern:
//
//   - Constructor function (NewXxxHandler) accepts service dependencies
//   - Methods handle specific HTTP endpoints
//   - Response helpers from response.go standardize output format
//   - Service errors are mapped to RFC 9457 Problem Details responses
//
// # Response Format
//
// Handlers use standardized response functions:
//
//   - WriteJSON: JSON response with a status code
//   - WriteError: RFC 9457 Problem Details error response
//
// # Authentication
//
// Write endpoints require authentication via bearer tokens. The auth
// middleware resolves the user and makes it available via
// middleware.GetUser(r.Context()).
//
// # Example Usage
//
//	handler := NewJobHandler(jobService)
//	mux.HandleFunc("GET /jobs/{$}", handler.List)
//	mux.Handle("POST /jobs/{$}", middleware.Auth(authService)(http.HandlerFunc(handler.Create)))
package handler
