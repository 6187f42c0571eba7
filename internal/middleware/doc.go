// Package middleware provides HTTP middleware for the job board API.
//
// The middleware package contains reusable middleware components for
// authentication and request processing.
//
// # Available Middleware
//
// Core middleware components:
//
//   - Auth: bearer token validation and user extraction
//   - RequestID: unique request identifier propagation
//   - Logger: structured request logging
//   - Recovery: panic recovery with a 500 problem response
//   - CORS: cross-origin request handling
//
// # Authentication
//
// The auth middleware validates bearer tokens and resolves the user:
//
//	mux.Handle("POST /jobs/{$}", middleware.Auth(authService)(handler))
//
// After authentication, handlers can access user info:
//
//	user := middleware.GetUser(r.Context())
//
// # Context Values
//
// Middleware sets context values accessible via helper functions:
//
//   - GetUser(ctx): Returns the authenticated user
//   - GetUsername(ctx): Returns the authenticated username
//   - GetRequestID(ctx): Returns unique request identifier
package middleware
