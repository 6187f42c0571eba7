package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Authentication Errors =====
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already registered")
	ErrUsernameRequired   = errors.New("username is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrPasswordTooLong    = errors.New("password must be at most 72 characters")
)

// ===== Job Posting Errors =====
var (
	ErrJobNotFound  = errors.New("job posting not found")
	ErrInvalidJobID = errors.New("invalid job posting identifier")
	ErrNoFields     = errors.New("no fields provided for update")
)
