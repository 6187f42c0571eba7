// Package model defines domain entities and data structures for the job
// board API.
//
// The model package contains struct definitions for domain objects and error
// definitions. Models are used across all layers of the application.
//
// # Domain Entities
//
// Core domain entities include:
//
//   - User: Application account with authentication credentials
//   - Job: Job posting with title, company, location, type, and salary
//
// # JSON Serialization
//
// All models use json struct tags for API serialization:
//
//	type Job struct {
//	    ID       string  `json:"id"`
//	    JobTitle string  `json:"job_title"`
//	    Salary   float64 `json:"salary"`
//	}
//
// The password hash carries a json:"-" tag so it can never leak into a
// response body.
//
// # Errors
//
// API errors follow RFC 9457 Problem Details, defined in errors.go with
// constructor functions per status class:
//
//	model.NewNotFoundError("job").WriteJSON(w)
package model
