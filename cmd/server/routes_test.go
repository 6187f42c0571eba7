package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/openhire/jobboard-api/internal/handler"
	"github.com/openhire/jobboard-api/internal/model"
	"github.com/openhire/jobboard-api/internal/token"
)

type stubAuthService struct{}

func (s *stubAuthService) Signup(ctx context.Context, username, password string) error {
	return nil
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, error) {
	return "issued-token", nil
}

type stubJobService struct{}

func (s *stubJobService) stubJob() *model.Job {
	return &model.Job{
		ID:             "job_posting:abc",
		JobTitle:       "Backend Engineer",
		JobDescription: "Build APIs",
		SkillsRequired: []string{"go"},
		Qualifications: "BSc",
		CompanyName:    "OpenHire",
		Location:       "Remote",
		JobType:        model.JobTypeFullTime,
		Salary:         120000,
	}
}

func (s *stubJobService) Create(ctx context.Context, fields *model.JobFields) (*model.Job, error) {
	return s.stubJob(), nil
}

func (s *stubJobService) List(ctx context.Context) ([]*model.Job, error) {
	return []*model.Job{s.stubJob()}, nil
}

func (s *stubJobService) Get(ctx context.Context, id string) (*model.Job, error) {
	return s.stubJob(), nil
}

func (s *stubJobService) Replace(ctx context.Context, id string, patch *model.JobPatch) (*model.Job, error) {
	return s.stubJob(), nil
}

func (s *stubJobService) Patch(ctx context.Context, id string, patch *model.JobPatch) (*model.Job, error) {
	return s.stubJob(), nil
}

func (s *stubJobService) Delete(ctx context.Context, id string) error {
	return nil
}

type stubPinger struct{}

func (s *stubPinger) Ping(ctx context.Context) error { return nil }

type stubAuthenticator struct{}

func (s *stubAuthenticator) AuthenticateToken(ctx context.Context, tokenString string) (*model.User, error) {
	if tokenString == "valid-token" {
		return &model.User{ID: "user:alice", Username: "alice"}, nil
	}
	return nil, token.ErrMalformed
}

func newTestRouter() http.Handler {
	return newRouter(
		handler.NewAuthHandler(&stubAuthService{}),
		handler.NewJobHandler(&stubJobService{}),
		handler.NewHealthHandler(&stubPinger{}),
		&stubAuthenticator{},
	)
}

const routerJobBody = `{
	"job_title": "Backend Engineer",
	"job_description": "Build APIs",
	"skills_required": ["go"],
	"qualifications": "BSc",
	"company_name": "OpenHire",
	"location": "Remote",
	"job_type": "full-time",
	"salary": 120000
}`

func TestRouterProtectedRoutesRequireAuth(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		method string
		target string
		body   string
	}{
		{http.MethodPost, "/jobs/", routerJobBody},
		{http.MethodPut, "/jobs/abc", `{"job_title":"Staff Engineer"}`},
		{http.MethodPatch, "/jobs/abc", `{"job_title":"Staff Engineer"}`},
		{http.MethodDelete, "/jobs/abc", ""},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("without token: status = %d, want 401", rec.Code)
			}
			if got := rec.Header().Get("WWW-Authenticate"); got != "Bearer" {
				t.Errorf("WWW-Authenticate = %q, want %q", got, "Bearer")
			}

			req = httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			req.Header.Set("Authorization", "Bearer valid-token")
			rec = httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Errorf("with token: status = %d, want 200", rec.Code)
			}
		})
	}
}

func TestRouterPublicRoutes(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		method string
		target string
		body   string
		header string
	}{
		{http.MethodGet, "/health", "", ""},
		{http.MethodGet, "/jobs/", "", ""},
		{http.MethodGet, "/jobs/abc", "", ""},
		{http.MethodPost, "/signup", `{"username":"alice","password":"secret1"}`, "application/json"},
		{http.MethodPost, "/token", "username=alice&password=secret1", "application/x-www-form-urlencoded"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			if tt.header != "" {
				req.Header.Set("Content-Type", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Errorf("status = %d, want 200", rec.Code)
			}
		})
	}
}

func TestRouterCreateOnlyMatchesCollectionPath(t *testing.T) {
	// POST on an item path must not reach the create handler; the item
	// patterns registered for other methods make it a 405.
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/jobs/abc", strings.NewReader(routerJobBody))
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}
