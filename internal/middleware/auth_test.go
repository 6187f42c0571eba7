package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openhire/jobboard-api/internal/model"
	"github.com/openhire/jobboard-api/internal/token"
)

type mockAuthenticator struct {
	authenticateFunc func(ctx context.Context, tokenString string) (*model.User, error)
}

func (m *mockAuthenticator) AuthenticateToken(ctx context.Context, tokenString string) (*model.User, error) {
	return m.authenticateFunc(ctx, tokenString)
}

func okHandler(t *testing.T, wantUsername string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := GetUser(r.Context())
		if user == nil {
			t.Error("user missing from context")
		} else if user.Username != wantUsername {
			t.Errorf("username = %q, want %q", user.Username, wantUsername)
		}
		if GetUsername(r.Context()) != wantUsername {
			t.Errorf("GetUsername = %q, want %q", GetUsername(r.Context()), wantUsername)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthValidToken(t *testing.T) {
	auth := &mockAuthenticator{
		authenticateFunc: func(ctx context.Context, tokenString string) (*model.User, error) {
			if tokenString != "good-token" {
				t.Errorf("token = %q", tokenString)
			}
			return &model.User{ID: "user:abc", Username: "alice"}, nil
		},
	}

	handler := Auth(auth)(okHandler(t, "alice"))

	req := httptest.NewRequest(http.MethodGet, "/jobs/", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestAuthMissingHeader(t *testing.T) {
	handler := Auth(&mockAuthenticator{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/jobs/", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if rec.Header().Get("WWW-Authenticate") != "Bearer" {
		t.Errorf("WWW-Authenticate = %q, want Bearer", rec.Header().Get("WWW-Authenticate"))
	}
}

func TestAuthBadHeaderFormat(t *testing.T) {
	for _, header := range []string{
		"good-token",
		"Basic dXNlcjpwYXNz",
		"Bearer",
	} {
		handler := Auth(&mockAuthenticator{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Errorf("handler reached with header %q", header)
		}))

		req := httptest.NewRequest(http.MethodGet, "/jobs/", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d, want 401", header, rec.Code)
		}
	}
}

func TestAuthExpiredToken(t *testing.T) {
	auth := &mockAuthenticator{
		authenticateFunc: func(ctx context.Context, tokenString string) (*model.User, error) {
			return nil, token.ErrExpired
		},
	}

	handler := Auth(auth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/jobs/", nil)
	req.Header.Set("Authorization", "Bearer stale-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthMalformedToken(t *testing.T) {
	auth := &mockAuthenticator{
		authenticateFunc: func(ctx context.Context, tokenString string) (*model.User, error) {
			return nil, token.ErrMalformed
		},
	}

	handler := Auth(auth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/jobs/", nil)
	req.Header.Set("Authorization", "bearer garbage")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	// Lowercase scheme is accepted; the token itself is rejected.
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if rec.Header().Get("WWW-Authenticate") != "Bearer" {
		t.Errorf("WWW-Authenticate = %q, want Bearer", rec.Header().Get("WWW-Authenticate"))
	}
}

func TestGetUserAbsent(t *testing.T) {
	if user := GetUser(context.Background()); user != nil {
		t.Errorf("expected nil user, got %v", user)
	}
	if username := GetUsername(context.Background()); username != "" {
		t.Errorf("expected empty username, got %q", username)
	}
}
