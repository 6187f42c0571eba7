package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/openhire/jobboard-api/internal/model"
	"github.com/openhire/jobboard-api/internal/token"
)

// Authenticator defines the interface for resolving bearer tokens to users
type Authenticator interface {
	AuthenticateToken(ctx context.Context, tokenString string) (*model.User, error)
}

// Auth returns a middleware that validates bearer tokens and places the
// resolved user in the request context. All rejections are 401s carrying a
// WWW-Authenticate challenge.
func Auth(authService Authenticator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				model.NewUnauthorizedError("missing authorization header").WriteJSON(w)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				model.NewUnauthorizedError("invalid authorization header format").WriteJSON(w)
				return
			}

			user, err := authService.AuthenticateToken(r.Context(), parts[1])
			if err != nil {
				switch {
				case errors.Is(err, token.ErrExpired):
					model.NewUnauthorizedError("token expired").WriteJSON(w)
				case errors.Is(err, token.ErrMalformed):
					model.NewUnauthorizedError("invalid token").WriteJSON(w)
				default:
					model.NewUnauthorizedError("could not validate credentials").WriteJSON(w)
				}
				return
			}

			ctx := context.WithValue(r.Context(), UserKey, user)
			ctx = context.WithValue(ctx, UsernameKey, user.Username)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUser extracts the authenticated user from context
func GetUser(ctx context.Context) *model.User {
	if user, ok := ctx.Value(UserKey).(*model.User); ok {
		return user
	}
	return nil
}

// GetUsername extracts the authenticated username from context
func GetUsername(ctx context.Context) string {
	if username, ok := ctx.Value(UsernameKey).(string); ok {
		return username
	}
	return ""
}
