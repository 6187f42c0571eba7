package handler

import (
	"context"
	"net/http"

	"github.com/openhire/jobboard-api/internal/model"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Signup(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (string, error)
}

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// SignupRequest represents the signup endpoint request body
type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Signup handles POST /signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	var fields []model.FieldError
	if req.Username == "" {
		fields = append(fields, model.FieldError{Field: "username", Message: "field required"})
	}
	if req.Password == "" {
		fields = append(fields, model.FieldError{Field: "password", Message: "field required"})
	}
	if len(fields) > 0 {
		WriteError(w, model.NewValidationError(fields))
		return
	}

	if err := h.authService.Signup(r.Context(), req.Username, req.Password); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, MessageResponse{Msg: "User created successfully"})
}

// Token handles POST /token. Credentials arrive as form data so standard
// OAuth2 password-flow clients can authenticate without modification.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		WriteError(w, model.NewBadRequestError("invalid form body"))
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	var fields []model.FieldError
	if username == "" {
		fields = append(fields, model.FieldError{Field: "username", Message: "field required"})
	}
	if password == "" {
		fields = append(fields, model.FieldError{Field: "password", Message: "field required"})
	}
	if len(fields) > 0 {
		WriteError(w, model.NewValidationError(fields))
		return
	}

	accessToken, err := h.authService.Login(r.Context(), username, password)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
	})
}
