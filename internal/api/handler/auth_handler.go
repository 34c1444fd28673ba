package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dkwak/sleepcoach/internal/api/validation"
	"github.com/dkwak/sleepcoach/internal/auth"
	"github.com/dkwak/sleepcoach/internal/domain"
	"github.com/dkwak/sleepcoach/internal/service"
	"github.com/dkwak/sleepcoach/pkg/problem"
)

// @title Sleep Coach API
// @version 1.0
// @description API for sleep-window recommendations around daily commitments and fatigue
// @BasePath /v1

type AuthHandler struct {
	service service.UserService
}

func NewAuthHandler(service service.UserService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register handles POST /v1/auth/register
// @Summary Register a new account
// @Description Create an account and open a login session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body domain.RegisterRequest true "Registration request"
// @Success 201 {object} domain.AuthResponse
// @Failure 400 {object} problem.Problem
// @Failure 409 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	user, session, err := h.service.Register(r.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			problem.Conflict("Username is already taken").Write(w)
			return
		}
		problem.InternalError("Failed to register").Write(w)
		return
	}

	setSessionCookie(w, session)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(domain.AuthResponse{
		Token: session.Token.String(),
		User:  user.ToResponse(),
	})
}

// Login handles POST /v1/auth/login
// @Summary Log in
// @Description Verify credentials and open a new session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body domain.LoginRequest true "Login request"
// @Success 200 {object} domain.AuthResponse
// @Failure 400 {object} problem.Problem
// @Failure 401 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	user, session, err := h.service.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			problem.Unauthorized("Invalid username or password").Write(w)
			return
		}
		problem.InternalError("Failed to log in").Write(w)
		return
	}

	setSessionCookie(w, session)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(domain.AuthResponse{
		Token: session.Token.String(),
		User:  user.ToResponse(),
	})
}

// Logout handles POST /v1/auth/logout
// @Summary Log out
// @Description Invalidate the current session
// @Tags auth
// @Security SessionAuth
// @Success 204
// @Failure 401 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := auth.TokenFromRequest(r)
	if ok {
		if err := h.service.Logout(r.Context(), token); err != nil {
			problem.InternalError("Failed to log out").Write(w)
			return
		}
	}

	clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /v1/auth/me
// @Summary Get the current account
// @Tags auth
// @Produce json
// @Security SessionAuth
// @Success 200 {object} domain.UserResponse
// @Failure 401 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		problem.Unauthorized("Authentication required").Write(w)
		return
	}

	user, err := h.service.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to get user").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user.ToResponse())
}

func setSessionCookie(w http.ResponseWriter, session *domain.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    session.Token.String(),
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
