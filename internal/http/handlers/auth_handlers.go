package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/inventory-dashboard/internal/auth"
)

// SessionCookie carries the admin session token for browser clients.
const SessionCookie = "admin_token"

// LoginHandler godoc
// @Summary Authenticate and return a JWT token
// @Description The token is also set as the admin_token cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "username and password"
// @Success 200 {object} LoginResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /login [post]
func (s *Server) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var creds CredentialsRequest
	if err := readJSON(w, r, &creds); err != nil {
		s.badRequest(w, "login", "body", err.Error())
		return
	}
	if creds.Username == "" || creds.Password == "" {
		s.badRequest(w, "login", "credentials", "are required")
		return
	}

	token, user, err := s.auth.Login(r.Context(), creds.Username, creds.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		s.log.Info("login rejected", zap.String("username", creds.Username))
		s.failStatus(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid credentials")
		return
	}
	if err != nil {
		s.fail(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.auth.Issuer().TTL().Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteStrictMode,
	})
	s.respond(w, http.StatusOK, LoginResult{Token: token, Username: user.Username, Role: user.Role})
}

// LogoutHandler godoc
// @Summary Clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} MessageResult
// @Router /logout [post]
func (s *Server) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteStrictMode,
	})
	s.respond(w, http.StatusOK, MessageResult{Message: "logged out"})
}

// CreateUserHandler godoc
// @Summary Create user with a role
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param user body CreateUserRequest true "User to create"
// @Success 201 {object} models.User
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /admin/users [post]
func (s *Server) CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok || !claims.IsAdmin() {
		s.failStatus(w, http.StatusForbidden, "FORBIDDEN", "admin role required")
		return
	}

	var req CreateUserRequest
	if err := readJSON(w, r, &req); err != nil {
		s.badRequest(w, "create user", "body", err.Error())
		return
	}

	user, err := s.auth.CreateUser(r.Context(), req.Username, req.Password, req.Role)
	if errors.Is(err, auth.ErrUserExists) {
		s.failStatus(w, http.StatusConflict, "CONFLICT", "username already exists")
		return
	}
	if err != nil {
		s.fail(w, err)
		return
	}

	s.log.Info("user created",
		zap.String("username", user.Username),
		zap.String("role", user.Role),
		zap.String("created_by", claims.Username),
	)
	s.respond(w, http.StatusCreated, user)
}
