package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/gurramshanthraju/Shopify-App/internal/session"
	"github.com/gurramshanthraju/Shopify-App/pkg/jwtutil"
	"github.com/gurramshanthraju/Shopify-App/pkg/logger"
	"github.com/gurramshanthraju/Shopify-App/prometheus"
)

// AuthHandler exposes the session lifecycle over HTTP.
type AuthHandler struct {
	sessions *session.Manager
}

// NewAuthHandler creates the auth handler around a session manager.
func NewAuthHandler(m *session.Manager) *AuthHandler {
	return &AuthHandler{sessions: m}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.LoginCounter.Inc()

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse login request", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	sess, err := h.sessions.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, session.ErrAuthenticationFailed) {
			prometheus.RecordAuthError("login_failure")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		log.Error("Login failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "login failed"})
	}

	token, err := jwtutil.GenerateToken(sess.User.Email, sess.User.ID, sess.Tenant.ID, sess.Tenant.Name, sess.User.Role)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		prometheus.RecordAuthError("token_generation_failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token error"})
	}

	prometheus.SetSessionActive(true)
	return c.JSON(http.StatusOK, echo.Map{
		"token":  token,
		"user":   sess.User,
		"tenant": sess.Tenant,
	})
}

// Signup handles POST /auth/signup
func (h *AuthHandler) Signup(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.SignupCounter.Inc()

	var req struct {
		Email     string `json:"email"`
		Password  string `json:"password"`
		Name      string `json:"name"`
		StoreName string `json:"storeName"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse signup request", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if req.Email == "" || req.Name == "" || req.StoreName == "" {
		log.Error("Invalid signup data",
			zap.String("email", req.Email),
			zap.String("store_name", req.StoreName))
		prometheus.RecordAuthError("incomplete_signup")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email, name and storeName are required"})
	}

	sess, err := h.sessions.Signup(c.Request().Context(), req.Email, req.Password, req.Name, req.StoreName)
	if err != nil {
		log.Error("Signup failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "signup failed"})
	}

	token, err := jwtutil.GenerateToken(sess.User.Email, sess.User.ID, sess.Tenant.ID, sess.Tenant.Name, sess.User.Role)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		prometheus.RecordAuthError("token_generation_failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token error"})
	}

	prometheus.SetSessionActive(true)
	return c.JSON(http.StatusCreated, echo.Map{
		"token":  token,
		"user":   sess.User,
		"tenant": sess.Tenant,
	})
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c echo.Context) error {
	log := logger.FromContext(c)

	if err := h.sessions.Logout(c.Request().Context()); err != nil {
		log.Error("Logout failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "logout failed"})
	}

	prometheus.SetSessionActive(false)
	return c.JSON(http.StatusOK, echo.Map{"message": "logged out"})
}

// Session handles GET /api/session and mirrors the presentation
// layer's session accessor: current user, current tenant, and the
// authenticated flag.
func (h *AuthHandler) Session(c echo.Context) error {
	sess := h.sessions.Current()
	if sess == nil {
		return c.JSON(http.StatusOK, echo.Map{"isAuthenticated": false})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"isAuthenticated": true,
		"currentUser":     sess.User,
		"currentTenant":   sess.Tenant,
	})
}
