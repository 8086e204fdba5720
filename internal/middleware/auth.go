package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/gurramshanthraju/Shopify-App/pkg/jwtutil"
	"github.com/gurramshanthraju/Shopify-App/pkg/logger"
	"github.com/gurramshanthraju/Shopify-App/prometheus"
)

// Context keys set for authenticated requests. Tenant-scoped handlers
// read the tenant id from here and never from the request itself,
// which is what enforces tenant isolation at the HTTP boundary.
const (
	ContextUserID     = "user_id"
	ContextEmail      = "email"
	ContextTenantID   = "tenant_id"
	ContextTenantName = "tenant_name"
	ContextUserRole   = "user_role"
)

// AuthMiddleware validates the JWT token from the Authorization header
func AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := logger.FromContext(c)

		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			log.Error("Missing Authorization header")
			prometheus.RecordAuthError("missing_token")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing authorization token"})
		}

		// Check if it's a Bearer token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			log.Error("Invalid Authorization header format")
			prometheus.RecordAuthError("invalid_auth_format")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid authorization format, expected Bearer token"})
		}

		claims, err := jwtutil.ValidateToken(parts[1])
		if err != nil {
			log.Error("Invalid JWT token", zap.Error(err))
			prometheus.RecordAuthError("invalid_token")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextTenantID, claims.TenantID)
		c.Set(ContextTenantName, claims.TenantName)
		c.Set(ContextUserRole, claims.Role)

		log.Debug("Request authenticated with tenant context",
			zap.String("tenant_id", claims.TenantID),
			zap.String("tenant_name", claims.TenantName),
			zap.String("role", claims.Role))

		return next(c)
	}
}

// TenantID extracts the authenticated tenant id from the context.
func TenantID(c echo.Context) (string, bool) {
	id, ok := c.Get(ContextTenantID).(string)
	return id, ok && id != ""
}
