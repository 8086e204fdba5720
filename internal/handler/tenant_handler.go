package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/gurramshanthraju/Shopify-App/internal/model"
	"github.com/gurramshanthraju/Shopify-App/internal/session"
	"github.com/gurramshanthraju/Shopify-App/internal/store"
	"github.com/gurramshanthraju/Shopify-App/pkg/logger"
	"github.com/gurramshanthraju/Shopify-App/prometheus"
)

// TenantHandler manages store connections: listing, adding and
// reconnecting tenants.
type TenantHandler struct {
	store *store.EntityStore
}

// NewTenantHandler creates the tenant handler around the entity store.
func NewTenantHandler(s *store.EntityStore) *TenantHandler {
	return &TenantHandler{store: s}
}

// List handles GET /api/tenants
func (h *TenantHandler) List(c echo.Context) error {
	prometheus.RecordTenantOperation("list")
	return c.JSON(http.StatusOK, echo.Map{"tenants": h.store.Tenants()})
}

// Create handles POST /api/tenants. Supplying an API key marks the
// store as connected and stamps an initial sync time.
func (h *TenantHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordTenantOperation("create")

	var req struct {
		Name   string `json:"name"`
		Domain string `json:"domain"`
		APIKey string `json:"apiKey"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse tenant creation request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if req.Name == "" {
		log.Error("Invalid tenant data", zap.String("name", req.Name))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}

	domain := req.Domain
	if domain == "" {
		domain = session.Slug(req.Name)
	}
	if !strings.Contains(domain, ".myshopify.com") {
		domain += ".myshopify.com"
	}

	now := time.Now().UTC()
	tenant := model.Tenant{
		ID:          model.NewID("tenant"),
		Name:        req.Name,
		Domain:      domain,
		CreatedAt:   now,
		APIKey:      req.APIKey,
		IsConnected: req.APIKey != "",
	}
	if tenant.IsConnected {
		tenant.LastSync = &now
	}
	h.store.AddTenant(tenant)

	log.Info("Tenant created",
		zap.String("tenant_id", tenant.ID),
		zap.String("domain", tenant.Domain),
		zap.Bool("connected", tenant.IsConnected))
	return c.JSON(http.StatusCreated, echo.Map{"tenant": tenant})
}

// Reconnect handles POST /api/tenants/:id/reconnect. In a real
// deployment this would start the platform OAuth flow; here it flips
// the connection flag and stamps the sync time.
func (h *TenantHandler) Reconnect(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordTenantOperation("reconnect")

	id := c.Param("id")
	tenant, err := h.store.ReconnectTenant(id)
	if err != nil {
		if errors.Is(err, store.ErrTenantNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "tenant not found"})
		}
		log.Error("Failed to reconnect tenant", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "reconnect failed"})
	}

	log.Info("Tenant reconnected", zap.String("tenant_id", tenant.ID))
	return c.JSON(http.StatusOK, echo.Map{"tenant": tenant})
}
