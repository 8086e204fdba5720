package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/gurramshanthraju/Shopify-App/internal/analytics"
	"github.com/gurramshanthraju/Shopify-App/internal/middleware"
	"github.com/gurramshanthraju/Shopify-App/internal/repository"
	"github.com/gurramshanthraju/Shopify-App/prometheus"
)

const defaultTopN = 5

// DashboardHandler serves the aggregated dashboard views for the
// authenticated tenant. The tenant id always comes from the verified
// token claims, never from the request.
type DashboardHandler struct {
	repo *repository.Repository
}

// NewDashboardHandler creates the dashboard handler around the
// tenant-scoped repository.
func NewDashboardHandler(r *repository.Repository) *DashboardHandler {
	return &DashboardHandler{repo: r}
}

// Overview handles GET /api/dashboard/overview
func (h *DashboardHandler) Overview(c echo.Context) error {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "tenant context required"})
	}
	prometheus.RecordDashboardView("overview")

	customers := h.repo.CustomersOf(tenantID)
	orders := h.repo.OrdersOf(tenantID)
	products := h.repo.ProductsOf(tenantID)

	return c.JSON(http.StatusOK, echo.Map{
		"totalCustomers":     len(customers),
		"totalOrders":        len(orders),
		"totalProducts":      len(products),
		"totalRevenue":       analytics.TotalRevenue(orders),
		"averageOrderValue":  analytics.AverageOrderValue(orders),
		"repeatPurchaseRate": analytics.RepeatPurchaseRate(customers),
	})
}

// TopCustomers handles GET /api/dashboard/top-customers
func (h *DashboardHandler) TopCustomers(c echo.Context) error {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "tenant context required"})
	}
	prometheus.RecordDashboardView("top_customers")

	rows := analytics.TopCustomersBySpend(h.repo.CustomersOf(tenantID), limitParam(c))
	return c.JSON(http.StatusOK, echo.Map{"customers": rows})
}

// RecentOrders handles GET /api/dashboard/recent-orders
func (h *DashboardHandler) RecentOrders(c echo.Context) error {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "tenant context required"})
	}
	prometheus.RecordDashboardView("recent_orders")

	rows := analytics.RecentOrders(h.repo.OrdersOf(tenantID), limitParam(c))
	return c.JSON(http.StatusOK, echo.Map{"orders": rows})
}

// TopProducts handles GET /api/dashboard/top-products
func (h *DashboardHandler) TopProducts(c echo.Context) error {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "tenant context required"})
	}
	prometheus.RecordDashboardView("top_products")

	rows := analytics.TopProductsByUnitsSold(h.repo.ProductsOf(tenantID), limitParam(c))
	return c.JSON(http.StatusOK, echo.Map{"products": rows})
}

// Trends handles GET /api/dashboard/trends?range=30d. The series are
// synthetic chart scaffolding, flagged as such in the response so no
// consumer mistakes them for aggregated order history.
func (h *DashboardHandler) Trends(c echo.Context) error {
	if _, ok := middleware.TenantID(c); !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "tenant context required"})
	}
	prometheus.RecordDashboardView("trends")

	rangeValue := c.QueryParam("range")
	days := analytics.DaysForRange(rangeValue)
	samples := analytics.SyntheticTrendSamples(nil, days)

	return c.JSON(http.StatusOK, echo.Map{
		"range":     rangeValue,
		"days":      days,
		"synthetic": true,
		"series":    samples,
	})
}

func limitParam(c echo.Context) int {
	if raw := c.QueryParam("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			return n
		}
	}
	return defaultTopN
}
