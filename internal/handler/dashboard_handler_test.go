package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gurramshanthraju/Shopify-App/internal/handler"
	"github.com/gurramshanthraju/Shopify-App/internal/middleware"
	"github.com/gurramshanthraju/Shopify-App/internal/repository"
	"github.com/gurramshanthraju/Shopify-App/internal/store"
)

func tenantContext(t *testing.T, path, tenantID string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if tenantID != "" {
		c.Set(middleware.ContextTenantID, tenantID)
	}
	return rec, c
}

func newDashboardHandler() *handler.DashboardHandler {
	return handler.NewDashboardHandler(repository.New(store.Seed()))
}

func TestOverview(t *testing.T) {
	h := newDashboardHandler()
	rec, c := tenantContext(t, "/api/dashboard/overview", "tenant_1")

	require.NoError(t, h.Overview(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		TotalCustomers     int     `json:"totalCustomers"`
		TotalOrders        int     `json:"totalOrders"`
		TotalProducts      int     `json:"totalProducts"`
		TotalRevenue       float64 `json:"totalRevenue"`
		AverageOrderValue  float64 `json:"averageOrderValue"`
		RepeatPurchaseRate float64 `json:"repeatPurchaseRate"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, 3, resp.TotalCustomers)
	assert.Equal(t, 3, resp.TotalOrders)
	assert.Equal(t, 2, resp.TotalProducts)
	assert.InDelta(t, 918.74, resp.TotalRevenue, 1e-9)
	assert.InDelta(t, 918.74/3, resp.AverageOrderValue, 1e-9)
	// All three seeded tenant_1 customers have more than one order.
	assert.InDelta(t, 100.0, resp.RepeatPurchaseRate, 1e-9)
}

func TestOverview_UnknownTenantIsEmptyNotError(t *testing.T) {
	h := newDashboardHandler()
	rec, c := tenantContext(t, "/api/dashboard/overview", "tenant_missing")

	require.NoError(t, h.Overview(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]float64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Zero(t, resp["totalRevenue"])
	assert.Zero(t, resp["averageOrderValue"])
	assert.Zero(t, resp["repeatPurchaseRate"])
}

func TestOverview_RequiresTenantContext(t *testing.T) {
	h := newDashboardHandler()
	rec, c := tenantContext(t, "/api/dashboard/overview", "")

	require.NoError(t, h.Overview(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTopCustomers(t *testing.T) {
	h := newDashboardHandler()
	rec, c := tenantContext(t, "/api/dashboard/top-customers?limit=2", "tenant_1")

	require.NoError(t, h.TopCustomers(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Customers []struct {
			Name  string  `json:"name"`
			Email string  `json:"email"`
			Spent float64 `json:"spent"`
		} `json:"customers"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Customers, 2)
	assert.Equal(t, "Carol White", resp.Customers[0].Name)
	assert.InDelta(t, 3200.75, resp.Customers[0].Spent, 1e-9)
	assert.Equal(t, "Alice Smith", resp.Customers[1].Name)
}

func TestRecentOrders(t *testing.T) {
	h := newDashboardHandler()
	rec, c := tenantContext(t, "/api/dashboard/recent-orders", "tenant_1")

	require.NoError(t, h.RecentOrders(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Orders []struct {
			ID string `json:"id"`
		} `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Orders, 3)
	assert.Equal(t, "order_3", resp.Orders[0].ID)
	assert.Equal(t, "order_2", resp.Orders[1].ID)
	assert.Equal(t, "order_1", resp.Orders[2].ID)
}

func TestTopProducts_IsTenantScoped(t *testing.T) {
	h := newDashboardHandler()
	rec, c := tenantContext(t, "/api/dashboard/top-products", "tenant_2")

	require.NoError(t, h.TopProducts(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Products []struct {
			ID       string `json:"id"`
			TenantID string `json:"tenantId"`
		} `json:"products"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Products, 2)
	assert.Equal(t, "prod_4", resp.Products[0].ID)
	for _, p := range resp.Products {
		assert.Equal(t, "tenant_2", p.TenantID)
	}
}

func TestTrends(t *testing.T) {
	h := newDashboardHandler()
	rec, c := tenantContext(t, "/api/dashboard/trends?range=7d", "tenant_1")

	require.NoError(t, h.Trends(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Days      int  `json:"days"`
		Synthetic bool `json:"synthetic"`
		Series    []struct {
			Date    string `json:"date"`
			Revenue int    `json:"revenue"`
		} `json:"series"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 7, resp.Days)
	assert.True(t, resp.Synthetic)
	assert.Len(t, resp.Series, 7)
}
