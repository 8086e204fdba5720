package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gurramshanthraju/Shopify-App/internal/middleware"
	"github.com/gurramshanthraju/Shopify-App/internal/model"
	"github.com/gurramshanthraju/Shopify-App/internal/repository"
)

// ExplorerHandler serves the raw tenant-scoped collections for the
// data explorer views. Records come back in insertion order, ready
// for direct display.
type ExplorerHandler struct {
	repo *repository.Repository
}

// NewExplorerHandler creates the explorer handler around the
// tenant-scoped repository.
func NewExplorerHandler(r *repository.Repository) *ExplorerHandler {
	return &ExplorerHandler{repo: r}
}

// Customers handles GET /api/customers
func (h *ExplorerHandler) Customers(c echo.Context) error {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "tenant context required"})
	}
	customers := h.repo.CustomersOf(tenantID)
	return c.JSON(http.StatusOK, echo.Map{"customers": customers, "total": len(customers)})
}

// Orders handles GET /api/orders with an optional ?status= filter.
func (h *ExplorerHandler) Orders(c echo.Context) error {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "tenant context required"})
	}
	orders := h.repo.OrdersOf(tenantID)
	total := len(orders)

	if status := c.QueryParam("status"); status != "" {
		filtered := make([]model.Order, 0, len(orders))
		for _, o := range orders {
			if o.Status == model.OrderStatus(status) {
				filtered = append(filtered, o)
			}
		}
		orders = filtered
	}
	return c.JSON(http.StatusOK, echo.Map{"orders": orders, "total": total, "showing": len(orders)})
}

// Products handles GET /api/products with an optional ?category= filter.
func (h *ExplorerHandler) Products(c echo.Context) error {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "tenant context required"})
	}
	products := h.repo.ProductsOf(tenantID)
	total := len(products)

	if category := c.QueryParam("category"); category != "" {
		filtered := make([]model.Product, 0, len(products))
		for _, p := range products {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}
	return c.JSON(http.StatusOK, echo.Map{"products": products, "total": total, "showing": len(products)})
}
