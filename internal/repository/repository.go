// Package repository is the only read path into the raw entity
// collections. Everything above it (analytics, handlers) receives
// records already filtered to a single tenant, which is what keeps
// one store's data from ever leaking into another's dashboard.
package repository

import (
	"github.com/gurramshanthraju/Shopify-App/internal/model"
	"github.com/gurramshanthraju/Shopify-App/internal/store"
)

// Repository answers tenant-scoped queries over an entity store. All
// methods are pure reads: no mutation, deterministic for a given
// store state, and an unknown tenant id yields an empty slice rather
// than an error.
type Repository struct {
	store *store.EntityStore
}

// New returns a repository reading from the given store.
func New(s *store.EntityStore) *Repository {
	return &Repository{store: s}
}

// CustomersOf returns the tenant's customers in insertion order.
func (r *Repository) CustomersOf(tenantID string) []model.Customer {
	all := r.store.Customers()
	out := make([]model.Customer, 0, len(all))
	for _, c := range all {
		if c.TenantID == tenantID {
			out = append(out, c)
		}
	}
	return out
}

// OrdersOf returns the tenant's orders in insertion order.
func (r *Repository) OrdersOf(tenantID string) []model.Order {
	all := r.store.Orders()
	out := make([]model.Order, 0, len(all))
	for _, o := range all {
		if o.TenantID == tenantID {
			out = append(out, o)
		}
	}
	return out
}

// ProductsOf returns the tenant's products in insertion order.
func (r *Repository) ProductsOf(tenantID string) []model.Product {
	all := r.store.Products()
	out := make([]model.Product, 0, len(all))
	for _, p := range all {
		if p.TenantID == tenantID {
			out = append(out, p)
		}
	}
	return out
}
