package store

import (
	"errors"
	"sync"
	"time"

	"github.com/gurramshanthraju/Shopify-App/internal/model"
)

// ErrTenantNotFound is returned by mutations that reference a tenant
// id not present in the store.
var ErrTenantNotFound = errors.New("tenant not found")

// EntityStore owns the in-memory entity collections for the process
// lifetime. It is passed explicitly to every component that reads or
// mutates it; there is no package-level instance. Collections preserve
// insertion order, which downstream sorting relies on for stable
// tie-breaking. Safe for concurrent use: echo serves requests in
// parallel, so mutation is guarded by a RWMutex and reads return
// snapshot copies.
type EntityStore struct {
	mu        sync.RWMutex
	users     []model.User
	tenants   []model.Tenant
	customers []model.Customer
	orders    []model.Order
	products  []model.Product
}

// New returns an empty store. Most callers want Seed instead.
func New() *EntityStore {
	return &EntityStore{}
}

// Users returns a snapshot of the user collection in insertion order.
func (s *EntityStore) Users() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.User, len(s.users))
	copy(out, s.users)
	return out
}

// Tenants returns a snapshot of the tenant collection in insertion order.
func (s *EntityStore) Tenants() []model.Tenant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Tenant, len(s.tenants))
	copy(out, s.tenants)
	return out
}

// Customers returns a snapshot of the customer collection in insertion order.
func (s *EntityStore) Customers() []model.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Customer, len(s.customers))
	copy(out, s.customers)
	return out
}

// Orders returns a snapshot of the order collection in insertion order.
func (s *EntityStore) Orders() []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Products returns a snapshot of the product collection in insertion order.
func (s *EntityStore) Products() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Product, len(s.products))
	copy(out, s.products)
	return out
}

// UserByEmail looks up a user by exact email match.
func (s *EntityStore) UserByEmail(email string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return model.User{}, false
}

// TenantByID looks up a tenant by id.
func (s *EntityStore) TenantByID(id string) (model.Tenant, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tenants {
		if t.ID == id {
			return t, true
		}
	}
	return model.Tenant{}, false
}

// AddUser appends a user to the store.
func (s *EntityStore) AddUser(u model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, u)
}

// AddTenant appends a tenant to the store.
func (s *EntityStore) AddTenant(t model.Tenant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tenants = append(s.tenants, t)
}

// AddCustomer appends a customer to the store.
func (s *EntityStore) AddCustomer(c model.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers = append(s.customers, c)
}

// AddOrder appends an order to the store.
func (s *EntityStore) AddOrder(o model.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, o)
}

// AddProduct appends a product to the store.
func (s *EntityStore) AddProduct(p model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, p)
}

// ReconnectTenant marks a tenant as connected and stamps its last
// sync time. In a real deployment this is where the platform OAuth
// flow would be triggered.
func (s *EntityStore) ReconnectTenant(id string) (model.Tenant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tenants {
		if s.tenants[i].ID == id {
			now := time.Now().UTC()
			s.tenants[i].IsConnected = true
			s.tenants[i].LastSync = &now
			return s.tenants[i], nil
		}
	}
	return model.Tenant{}, ErrTenantNotFound
}
