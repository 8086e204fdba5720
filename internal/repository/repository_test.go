package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gurramshanthraju/Shopify-App/internal/model"
	"github.com/gurramshanthraju/Shopify-App/internal/repository"
	"github.com/gurramshanthraju/Shopify-App/internal/store"
)

func TestTenantIsolation(t *testing.T) {
	s := store.Seed()
	repo := repository.New(s)

	// No record owned by another tenant may ever appear in a scoped
	// query result.
	for _, tenant := range s.Tenants() {
		for _, c := range repo.CustomersOf(tenant.ID) {
			assert.Equal(t, tenant.ID, c.TenantID)
		}
		for _, o := range repo.OrdersOf(tenant.ID) {
			assert.Equal(t, tenant.ID, o.TenantID)
		}
		for _, p := range repo.ProductsOf(tenant.ID) {
			assert.Equal(t, tenant.ID, p.TenantID)
		}
	}

	// Scoped queries partition the collections: nothing is dropped.
	totalCustomers := 0
	totalOrders := 0
	totalProducts := 0
	for _, tenant := range s.Tenants() {
		totalCustomers += len(repo.CustomersOf(tenant.ID))
		totalOrders += len(repo.OrdersOf(tenant.ID))
		totalProducts += len(repo.ProductsOf(tenant.ID))
	}
	assert.Equal(t, len(s.Customers()), totalCustomers)
	assert.Equal(t, len(s.Orders()), totalOrders)
	assert.Equal(t, len(s.Products()), totalProducts)
}

func TestUnknownTenantYieldsEmptyNotError(t *testing.T) {
	repo := repository.New(store.Seed())

	assert.Empty(t, repo.CustomersOf("tenant_missing"))
	assert.Empty(t, repo.OrdersOf("tenant_missing"))
	assert.Empty(t, repo.ProductsOf("tenant_missing"))
}

func TestScopedQueriesPreserveInsertionOrder(t *testing.T) {
	s := store.New()
	s.AddCustomer(model.Customer{ID: "cust_a", TenantID: "tenant_x"})
	s.AddCustomer(model.Customer{ID: "cust_b", TenantID: "tenant_y"})
	s.AddCustomer(model.Customer{ID: "cust_c", TenantID: "tenant_x"})
	s.AddCustomer(model.Customer{ID: "cust_d", TenantID: "tenant_x"})

	repo := repository.New(s)
	got := repo.CustomersOf("tenant_x")
	require.Len(t, got, 3)
	assert.Equal(t, "cust_a", got[0].ID)
	assert.Equal(t, "cust_c", got[1].ID)
	assert.Equal(t, "cust_d", got[2].ID)
}

func TestScopedQueriesDoNotMutateStore(t *testing.T) {
	s := store.Seed()
	repo := repository.New(s)

	before := len(s.Customers())
	got := repo.CustomersOf("tenant_1")
	require.NotEmpty(t, got)
	got[0].TotalSpent = -1

	fresh := repo.CustomersOf("tenant_1")
	assert.NotEqual(t, -1.0, fresh[0].TotalSpent)
	assert.Equal(t, before, len(s.Customers()))
}
