package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gurramshanthraju/Shopify-App/internal/model"
	"github.com/gurramshanthraju/Shopify-App/internal/store"
)

func TestSeedIntegrity(t *testing.T) {
	s := store.Seed()

	// Every user's tenant resolves.
	for _, u := range s.Users() {
		_, ok := s.TenantByID(u.TenantID)
		assert.True(t, ok, "user %s has unresolvable tenant %s", u.ID, u.TenantID)
		assert.Equal(t, model.RoleAdmin, u.Role)
	}

	// Every owned entity references a seeded tenant.
	for _, c := range s.Customers() {
		_, ok := s.TenantByID(c.TenantID)
		assert.True(t, ok, "customer %s has unresolvable tenant", c.ID)
	}
	for _, o := range s.Orders() {
		_, ok := s.TenantByID(o.TenantID)
		assert.True(t, ok, "order %s has unresolvable tenant", o.ID)
	}
	for _, p := range s.Products() {
		_, ok := s.TenantByID(p.TenantID)
		assert.True(t, ok, "product %s has unresolvable tenant", p.ID)
	}

	// Ids are unique within each entity type.
	seen := map[string]bool{}
	for _, tn := range s.Tenants() {
		assert.False(t, seen[tn.ID], "duplicate tenant id %s", tn.ID)
		seen[tn.ID] = true
	}
}

func TestUserByEmail_ExactMatchOnly(t *testing.T) {
	s := store.Seed()

	u, ok := s.UserByEmail("admin@fashionstore.com")
	require.True(t, ok)
	assert.Equal(t, "tenant_1", u.TenantID)

	_, ok = s.UserByEmail("ADMIN@fashionstore.com")
	assert.False(t, ok, "email match is exact, not case-insensitive")

	_, ok = s.UserByEmail("nobody@example.com")
	assert.False(t, ok)
}

func TestReconnectTenant(t *testing.T) {
	s := store.Seed()

	// tenant_3 is seeded disconnected.
	before, ok := s.TenantByID("tenant_3")
	require.True(t, ok)
	require.False(t, before.IsConnected)
	require.Nil(t, before.LastSync)

	got, err := s.ReconnectTenant("tenant_3")
	require.NoError(t, err)
	assert.True(t, got.IsConnected)
	require.NotNil(t, got.LastSync)

	// The mutation is visible through subsequent reads.
	after, ok := s.TenantByID("tenant_3")
	require.True(t, ok)
	assert.True(t, after.IsConnected)
}

func TestReconnectTenant_Unknown(t *testing.T) {
	s := store.Seed()

	_, err := s.ReconnectTenant("tenant_missing")
	assert.ErrorIs(t, err, store.ErrTenantNotFound)
}

func TestSnapshotsAreCopies(t *testing.T) {
	s := store.Seed()

	tenants := s.Tenants()
	require.NotEmpty(t, tenants)
	tenants[0].Name = "mutated"

	fresh := s.Tenants()
	assert.NotEqual(t, "mutated", fresh[0].Name)
}

func TestAddTenantAppends(t *testing.T) {
	s := store.New()
	s.AddTenant(model.Tenant{ID: "tenant_a", Name: "First"})
	s.AddTenant(model.Tenant{ID: "tenant_b", Name: "Second"})

	tenants := s.Tenants()
	require.Len(t, tenants, 2)
	assert.Equal(t, "tenant_a", tenants[0].ID)
	assert.Equal(t, "tenant_b", tenants[1].ID)
}
