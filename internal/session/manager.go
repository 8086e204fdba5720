// Package session owns the authentication lifecycle: it binds one
// user to their tenant, persists that binding across restarts, and is
// the only component allowed to produce an authentication failure.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/gurramshanthraju/Shopify-App/internal/model"
	"github.com/gurramshanthraju/Shopify-App/internal/sessionkv"
	"github.com/gurramshanthraju/Shopify-App/internal/store"
)

// ErrAuthenticationFailed is returned by Login when no user matches
// the email or the user's tenant cannot be resolved. It is the only
// recoverable, user-facing failure in the core.
var ErrAuthenticationFailed = errors.New("authentication failed")

// Session is the active binding of one authenticated user to their
// tenant. It exists only while authenticated.
type Session struct {
	User   model.User   `json:"user"`
	Tenant model.Tenant `json:"tenant"`
}

// Manager holds the authentication state machine: either no session
// (unauthenticated) or exactly one active session. Login and Signup
// sleep a configured duration before completing to model the network
// latency of a real platform API call; the session and both persisted
// keys are then written as one step.
type Manager struct {
	store   *store.EntityStore
	kv      sessionkv.KV
	latency time.Duration
	log     *zap.Logger

	mu      sync.Mutex
	current *Session
}

// NewManager wires the session manager to its entity store and its
// durable session KV.
func NewManager(s *store.EntityStore, kv sessionkv.KV, latency time.Duration, log *zap.Logger) *Manager {
	return &Manager{store: s, kv: kv, latency: latency, log: log}
}

// Login authenticates by exact email match and resolves the user's
// tenant. The credential is accepted but never verified against a
// stored secret; no secrets are stored in this demo dataset. A
// production deployment must add a verification step here before
// trusting this path.
func (m *Manager) Login(ctx context.Context, email, credential string) (*Session, error) {
	_ = credential

	m.simulateLatency()

	user, ok := m.store.UserByEmail(email)
	if !ok {
		m.log.Info("login failed: unknown email", zap.String("email", email))
		return nil, ErrAuthenticationFailed
	}
	tenant, ok := m.store.TenantByID(user.TenantID)
	if !ok {
		m.log.Warn("login failed: user's tenant missing",
			zap.String("email", email),
			zap.String("tenant_id", user.TenantID))
		return nil, ErrAuthenticationFailed
	}

	sess := &Session{User: user, Tenant: tenant}
	m.mu.Lock()
	m.current = sess
	m.mu.Unlock()

	if err := m.persist(ctx, sess); err != nil {
		m.log.Error("failed to persist session", zap.Error(err))
	}

	m.log.Info("user logged in",
		zap.String("email", user.Email),
		zap.String("tenant_id", tenant.ID),
		zap.String("tenant_name", tenant.Name))
	return sess, nil
}

// Signup provisions a fresh tenant plus its admin user, appends both
// to the entity store, and establishes the session. It always
// succeeds; ids are random uuids so rapid signups cannot collide.
func (m *Manager) Signup(ctx context.Context, email, credential, name, tenantName string) (*Session, error) {
	_ = credential

	m.simulateLatency()

	now := time.Now().UTC()
	tenant := model.Tenant{
		ID:          model.NewID("tenant"),
		Name:        tenantName,
		Domain:      Slug(tenantName) + ".myshopify.com",
		CreatedAt:   now,
		IsConnected: false,
	}
	user := model.User{
		ID:       model.NewID("user"),
		Email:    email,
		Name:     name,
		TenantID: tenant.ID,
		Role:     model.RoleAdmin,
	}

	m.store.AddTenant(tenant)
	m.store.AddUser(user)

	sess := &Session{User: user, Tenant: tenant}
	m.mu.Lock()
	m.current = sess
	m.mu.Unlock()

	if err := m.persist(ctx, sess); err != nil {
		m.log.Error("failed to persist session", zap.Error(err))
	}

	m.log.Info("user signed up",
		zap.String("email", user.Email),
		zap.String("tenant_id", tenant.ID),
		zap.String("tenant_name", tenant.Name))
	return sess, nil
}

// Logout clears the session and removes both persisted keys. Calling
// it without an active session is a no-op.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	wasActive := m.current != nil
	m.current = nil
	m.mu.Unlock()

	if err := m.kv.Delete(ctx, sessionkv.UserKey); err != nil {
		return err
	}
	if err := m.kv.Delete(ctx, sessionkv.TenantKey); err != nil {
		return err
	}
	if wasActive {
		m.log.Info("user logged out")
	}
	return nil
}

// Restore runs once at startup. If both persisted keys deserialize it
// reestablishes the session from them as-is, without re-checking the
// entity store; any absence or parse failure leaves the manager
// unauthenticated and is never surfaced to the user.
func (m *Manager) Restore(ctx context.Context) {
	userRaw, userOK, err := m.kv.Get(ctx, sessionkv.UserKey)
	if err != nil {
		m.log.Warn("session restore: kv read failed", zap.Error(err))
		return
	}
	tenantRaw, tenantOK, err := m.kv.Get(ctx, sessionkv.TenantKey)
	if err != nil {
		m.log.Warn("session restore: kv read failed", zap.Error(err))
		return
	}
	if !userOK || !tenantOK {
		m.log.Debug("session restore: no persisted session")
		return
	}

	var user model.User
	var tenant model.Tenant
	if err := json.Unmarshal(userRaw, &user); err != nil {
		m.log.Debug("session restore: malformed user snapshot", zap.Error(err))
		return
	}
	if err := json.Unmarshal(tenantRaw, &tenant); err != nil {
		m.log.Debug("session restore: malformed tenant snapshot", zap.Error(err))
		return
	}

	m.mu.Lock()
	m.current = &Session{User: user, Tenant: tenant}
	m.mu.Unlock()
	m.log.Info("session restored",
		zap.String("email", user.Email),
		zap.String("tenant_id", tenant.ID))
}

// Current returns the active session, or nil when unauthenticated.
func (m *Manager) Current() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// IsAuthenticated reports whether a session is active.
func (m *Manager) IsAuthenticated() bool {
	return m.Current() != nil
}

func (m *Manager) persist(ctx context.Context, sess *Session) error {
	userRaw, err := json.Marshal(sess.User)
	if err != nil {
		return err
	}
	tenantRaw, err := json.Marshal(sess.Tenant)
	if err != nil {
		return err
	}
	if err := m.kv.Set(ctx, sessionkv.UserKey, userRaw); err != nil {
		return err
	}
	return m.kv.Set(ctx, sessionkv.TenantKey, tenantRaw)
}

func (m *Manager) simulateLatency() {
	if m.latency > 0 {
		time.Sleep(m.latency)
	}
}

// Slug lowercases a store name and joins its words with hyphens, the
// shape used for provisioned shop domains.
func Slug(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
