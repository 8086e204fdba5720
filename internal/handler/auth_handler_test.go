package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gurramshanthraju/Shopify-App/internal/handler"
	"github.com/gurramshanthraju/Shopify-App/internal/session"
	"github.com/gurramshanthraju/Shopify-App/internal/sessionkv"
	"github.com/gurramshanthraju/Shopify-App/internal/store"
	"github.com/gurramshanthraju/Shopify-App/pkg/jwtutil"
)

func init() {
	jwtutil.Initialize(&jwtutil.JWTConfig{SigningKey: "test-signing-key", ExpirationHours: 1})
}

func newAuthHandler(t *testing.T) *handler.AuthHandler {
	t.Helper()
	m := session.NewManager(store.Seed(), sessionkv.NewMemory(), 0, zap.NewNop())
	return handler.NewAuthHandler(m)
}

func postJSON(t *testing.T, e *echo.Echo, path, body string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, e.NewContext(req, rec)
}

func TestLoginHandler_Success(t *testing.T) {
	h := newAuthHandler(t)
	e := echo.New()
	rec, c := postJSON(t, e, "/auth/login", `{"email":"admin@fashionstore.com","password":"anything"}`)

	require.NoError(t, h.Login(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Token string `json:"token"`
		User  struct {
			Email    string `json:"email"`
			TenantID string `json:"tenantId"`
		} `json:"user"`
		Tenant struct {
			ID string `json:"id"`
		} `json:"tenant"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin@fashionstore.com", resp.User.Email)
	assert.Equal(t, "tenant_1", resp.Tenant.ID)

	// The issued token carries the tenant binding.
	claims, err := jwtutil.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "tenant_1", claims.TenantID)
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	h := newAuthHandler(t)
	e := echo.New()
	rec, c := postJSON(t, e, "/auth/login", `{"email":"nobody@example.com","password":"anything"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid credentials")
}

func TestSignupHandler_Success(t *testing.T) {
	h := newAuthHandler(t)
	e := echo.New()
	rec, c := postJSON(t, e, "/auth/signup",
		`{"email":"new@example.com","password":"pw","name":"New Owner","storeName":"Brand New Store"}`)

	require.NoError(t, h.Signup(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Token  string `json:"token"`
		Tenant struct {
			Domain      string `json:"domain"`
			IsConnected bool   `json:"isConnected"`
		} `json:"tenant"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "brand-new-store.myshopify.com", resp.Tenant.Domain)
	assert.False(t, resp.Tenant.IsConnected)
}

func TestSignupHandler_MissingFields(t *testing.T) {
	h := newAuthHandler(t)
	e := echo.New()
	rec, c := postJSON(t, e, "/auth/signup", `{"email":"new@example.com"}`)

	require.NoError(t, h.Signup(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogoutHandler_Idempotent(t *testing.T) {
	h := newAuthHandler(t)
	e := echo.New()

	rec, c := postJSON(t, e, "/auth/logout", ``)
	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, c = postJSON(t, e, "/auth/logout", ``)
	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionHandler(t *testing.T) {
	m := session.NewManager(store.Seed(), sessionkv.NewMemory(), 0, zap.NewNop())
	h := handler.NewAuthHandler(m)
	e := echo.New()

	// Unauthenticated.
	req := httptest.NewRequest(http.MethodGet, "/api/session", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Session(e.NewContext(req, rec)))
	assert.Contains(t, rec.Body.String(), `"isAuthenticated":false`)

	// Authenticated.
	_, err := m.Login(req.Context(), "owner@homeboutique.com", "anything")
	require.NoError(t, err)

	rec = httptest.NewRecorder()
	require.NoError(t, h.Session(e.NewContext(httptest.NewRequest(http.MethodGet, "/api/session", nil), rec)))
	assert.Contains(t, rec.Body.String(), `"isAuthenticated":true`)
	assert.Contains(t, rec.Body.String(), "owner@homeboutique.com")
}
