// Package sessionkv provides the durable key-value store that backs
// persisted login sessions, so an authenticated session survives a
// process restart. Only two keys exist: the serialized user and the
// serialized tenant.
package sessionkv

import "context"

// Fixed storage keys for the persisted session snapshot. Both are
// written together on login/signup and removed together on logout.
const (
	UserKey   = "user"
	TenantKey = "tenant"
)

// KV is the session persistence interface. Implementations must be
// safe for concurrent use.
type KV interface {
	Set(ctx context.Context, key string, value []byte) error
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}
