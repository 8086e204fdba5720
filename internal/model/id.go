package model

import "github.com/google/uuid"

// NewID mints a globally unique entity id with a type prefix, e.g.
// "tenant_4f9d...". Random uuids rather than timestamps so that two
// ids minted in the same millisecond can never collide.
func NewID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}
