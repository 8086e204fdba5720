package model

// RoleAdmin is the only role in the system; every store owner signs up
// as the admin of their own tenant.
const RoleAdmin = "admin"

// User represents a dashboard login bound to a single tenant.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	TenantID string `json:"tenantId"`
	Role     string `json:"role"`
}
