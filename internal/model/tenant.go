package model

import "time"

// Tenant represents a connected store. Every Customer, Order and
// Product belongs to exactly one tenant, and every query in the
// system is scoped by tenant id.
type Tenant struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Domain      string     `json:"domain"`
	CreatedAt   time.Time  `json:"createdAt"`
	APIKey      string     `json:"apiKey,omitempty"`
	IsConnected bool       `json:"isConnected"`
	LastSync    *time.Time `json:"lastSync,omitempty"`
}
