package model

import "time"

// Customer is a shopper of a single tenant's store. TotalSpent and
// OrdersCount are lifetime aggregates maintained by the store sync.
type Customer struct {
	ID          string     `json:"id"`
	TenantID    string     `json:"tenantId"`
	Email       string     `json:"email"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	TotalSpent  float64    `json:"totalSpent"`
	OrdersCount int        `json:"ordersCount"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastOrderAt *time.Time `json:"lastOrderAt,omitempty"`
}

// FullName returns the display name used in dashboard listings.
func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
