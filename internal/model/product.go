package model

import "time"

// Product is a catalog item of a tenant's store. SalesCount and
// Revenue are cumulative since the product was created.
type Product struct {
	ID         string    `json:"id"`
	TenantID   string    `json:"tenantId"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	Price      float64   `json:"price"`
	Stock      int       `json:"stock"`
	SalesCount int       `json:"salesCount"`
	Revenue    float64   `json:"revenue"`
	CreatedAt  time.Time `json:"createdAt"`
}
