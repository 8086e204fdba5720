package model

import "time"

// OrderStatus is the fulfillment state of an order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// Order is a single purchase in a tenant's store. Customer email and
// name are denormalized onto the order for display.
type Order struct {
	ID            string      `json:"id"`
	TenantID      string      `json:"tenantId"`
	CustomerID    string      `json:"customerId"`
	CustomerEmail string      `json:"customerEmail"`
	CustomerName  string      `json:"customerName"`
	Total         float64     `json:"total"`
	Status        OrderStatus `json:"status"`
	CreatedAt     time.Time   `json:"createdAt"`
	ItemsCount    int         `json:"itemsCount"`
}
