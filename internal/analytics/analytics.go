// Package analytics derives dashboard metrics from tenant-scoped
// entity slices. Every function is pure and total: empty input maps
// to a zero value, never NaN or an error, and sorts are stable so
// that ties resolve by original insertion order.
package analytics

import (
	"sort"

	"github.com/gurramshanthraju/Shopify-App/internal/model"
)

// TotalRevenue sums order totals. Empty input yields 0.
func TotalRevenue(orders []model.Order) float64 {
	var sum float64
	for _, o := range orders {
		sum += o.Total
	}
	return sum
}

// AverageOrderValue is total revenue divided by order count, or 0
// when there are no orders.
func AverageOrderValue(orders []model.Order) float64 {
	if len(orders) == 0 {
		return 0
	}
	return TotalRevenue(orders) / float64(len(orders))
}

// RepeatPurchaseRate is the percentage of customers with more than
// one order, or 0 when there are no customers.
func RepeatPurchaseRate(customers []model.Customer) float64 {
	if len(customers) == 0 {
		return 0
	}
	repeat := 0
	for _, c := range customers {
		if c.OrdersCount > 1 {
			repeat++
		}
	}
	return float64(repeat) / float64(len(customers)) * 100
}

// CustomerSpend is a top-customers row ready for display.
type CustomerSpend struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Spent float64 `json:"spent"`
}

// TopCustomersBySpend ranks customers by lifetime spend, descending,
// and returns the first n as display rows. Equal spenders keep their
// original relative order.
func TopCustomersBySpend(customers []model.Customer, n int) []CustomerSpend {
	ranked := make([]model.Customer, len(customers))
	copy(ranked, customers)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalSpent > ranked[j].TotalSpent
	})
	ranked = clamp(ranked, n)

	rows := make([]CustomerSpend, 0, len(ranked))
	for _, c := range ranked {
		rows = append(rows, CustomerSpend{Name: c.FullName(), Email: c.Email, Spent: c.TotalSpent})
	}
	return rows
}

// RecentOrders returns the n most recently created orders, newest
// first. Orders created at the same instant keep their original
// relative order.
func RecentOrders(orders []model.Order, n int) []model.Order {
	ranked := make([]model.Order, len(orders))
	copy(ranked, orders)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CreatedAt.After(ranked[j].CreatedAt)
	})
	return clamp(ranked, n)
}

// TopProductsByUnitsSold ranks products by cumulative units sold,
// descending, and returns the first n. Ties keep their original
// relative order.
func TopProductsByUnitsSold(products []model.Product, n int) []model.Product {
	ranked := make([]model.Product, len(products))
	copy(ranked, products)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].SalesCount > ranked[j].SalesCount
	})
	return clamp(ranked, n)
}

func clamp[T any](items []T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}
