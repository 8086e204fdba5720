package store

import (
	"time"

	"github.com/gurramshanthraju/Shopify-App/internal/model"
)

func ts(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic("store: bad seed timestamp " + value)
	}
	return t
}

func tsp(value string) *time.Time {
	t := ts(value)
	return &t
}

// Seed returns a store populated with the demo fixture data. The
// dashboard has no live platform integration, so this stands in for
// a synced copy of each connected store.
func Seed() *EntityStore {
	s := New()

	s.tenants = []model.Tenant{
		{
			ID:          "tenant_1",
			Name:        "Fashion Forward Store",
			Domain:      "fashionforward.myshopify.com",
			CreatedAt:   ts("2024-01-15T10:00:00Z"),
			APIKey:      "shpat_1234567890abcdef",
			IsConnected: true,
			LastSync:    tsp("2024-12-28T14:30:00Z"),
		},
		{
			ID:          "tenant_2",
			Name:        "Tech Gadgets Plus",
			Domain:      "techgadgets.myshopify.com",
			CreatedAt:   ts("2024-02-20T15:30:00Z"),
			APIKey:      "shpat_abcdef1234567890",
			IsConnected: true,
			LastSync:    tsp("2024-12-28T13:45:00Z"),
		},
		{
			ID:          "tenant_3",
			Name:        "Home & Garden Boutique",
			Domain:      "homeboutique.myshopify.com",
			CreatedAt:   ts("2024-03-10T09:15:00Z"),
			IsConnected: false,
		},
	}

	s.users = []model.User{
		{ID: "user_1", Email: "admin@fashionstore.com", Name: "Sarah Johnson", TenantID: "tenant_1", Role: model.RoleAdmin},
		{ID: "user_2", Email: "manager@techgadgets.com", Name: "Mike Chen", TenantID: "tenant_2", Role: model.RoleAdmin},
		{ID: "user_3", Email: "owner@homeboutique.com", Name: "Emma Davis", TenantID: "tenant_3", Role: model.RoleAdmin},
	}

	s.customers = []model.Customer{
		{
			ID: "cust_1", TenantID: "tenant_1",
			Email: "alice.smith@email.com", FirstName: "Alice", LastName: "Smith",
			TotalSpent: 2450.00, OrdersCount: 8,
			CreatedAt: ts("2024-01-20T10:00:00Z"), LastOrderAt: tsp("2024-12-25T14:30:00Z"),
		},
		{
			ID: "cust_2", TenantID: "tenant_1",
			Email: "bob.johnson@email.com", FirstName: "Bob", LastName: "Johnson",
			TotalSpent: 1890.50, OrdersCount: 5,
			CreatedAt: ts("2024-02-15T11:30:00Z"), LastOrderAt: tsp("2024-12-20T16:45:00Z"),
		},
		{
			ID: "cust_3", TenantID: "tenant_1",
			Email: "carol.white@email.com", FirstName: "Carol", LastName: "White",
			TotalSpent: 3200.75, OrdersCount: 12,
			CreatedAt: ts("2024-01-25T09:15:00Z"), LastOrderAt: tsp("2024-12-27T12:20:00Z"),
		},
		{
			ID: "cust_4", TenantID: "tenant_2",
			Email: "david.brown@email.com", FirstName: "David", LastName: "Brown",
			TotalSpent: 1560.25, OrdersCount: 4,
			CreatedAt: ts("2024-03-01T14:20:00Z"), LastOrderAt: tsp("2024-12-26T10:30:00Z"),
		},
	}

	s.orders = []model.Order{
		{
			ID: "order_1", TenantID: "tenant_1", CustomerID: "cust_1",
			CustomerEmail: "alice.smith@email.com", CustomerName: "Alice Smith",
			Total: 299.99, Status: model.OrderDelivered,
			CreatedAt: ts("2024-12-25T14:30:00Z"), ItemsCount: 3,
		},
		{
			ID: "order_2", TenantID: "tenant_1", CustomerID: "cust_2",
			CustomerEmail: "bob.johnson@email.com", CustomerName: "Bob Johnson",
			Total: 159.50, Status: model.OrderShipped,
			CreatedAt: ts("2024-12-26T09:15:00Z"), ItemsCount: 2,
		},
		{
			ID: "order_3", TenantID: "tenant_1", CustomerID: "cust_3",
			CustomerEmail: "carol.white@email.com", CustomerName: "Carol White",
			Total: 459.25, Status: model.OrderProcessing,
			CreatedAt: ts("2024-12-27T12:20:00Z"), ItemsCount: 5,
		},
		{
			ID: "order_4", TenantID: "tenant_2", CustomerID: "cust_4",
			CustomerEmail: "david.brown@email.com", CustomerName: "David Brown",
			Total: 799.99, Status: model.OrderDelivered,
			CreatedAt: ts("2024-12-26T10:30:00Z"), ItemsCount: 1,
		},
	}

	s.products = []model.Product{
		{
			ID: "prod_1", TenantID: "tenant_1", Name: "Premium Leather Jacket", Category: "Clothing",
			Price: 299.99, Stock: 25, SalesCount: 45, Revenue: 13499.55,
			CreatedAt: ts("2024-01-20T10:00:00Z"),
		},
		{
			ID: "prod_2", TenantID: "tenant_1", Name: "Designer Handbag", Category: "Accessories",
			Price: 199.99, Stock: 15, SalesCount: 32, Revenue: 6399.68,
			CreatedAt: ts("2024-02-10T14:30:00Z"),
		},
		{
			ID: "prod_3", TenantID: "tenant_2", Name: "Wireless Headphones", Category: "Electronics",
			Price: 149.99, Stock: 50, SalesCount: 78, Revenue: 11699.22,
			CreatedAt: ts("2024-02-20T11:15:00Z"),
		},
		{
			ID: "prod_4", TenantID: "tenant_2", Name: "Smartphone Case", Category: "Electronics",
			Price: 29.99, Stock: 120, SalesCount: 156, Revenue: 4678.44,
			CreatedAt: ts("2024-03-01T16:45:00Z"),
		},
	}

	return s
}
