package store

import "github.com/geraietalase/gerai-pos/internal/domain"

// First-run bootstrap data. Prices are Rupiah. Sales always start empty.

func SeedProducts() []domain.Product {
	return []domain.Product{
		{ID: "1", Name: "Laptop Pro X1", SKU: "LP-001", Price: 19200000, Stock: 15},
		{ID: "2", Name: "Wireless Mouse", SKU: "WM-002", Price: 400000, Stock: 50},
		{ID: "3", Name: "Mechanical Keyboard", SKU: "KB-003", Price: 1360000, Stock: 30},
		{ID: "4", Name: `HD Monitor 24"`, SKU: "MN-004", Price: 2400000, Stock: 8},
	}
}

func SeedCustomers() []domain.Customer {
	return []domain.Customer{
		{ID: "1", Name: "John Doe", Email: "john@example.com", Phone: "08123456789", Address: "123 Main St, Jakarta"},
		{ID: "2", Name: "Jane Smith", Email: "jane@enterprise.co", Phone: "08987654321", Address: "456 Tech Park, Bandung"},
	}
}
