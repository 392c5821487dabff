package service

import "github.com/99minutos/user-catalog-api/internal/core/domain"

// SampleProducts is the starter catalog written by Seed into an empty store.
func SampleProducts() []domain.Product {
	return []domain.Product{
		{Name: "Phone", Description: "6.1 inch smartphone, 128 GB", Price: 699, Quantity: 25},
		{Name: "Laptop", Description: "14 inch ultrabook, 16 GB RAM", Price: 1199.99, Quantity: 10},
		{Name: "Headphones", Description: "Wireless over-ear, noise cancelling", Price: 249.5, Quantity: 40},
		{Name: "Keyboard", Description: "Mechanical, tenkeyless", Price: 89.9, Quantity: 60},
		{Name: "Monitor", Description: "27 inch 1440p IPS", Price: 329, Quantity: 15},
		{Name: "Mouse", Description: "Ergonomic wireless mouse", Price: 39.99, Quantity: 80},
	}
}
