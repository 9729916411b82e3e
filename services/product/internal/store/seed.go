package store

import (
	"github.com/minishop/minishop/services/product/internal/models"
)

// Seed returns the static catalog loaded at startup.
func Seed() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Laptop Pro", Price: 1299.99, Category: "Electronics", Stock: 15, Description: "15-inch laptop with 16GB RAM and 512GB SSD"},
		{ID: 2, Name: "Wireless Headphones", Price: 199.99, Category: "Electronics", Stock: 40, Description: "Over-ear noise-cancelling wireless headphones"},
		{ID: 3, Name: "Coffee Maker Deluxe", Price: 89.99, Category: "Home & Kitchen", Stock: 25, Description: "12-cup programmable coffee maker with thermal carafe"},
		{ID: 4, Name: "Smart Watch", Price: 349.99, Category: "Electronics", Stock: 30, Description: "Fitness tracking watch with heart-rate monitor"},
		{ID: 5, Name: "Running Shoes", Price: 119.99, Category: "Sports", Stock: 50, Description: "Lightweight road running shoes"},
		{ID: 6, Name: "Yoga Mat", Price: 29.99, Category: "Sports", Stock: 80, Description: "Non-slip 6mm exercise mat"},
		{ID: 7, Name: "Espresso Grinder", Price: 149.99, Category: "Home & Kitchen", Stock: 18, Description: "Conical burr grinder with 40 grind settings"},
		{ID: 8, Name: "Mystery Novel", Price: 14.99, Category: "Books", Stock: 120, Description: "Bestselling detective thriller"},
		{ID: 9, Name: "Weeknight Dinners Cookbook", Price: 24.99, Category: "Books", Stock: 60, Description: "90 quick recipes for busy evenings"},
		{ID: 10, Name: "Desk Lamp", Price: 39.99, Category: "Home & Kitchen", Stock: 45, Description: "LED desk lamp with adjustable arm"},
	}
}
