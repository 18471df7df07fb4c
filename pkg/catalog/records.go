package catalog

import "time"

// Customer is a CRM account.
type Customer struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Status     string    `json:"status"`
	Tier       string    `json:"tier"`
	TotalSpent float64   `json:"total_spent"`
	JoinedAt   time.Time `json:"joined_at"`
}

// Order is a customer purchase.
type Order struct {
	ID       string    `json:"id"`
	Number   string    `json:"number"`
	Customer string    `json:"customer"`
	Status   string    `json:"status"`
	Channel  string    `json:"channel"`
	Total    float64   `json:"total"`
	PlacedAt time.Time `json:"placed_at"`
}

// Invoice is a billing document. PaidAt is zero while unpaid.
type Invoice struct {
	ID       string    `json:"id"`
	Number   string    `json:"number"`
	Customer string    `json:"customer"`
	Status   string    `json:"status"`
	Amount   float64   `json:"amount"`
	DueAt    time.Time `json:"due_at"`
	PaidAt   time.Time `json:"paid_at,omitempty"`
}

// Product is a sellable item.
type Product struct {
	ID       string  `json:"id"`
	SKU      string  `json:"sku"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Status   string  `json:"status"`
	Price    float64 `json:"price"`
}

// StockItem is the stock level of a product in a warehouse.
type StockItem struct {
	ID        string `json:"id"`
	SKU       string `json:"sku"`
	Product   string `json:"product"`
	Warehouse string `json:"warehouse"`
	Quantity  int    `json:"quantity"`
	Status    string `json:"status"`
}

// User is an admin console account.
type User struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Active   bool      `json:"active"`
	LastSeen time.Time `json:"last_seen,omitempty"`
}

// Role groups permissions granted to users.
type Role struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Scope       string `json:"scope"`
	Members     int    `json:"members"`
}
