package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var fixtureEpoch = time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)

// fixtureID derives a stable UUID so fixtures keep their ids across runs.
func fixtureID(kind string, n int) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, fmt.Appendf(nil, "go-listview/%s/%d", kind, n)).String()
}

var customerNames = []string{
	"Alice Moreau", "Bob Stone", "Anna Kowalski", "Eve Brooks", "Clara Nguyen",
	"Tom Okoye", "Dana Whitfield", "Kim Lee", "Grace Hopper", "Joe Briggs",
	"Hannah Schmidt", "Ruth Ellis", "Laura Pérez", "Lily Chen", "Maria Rossi",
	"Owen Price", "Nadia Petrov", "Yves Bonnet", "Paula Souza", "Zoe Kim",
	"Sara Lind", "Lyle Fox", "Tara Singh", "Fitz Keller", "Nico Berg",
}

// Customers returns 25 deterministic customers. Twelve have an "a" in their
// first name.
func Customers() []Customer {
	out := make([]Customer, len(customerNames))
	for i, name := range customerNames {
		first := strings.ToLower(strings.Fields(name)[0])
		status := "active"
		if i%3 == 0 {
			status = "inactive"
		}
		tier := "standard"
		switch {
		case i%7 == 0:
			tier = "platinum"
		case i%4 == 0:
			tier = "gold"
		}
		out[i] = Customer{
			ID:         fixtureID("customer", i+1),
			Name:       name,
			Email:      first + "@crm.test",
			Status:     status,
			Tier:       tier,
			TotalSpent: float64((i*7)%10) * 150,
			JoinedAt:   fixtureEpoch.AddDate(0, 0, i*9),
		}
	}
	return out
}

// Orders returns deterministic orders placed by the fixture customers.
func Orders() []Order {
	customers := Customers()
	statuses := []string{"pending", "paid", "shipped", "cancelled"}
	channels := []string{"web", "store", "phone"}
	out := make([]Order, 40)
	for i := range out {
		out[i] = Order{
			ID:       fixtureID("order", i+1),
			Number:   fmt.Sprintf("SO-%05d", 1000+i),
			Customer: customers[(i*3)%len(customers)].Name,
			Status:   statuses[i%len(statuses)],
			Channel:  channels[(i/2)%len(channels)],
			Total:    float64(25+(i*37)%400) + 0.99,
			PlacedAt: fixtureEpoch.Add(time.Duration(i) * 17 * time.Hour),
		}
	}
	return out
}

// Invoices returns deterministic invoices; every third one is unpaid.
func Invoices() []Invoice {
	customers := Customers()
	out := make([]Invoice, 30)
	for i := range out {
		inv := Invoice{
			ID:       fixtureID("invoice", i+1),
			Number:   fmt.Sprintf("INV-%04d", i+1),
			Customer: customers[(i*5)%len(customers)].Name,
			Status:   "paid",
			Amount:   float64(100 + (i*53)%900),
			DueAt:    fixtureEpoch.AddDate(0, 0, 30+i*3),
		}
		if i%3 == 0 {
			inv.Status = "open"
		} else {
			inv.PaidAt = inv.DueAt.AddDate(0, 0, -(i % 5))
		}
		out[i] = inv
	}
	return out
}

var productNames = []struct {
	name     string
	category string
}{
	{"Espresso Beans", "coffee"}, {"Decaf Beans", "coffee"}, {"Pour Over Kettle", "equipment"},
	{"Burr Grinder", "equipment"}, {"Paper Filters", "supplies"}, {"Ceramic Mug", "merch"},
	{"Travel Tumbler", "merch"}, {"Cold Brew Kit", "equipment"}, {"Oat Milk", "supplies"},
	{"Chai Concentrate", "tea"}, {"Sencha Leaves", "tea"}, {"Matcha Tin", "tea"},
}

// Products returns the product catalog.
func Products() []Product {
	out := make([]Product, len(productNames))
	for i, p := range productNames {
		status := "active"
		if i%5 == 4 {
			status = "discontinued"
		}
		out[i] = Product{
			ID:       fixtureID("product", i+1),
			SKU:      fmt.Sprintf("SKU-%03d", i+1),
			Name:     p.name,
			Category: p.category,
			Status:   status,
			Price:    float64(4+(i*13)%60) + 0.5,
		}
	}
	return out
}

// StockItems returns stock levels for every product in two warehouses.
func StockItems() []StockItem {
	warehouses := []string{"north", "south"}
	var out []StockItem
	for i, p := range Products() {
		for j, wh := range warehouses {
			qty := (i*11 + j*29) % 60
			status := "in_stock"
			switch {
			case qty == 0:
				status = "out_of_stock"
			case qty < 10:
				status = "low"
			}
			out = append(out, StockItem{
				ID:        fixtureID("stock", i*len(warehouses)+j+1),
				SKU:       p.SKU,
				Product:   p.Name,
				Warehouse: wh,
				Quantity:  qty,
				Status:    status,
			})
		}
	}
	return out
}

// Roles returns the built-in admin roles with member counts from Users.
func Roles() []Role {
	roles := []Role{
		{ID: fixtureID("role", 1), Name: "admin", Description: "Full access", Scope: "global"},
		{ID: fixtureID("role", 2), Name: "editor", Description: "Manage catalog content", Scope: "catalog"},
		{ID: fixtureID("role", 3), Name: "support", Description: "Read customers and orders", Scope: "crm"},
		{ID: fixtureID("role", 4), Name: "viewer", Description: "Read only", Scope: "global"},
	}
	for _, u := range Users() {
		for i := range roles {
			if roles[i].Name == u.Role {
				roles[i].Members++
			}
		}
	}
	return roles
}

// Users returns admin console accounts assigned to the fixture roles.
func Users() []User {
	names := []string{"Ada Park", "Ben Ortiz", "Cleo Hart", "Dev Patel", "Ema Sato", "Finn Wade",
		"Gia Russo", "Hugo Lam", "Ivy Cole", "Jon Reyes", "Kai Muller", "Lea Novak", "Max Ito", "Noa Levi", "Oli Grant"}
	roles := []string{"admin", "editor", "editor", "support", "support", "viewer"}
	out := make([]User, len(names))
	for i, name := range names {
		u := User{
			ID:     fixtureID("user", i+1),
			Name:   name,
			Email:  strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@admin.example.com",
			Role:   roles[i%len(roles)],
			Active: i%4 != 3,
		}
		if u.Active {
			u.LastSeen = fixtureEpoch.AddDate(0, 2, i)
		}
		out[i] = u
	}
	return out
}
