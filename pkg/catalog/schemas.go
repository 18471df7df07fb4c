package catalog

import listview "github.com/goliatone/go-listview/components/listview"

func str(s string) listview.Value { return listview.StringValue(s) }

// CustomerSchema exposes customer fields to lists.
var CustomerSchema = listview.MustSchema(func(c Customer) string { return c.ID },
	listview.Field[Customer]{Name: "name", Get: func(c Customer) listview.Value { return str(c.Name) }},
	listview.Field[Customer]{Name: "email", Get: func(c Customer) listview.Value { return str(c.Email) }},
	listview.Field[Customer]{Name: "status", Get: func(c Customer) listview.Value { return str(c.Status) }},
	listview.Field[Customer]{Name: "tier", Get: func(c Customer) listview.Value { return str(c.Tier) }},
	listview.Field[Customer]{Name: "total_spent", Label: "Total Spent", Get: func(c Customer) listview.Value { return listview.NumberValue(c.TotalSpent) }},
	listview.Field[Customer]{Name: "joined_at", Label: "Joined", Get: func(c Customer) listview.Value { return listview.TimeValue(c.JoinedAt) }},
)

// OrderSchema exposes order fields to lists.
var OrderSchema = listview.MustSchema(func(o Order) string { return o.ID },
	listview.Field[Order]{Name: "number", Label: "Order #", Get: func(o Order) listview.Value { return str(o.Number) }},
	listview.Field[Order]{Name: "customer", Get: func(o Order) listview.Value { return str(o.Customer) }},
	listview.Field[Order]{Name: "status", Get: func(o Order) listview.Value { return str(o.Status) }},
	listview.Field[Order]{Name: "channel", Get: func(o Order) listview.Value { return str(o.Channel) }},
	listview.Field[Order]{Name: "total", Get: func(o Order) listview.Value { return listview.NumberValue(o.Total) }},
	listview.Field[Order]{Name: "placed_at", Label: "Placed", Get: func(o Order) listview.Value { return listview.TimeValue(o.PlacedAt) }},
)

// InvoiceSchema exposes invoice fields to lists. Unpaid invoices have a
// missing paid_at value.
var InvoiceSchema = listview.MustSchema(func(i Invoice) string { return i.ID },
	listview.Field[Invoice]{Name: "number", Label: "Invoice #", Get: func(i Invoice) listview.Value { return str(i.Number) }},
	listview.Field[Invoice]{Name: "customer", Get: func(i Invoice) listview.Value { return str(i.Customer) }},
	listview.Field[Invoice]{Name: "status", Get: func(i Invoice) listview.Value { return str(i.Status) }},
	listview.Field[Invoice]{Name: "amount", Get: func(i Invoice) listview.Value { return listview.NumberValue(i.Amount) }},
	listview.Field[Invoice]{Name: "due_at", Label: "Due", Get: func(i Invoice) listview.Value { return listview.TimeValue(i.DueAt) }},
	listview.Field[Invoice]{Name: "paid_at", Label: "Paid", Get: func(i Invoice) listview.Value { return listview.TimeValue(i.PaidAt) }},
)

// ProductSchema exposes product fields to lists.
var ProductSchema = listview.MustSchema(func(p Product) string { return p.ID },
	listview.Field[Product]{Name: "sku", Label: "SKU", Get: func(p Product) listview.Value { return str(p.SKU) }},
	listview.Field[Product]{Name: "name", Get: func(p Product) listview.Value { return str(p.Name) }},
	listview.Field[Product]{Name: "category", Get: func(p Product) listview.Value { return str(p.Category) }},
	listview.Field[Product]{Name: "status", Get: func(p Product) listview.Value { return str(p.Status) }},
	listview.Field[Product]{Name: "price", Get: func(p Product) listview.Value { return listview.NumberValue(p.Price) }},
)

// StockItemSchema exposes stock fields to lists.
var StockItemSchema = listview.MustSchema(func(s StockItem) string { return s.ID },
	listview.Field[StockItem]{Name: "sku", Label: "SKU", Get: func(s StockItem) listview.Value { return str(s.SKU) }},
	listview.Field[StockItem]{Name: "product", Get: func(s StockItem) listview.Value { return str(s.Product) }},
	listview.Field[StockItem]{Name: "warehouse", Get: func(s StockItem) listview.Value { return str(s.Warehouse) }},
	listview.Field[StockItem]{Name: "quantity", Get: func(s StockItem) listview.Value { return listview.IntValue(s.Quantity) }},
	listview.Field[StockItem]{Name: "status", Get: func(s StockItem) listview.Value { return str(s.Status) }},
)

// UserSchema exposes user fields to lists.
var UserSchema = listview.MustSchema(func(u User) string { return u.ID },
	listview.Field[User]{Name: "name", Get: func(u User) listview.Value { return str(u.Name) }},
	listview.Field[User]{Name: "email", Get: func(u User) listview.Value { return str(u.Email) }},
	listview.Field[User]{Name: "role", Get: func(u User) listview.Value { return str(u.Role) }},
	listview.Field[User]{Name: "active", Get: func(u User) listview.Value { return listview.BoolValue(u.Active) }},
	listview.Field[User]{Name: "last_seen", Get: func(u User) listview.Value { return listview.TimeValue(u.LastSeen) }},
)

// RoleSchema exposes role fields to lists.
var RoleSchema = listview.MustSchema(func(r Role) string { return r.ID },
	listview.Field[Role]{Name: "name", Get: func(r Role) listview.Value { return str(r.Name) }},
	listview.Field[Role]{Name: "description", Get: func(r Role) listview.Value { return str(r.Description) }},
	listview.Field[Role]{Name: "scope", Get: func(r Role) listview.Value { return str(r.Scope) }},
	listview.Field[Role]{Name: "members", Get: func(r Role) listview.Value { return listview.IntValue(r.Members) }},
)
