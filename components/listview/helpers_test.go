package listview

import (
	"fmt"
	"time"
)

type customer struct {
	ID         string
	Name       string
	Email      string
	Status     string
	Tier       string
	TotalSpent float64
	JoinedAt   time.Time
}

var customerSchema = MustSchema(func(c customer) string { return c.ID },
	Field[customer]{Name: "name", Get: func(c customer) Value { return StringValue(c.Name) }},
	Field[customer]{Name: "email", Get: func(c customer) Value { return StringValue(c.Email) }},
	Field[customer]{Name: "status", Get: func(c customer) Value { return StringValue(c.Status) }},
	Field[customer]{Name: "tier", Get: func(c customer) Value { return StringValue(c.Tier) }},
	Field[customer]{Name: "totalSpent", Label: "Total Spent", Get: func(c customer) Value { return NumberValue(c.TotalSpent) }},
	Field[customer]{Name: "joined_at", Get: func(c customer) Value { return TimeValue(c.JoinedAt) }},
)

// 12 names contain an "a", 13 do not.
var customerNames = []string{
	"Alice", "Bob", "Anna", "Eve", "Clara", "Tom", "Dana", "Kim", "Grace", "Joe",
	"Hannah", "Ruth", "Laura", "Lily", "Maria", "Owen", "Nadia", "Yves", "Paula", "Zoe",
	"Sara", "Lyle", "Tara", "Fitz", "Nico",
}

func sampleCustomers() []customer {
	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	out := make([]customer, len(customerNames))
	for i, name := range customerNames {
		status := "active"
		if i%3 == 0 {
			status = "inactive"
		}
		tier := "standard"
		if i%4 == 0 {
			tier = "gold"
		}
		out[i] = customer{
			ID:         fmt.Sprintf("c%02d", i+1),
			Name:       name,
			Email:      fmt.Sprintf("user%02d@example.com", i+1),
			Status:     status,
			Tier:       tier,
			TotalSpent: float64((i % 5) * 100),
			JoinedAt:   base.AddDate(0, 0, i),
		}
	}
	return out
}

func customerConfig(pageSize int) Config[customer] {
	name, _ := customerSchema.Field("name")
	status, _ := customerSchema.Field("status")
	tier, _ := customerSchema.Field("tier")
	return Config[customer]{
		Schema:       customerSchema,
		SearchFields: []Field[customer]{name},
		Filters: []Filter[customer]{
			{Key: "status", Match: status.Get},
			{Key: "tier", Match: tier.Get},
		},
		PageSize: pageSize,
	}
}

func ids(records []customer) []string {
	out := make([]string, len(records))
	for i, c := range records {
		out[i] = c.ID
	}
	return out
}
