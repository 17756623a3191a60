package storefront_test

import (
	"time"

	"github.com/shopspring/decimal"

	"Storefront/internal/storefront"
)

func product(id int64, name, category, price string) storefront.Product {
	return storefront.Product{
		ID:       id,
		Name:     name,
		Category: category,
		Price:    decimal.RequireFromString(price),
		InStock:  true,
	}
}

func sampleCatalog() []storefront.Product {
	created := storefront.Timestamp{Time: time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)}

	widget := product(1, "Widget", "Electronics", "19.999")
	widget.CreatedAt = created
	widget.Description = "A very useful widget."
	widget.Tags = []string{"gadget", "tools"}

	return []storefront.Product{
		widget,
		product(2, "Toaster", "Appliances", "35"),
		product(3, "Running Shoes", "Sports", "89.5"),
		product(4, "Mystery Box", "", "10"),
		product(5, "Electric Kettle", "Appliances", "24.99"),
	}
}

func ids(products []storefront.Product) []int64 {
	out := make([]int64, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}
