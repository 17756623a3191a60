package catalog

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

type MemStore struct {
	mu sync.RWMutex
	m  map[int64]Product
}

func NewMemStore(products ...Product) *MemStore {
	s := &MemStore{m: make(map[int64]Product, len(products))}
	for _, p := range products {
		s.m[p.ID] = p
	}
	return s
}

// NewStore returns a memory store holding the demo catalog.
func NewStore() Store {
	return NewMemStore(DemoProducts()...)
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) List(ctx context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, 0, len(s.m))
	for _, p := range s.m {
		out = append(out, p)
	}

	slices.SortFunc(out, func(a, b Product) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

func (s *MemStore) Get(ctx context.Context, id int64) (Product, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.m[id]
	return p, ok, nil
}

func DemoProducts() []Product {
	at := func(y int, m time.Month, d int) *time.Time {
		t := time.Date(y, m, d, 10, 30, 0, 0, time.UTC)
		return &t
	}

	return []Product{
		{
			ID: 1, Name: "Wireless Headphones", Category: "Electronics",
			Price: decimal.RequireFromString("99.99"), InStock: true, CreatedAt: at(2024, time.January, 15),
			Description: "Over-ear headphones with active noise cancellation and 30 hours of battery.",
			Tags:        []string{"audio", "wireless", "bluetooth"},
		},
		{
			ID: 2, Name: "Espresso Machine", Category: "Appliances",
			Price: decimal.RequireFromString("249.5"), InStock: true, CreatedAt: at(2024, time.February, 3),
			Description: "15-bar pump espresso maker with a steam wand.",
			Tags:        []string{"kitchen", "coffee"},
		},
		{
			ID: 3, Name: "Leather Wallet", Category: "Accessories",
			Price: decimal.RequireFromString("39"), InStock: true, CreatedAt: at(2024, time.March, 21),
			Description: "Slim bifold wallet in full-grain leather.",
			Tags:        []string{"leather", "gift"},
		},
		{
			ID: 4, Name: "Denim Jacket", Category: "Clothing",
			Price: decimal.RequireFromString("79.95"), InStock: false, CreatedAt: at(2024, time.April, 9),
			Description: "Classic trucker jacket in stonewashed denim.",
			Tags:        []string{"outerwear"},
		},
		{
			ID: 5, Name: "The Go Programming Language", Category: "Books",
			Price: decimal.RequireFromString("34.99"), InStock: true, CreatedAt: at(2024, time.May, 30),
			Description: "A thorough introduction to Go and its standard library.",
			Tags:        []string{"programming", "go"},
		},
		{
			ID: 6, Name: "Yoga Mat", Category: "Sports",
			Price: decimal.RequireFromString("25"), InStock: true, CreatedAt: at(2024, time.June, 12),
			Description: "6mm non-slip mat with carrying strap.",
		},
		{
			ID: 7, Name: "Gift Card", Category: "Gifts",
			Price:       decimal.RequireFromString("50"),
			InStock:     true,
			Description: "Redeemable for anything in the store.",
		},
	}
}
