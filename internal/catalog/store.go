package catalog

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	InStock     bool            `json:"in_stock"`
	CreatedAt   *time.Time      `json:"created_at"`
	Description string          `json:"description"`
	Tags        []string        `json:"tags"`
}

// Store is the read side the HTTP layer needs. List is ordered by id.
type Store interface {
	Ping(ctx context.Context) error
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id int64) (Product, bool, error)
}
