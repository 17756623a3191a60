// Package storefront holds the browsing session: the catalog client, the
// in-memory catalog and cart, the view state the terminal draws, and the
// controller that turns user actions into store mutations and re-renders.
package storefront

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	InStock     bool            `json:"in_stock"`
	CreatedAt   Timestamp       `json:"created_at"`
	Description string          `json:"description"`
	Tags        []string        `json:"tags"`
}

// Timestamp is an optional creation time. The zero value means the backend
// sent nothing usable.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	time.DateTime,
	time.DateOnly,
}

// UnmarshalJSON accepts RFC 3339, zone-less ISO timestamps and bare dates.
// Unparseable strings decode as absent rather than failing the whole catalog.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	*t = Timestamp{}
	if string(b) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("created_at: %w", err)
	}

	for _, layout := range timestampLayouts {
		if v, err := time.Parse(layout, s); err == nil {
			t.Time = v
			return nil
		}
	}
	return nil
}
