package storefront

import (
	"strings"
	"sync"
)

// Catalog holds the products loaded for the session in server order.
type Catalog struct {
	mu       sync.RWMutex
	products []Product
}

func NewCatalog() *Catalog {
	return &Catalog{}
}

// Load replaces the held products wholesale. Ids must be unique, so a repeated
// id keeps its first occurrence; the number of dropped records is returned.
func (c *Catalog) Load(products []Product) (dropped int) {
	seen := make(map[int64]struct{}, len(products))
	next := make([]Product, 0, len(products))
	for _, p := range products {
		if _, dup := seen[p.ID]; dup {
			dropped++
			continue
		}
		seen[p.ID] = struct{}{}
		next = append(next, p)
	}

	c.mu.Lock()
	c.products = next
	c.mu.Unlock()

	return dropped
}

// Filter returns the products whose name or category contains query,
// ignoring case and surrounding whitespace. An empty query matches all.
func (c *Catalog) Filter(query string) []Product {
	q := strings.ToLower(strings.TrimSpace(query))

	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Product, 0, len(c.products))
	for _, p := range c.products {
		if q == "" || matches(p, q) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p Product, q string) bool {
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Category), q)
}

func (c *Catalog) FindByID(id int64) (Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}
