package storefront

import "sync"

type CartLine struct {
	Product
	Quantity int
}

// Cart keeps one line per product id in order of first add. Lines are never
// removed.
type Cart struct {
	mu    sync.RWMutex
	lines []CartLine
	index map[int64]int
}

func NewCart() *Cart {
	return &Cart{index: make(map[int64]int)}
}

// Add bumps the quantity of an existing line or appends a new one at 1.
func (c *Cart) Add(p Product) CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i, ok := c.index[p.ID]; ok {
		c.lines[i].Quantity++
		return c.lines[i]
	}

	c.index[p.ID] = len(c.lines)
	c.lines = append(c.lines, CartLine{Product: p, Quantity: 1})
	return c.lines[len(c.lines)-1]
}

func (c *Cart) TotalItemCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := 0
	for _, l := range c.lines {
		total += l.Quantity
	}
	return total
}

func (c *Cart) Lines() []CartLine {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}
