package inmem

import (
	"sync"

	"fulfillment/internal/core/domain/model/kernel"
)

// Cart is the in-memory CartStore: per-item quantity bookkeeping for one
// customer. Present entries always have quantity >= 1; removing the last
// unit deletes the entry instead of zeroing it.
type Cart struct {
	mu    sync.RWMutex
	items map[kernel.UUID]int
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{
		items: make(map[kernel.UUID]int),
	}
}

// Add increments the quantity of the item, creating the entry at 1.
func (c *Cart) Add(itemID kernel.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[itemID]++
}

// Remove decrements the quantity of the item, deleting the entry when it
// would drop to zero. Removing an absent item is a no-op.
func (c *Cart) Remove(itemID kernel.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	quantity, ok := c.items[itemID]
	if !ok {
		return
	}
	if quantity > 1 {
		c.items[itemID] = quantity - 1
		return
	}
	delete(c.items, itemID)
}

// Items returns a snapshot of the cart contents, detached from the cart.
func (c *Cart) Items() map[kernel.UUID]int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snapshot := make(map[kernel.UUID]int, len(c.items))
	for itemID, quantity := range c.items {
		snapshot[itemID] = quantity
	}
	return snapshot
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.items)
}
