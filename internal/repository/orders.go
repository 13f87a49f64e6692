package repository

import (
	"sync"

	"farmdirect/marketplace/internal/model"
)

// OrderBook is the in-memory order history, newest first.
type OrderBook struct {
	mu     sync.RWMutex
	orders []model.Order
}

func NewOrderBook(orders []model.Order) *OrderBook {
	b := &OrderBook{orders: make([]model.Order, len(orders))}
	copy(b.orders, orders)
	return b
}

// List returns a snapshot of all orders.
func (b *OrderBook) List() []model.Order {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]model.Order, len(b.orders))
	copy(out, b.orders)
	return out
}

// Add prepends o so the most recent order lists first.
func (b *OrderBook) Add(o model.Order) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.orders = append([]model.Order{o}, b.orders...)
}
