package repository

import (
	"errors"
	"sync"

	"farmdirect/marketplace/internal/model"
)

var ErrProductNotFound = errors.New("product not found")

// Catalog holds the product list in memory. Reads hand out copies so the
// catalog itself stays the single source of truth; writes come only from
// the product-management flow.
type Catalog struct {
	mu       sync.RWMutex
	products []model.Product
}

func NewCatalog(products []model.Product) *Catalog {
	c := &Catalog{products: make([]model.Product, len(products))}
	copy(c.products, products)
	return c
}

// List returns a snapshot of every product in insertion order.
func (c *Catalog) List() []model.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]model.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Get(id string) (model.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, p := range c.products {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Product{}, ErrProductNotFound
}

func (c *Catalog) Create(p model.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = append(c.products, p)
}

func (c *Catalog) Update(p model.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.products {
		if c.products[i].ID == p.ID {
			c.products[i] = p
			return nil
		}
	}
	return ErrProductNotFound
}

func (c *Catalog) Delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.products {
		if c.products[i].ID == id {
			c.products = append(c.products[:i], c.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}
