package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"farmdirect/marketplace/internal/model"
	"farmdirect/marketplace/internal/store"
)

func TestSummarize_StandardShippingBelowThreshold(t *testing.T) {
	items := []model.CartItem{
		{Product: product("1", 10.00), Quantity: 4}, // subtotal 40.00
	}

	sum := store.Summarize(items)

	assert.InDelta(t, 40.00, sum.Subtotal, 1e-9)
	assert.InDelta(t, 5.99, sum.Shipping, 1e-9)
	assert.InDelta(t, 3.20, sum.Tax, 1e-9)
	assert.InDelta(t, 49.19, sum.Total, 1e-9)
}

func TestSummarize_FreeShippingAboveThreshold(t *testing.T) {
	items := []model.CartItem{
		{Product: product("1", 25.50), Quantity: 2}, // subtotal 51.00
	}

	sum := store.Summarize(items)

	assert.InDelta(t, 51.00, sum.Subtotal, 1e-9)
	assert.Zero(t, sum.Shipping)
}

func TestSummarize_ExactlyAtThresholdStillPaysShipping(t *testing.T) {
	items := []model.CartItem{
		{Product: product("1", 50.00), Quantity: 1},
	}

	// Free shipping requires subtotal strictly above 50.
	sum := store.Summarize(items)
	assert.InDelta(t, 5.99, sum.Shipping, 1e-9)
}

func TestSummarize_TotalInvariant(t *testing.T) {
	carts := [][]model.CartItem{
		nil,
		{{Product: product("1", 6.99), Quantity: 2}},
		{{Product: product("1", 6.99), Quantity: 2}, {Product: product("2", 4.50), Quantity: 3}},
		{{Product: product("1", 19.99), Quantity: 5}},
	}

	for _, items := range carts {
		sum := store.Summarize(items)
		assert.InDelta(t, sum.Subtotal+sum.Shipping+sum.Tax, sum.Total, 1e-9)
		assert.InDelta(t, sum.Subtotal*store.TaxRate, sum.Tax, 1e-9)
	}
}

func TestStoreSummary_TracksCart(t *testing.T) {
	s := newStore(t)
	s.AddToCart(product("1", 6.99))
	s.AddToCart(product("1", 6.99))

	sum := s.Summary()
	assert.InDelta(t, 13.98, sum.Subtotal, 1e-9)
	assert.InDelta(t, 5.99, sum.Shipping, 1e-9)
}
