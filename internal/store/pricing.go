package store

import "farmdirect/marketplace/internal/model"

// Pricing constants for checkout. Shipping is waived once the subtotal
// passes the free-shipping threshold; tax is a flat percentage.
const (
	TaxRate             = 0.08
	FreeShippingMin     = 50.0
	StandardShippingFee = 5.99
)

// Summary breaks a cart down into the figures the order summary shows.
type Summary struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Summarize prices a set of cart items. Total is always the sum of the
// other three figures.
func Summarize(items []model.CartItem) Summary {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Product.Price * float64(item.Quantity)
	}

	shipping := StandardShippingFee
	if subtotal > FreeShippingMin {
		shipping = 0
	}
	tax := subtotal * TaxRate

	return Summary{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}
