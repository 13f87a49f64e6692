package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"farmdirect/marketplace/internal/model"
	"farmdirect/marketplace/internal/repository"
	"farmdirect/marketplace/internal/store"
)

var (
	ErrNotSignedIn = errors.New("not signed in")
	ErrEmptyCart   = errors.New("cart is empty")
)

type CheckoutService struct {
	store  *store.Store
	orders *repository.OrderBook
}

func NewCheckoutService(st *store.Store, orders *repository.OrderBook) *CheckoutService {
	return &CheckoutService{store: st, orders: orders}
}

// PlaceOrder turns the current cart into pending orders, one per farmer,
// clears the cart and navigates to the orders page. Each order's total is
// the subtotal of its own items; shipping and tax are checkout-level
// figures, not split across farmers.
func (s *CheckoutService) PlaceOrder(shippingAddress string) ([]model.Order, error) {
	user, ok := s.store.CurrentUser()
	if !ok {
		return nil, ErrNotSignedIn
	}

	cart := s.store.Cart()
	if len(cart) == 0 {
		return nil, ErrEmptyCart
	}

	// Group cart entries by the farmer who fulfills them, keeping the
	// cart's insertion order within and across groups.
	var farmerIDs []string
	grouped := make(map[string][]model.CartItem)
	for _, item := range cart {
		id := item.Product.FarmerID
		if _, seen := grouped[id]; !seen {
			farmerIDs = append(farmerIDs, id)
		}
		grouped[id] = append(grouped[id], item)
	}

	today := time.Now().Format("2006-01-02")
	orders := make([]model.Order, 0, len(farmerIDs))
	for _, farmerID := range farmerIDs {
		items := grouped[farmerID]
		var total float64
		for _, item := range items {
			total += item.Product.Price * float64(item.Quantity)
		}
		order := model.Order{
			ID:              uuid.NewString(),
			BuyerID:         user.ID,
			FarmerID:        farmerID,
			Items:           items,
			Total:           total,
			Status:          model.OrderPending,
			OrderDate:       today,
			ShippingAddress: shippingAddress,
		}
		s.orders.Add(order)
		orders = append(orders, order)
	}

	s.store.ClearCart()
	s.store.Navigate(model.PageOrders)
	return orders, nil
}

// ListOrders returns the current user's side of the order book: a buyer
// sees orders they placed, a farmer sees orders they fulfill. A status
// other than "" or "all" narrows the list.
func (s *CheckoutService) ListOrders(status string) ([]model.Order, error) {
	user, ok := s.store.CurrentUser()
	if !ok {
		return nil, ErrNotSignedIn
	}

	var out []model.Order
	for _, order := range s.orders.List() {
		if user.Role == model.RoleFarmer {
			if order.FarmerID != user.ID {
				continue
			}
		} else if order.BuyerID != user.ID {
			continue
		}
		if status != "" && status != "all" && order.Status != model.OrderStatus(status) {
			continue
		}
		out = append(out, order)
	}
	return out, nil
}
