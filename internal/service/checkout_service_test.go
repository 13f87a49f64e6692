package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmdirect/marketplace/internal/model"
	"farmdirect/marketplace/internal/repository"
	"farmdirect/marketplace/internal/service"
	"farmdirect/marketplace/internal/store"
)

func signedInStore(t *testing.T, email string, role model.Role) *store.Store {
	t.Helper()
	s := store.New(store.Config{Directory: repository.NewDirectory(repository.SeedUsers())})
	require.True(t, s.SignIn(context.Background(), email, "pw", role))
	return s
}

func TestPlaceOrder_RequiresSignIn(t *testing.T) {
	s := store.New(store.Config{Directory: repository.NewDirectory(nil)})
	svc := service.NewCheckoutService(s, repository.NewOrderBook(nil))

	_, err := svc.PlaceOrder("123 Main St, New York 10001")
	assert.ErrorIs(t, err, service.ErrNotSignedIn)
}

func TestPlaceOrder_RequiresNonEmptyCart(t *testing.T) {
	s := signedInStore(t, "sarah@example.com", model.RoleBuyer)
	svc := service.NewCheckoutService(s, repository.NewOrderBook(nil))

	_, err := svc.PlaceOrder("123 Main St, New York 10001")
	assert.ErrorIs(t, err, service.ErrEmptyCart)
}

func TestPlaceOrder_GroupsByFarmerAndClearsCart(t *testing.T) {
	s := signedInStore(t, "sarah@example.com", model.RoleBuyer)
	book := repository.NewOrderBook(nil)
	svc := service.NewCheckoutService(s, book)

	s.AddToCart(model.Product{ID: "1", Name: "Tomatoes", Price: 6.99, FarmerID: "1"})
	s.AddToCart(model.Product{ID: "1", Name: "Tomatoes", Price: 6.99, FarmerID: "1"})
	s.AddToCart(model.Product{ID: "9", Name: "Honey", Price: 24.00, FarmerID: "7"})

	orders, err := svc.PlaceOrder("123 Main St, New York 10001")
	require.NoError(t, err)
	require.Len(t, orders, 2)

	first := orders[0]
	assert.Equal(t, "1", first.FarmerID)
	assert.Equal(t, "2", first.BuyerID)
	assert.Equal(t, model.OrderPending, first.Status)
	assert.InDelta(t, 13.98, first.Total, 1e-9)
	assert.Equal(t, time.Now().Format("2006-01-02"), first.OrderDate)
	assert.Equal(t, "123 Main St, New York 10001", first.ShippingAddress)
	require.Len(t, first.Items, 1)
	assert.Equal(t, 2, first.Items[0].Quantity)

	second := orders[1]
	assert.Equal(t, "7", second.FarmerID)
	assert.InDelta(t, 24.00, second.Total, 1e-9)

	// Cart is emptied and the client lands on the orders page.
	assert.Empty(t, s.Cart())
	assert.Equal(t, model.PageOrders, s.CurrentPage())
	assert.Len(t, book.List(), 2)
}

func TestListOrders_BuyerSeesOwnOrders(t *testing.T) {
	s := signedInStore(t, "sarah@example.com", model.RoleBuyer)
	svc := service.NewCheckoutService(s, repository.NewOrderBook(repository.SeedOrders()))

	orders, err := svc.ListOrders("all")
	require.NoError(t, err)
	assert.Len(t, orders, 3)

	shipped, err := svc.ListOrders("shipped")
	require.NoError(t, err)
	require.Len(t, shipped, 1)
	assert.Equal(t, model.OrderShipped, shipped[0].Status)
}

func TestListOrders_FarmerSeesIncomingOrders(t *testing.T) {
	s := signedInStore(t, "john@example.com", model.RoleFarmer)
	svc := service.NewCheckoutService(s, repository.NewOrderBook(repository.SeedOrders()))

	orders, err := svc.ListOrders("")
	require.NoError(t, err)
	assert.Len(t, orders, 3)
	for _, o := range orders {
		assert.Equal(t, "1", o.FarmerID)
	}
}

func TestListOrders_RequiresSignIn(t *testing.T) {
	s := store.New(store.Config{Directory: repository.NewDirectory(nil)})
	svc := service.NewCheckoutService(s, repository.NewOrderBook(repository.SeedOrders()))

	_, err := svc.ListOrders("all")
	assert.ErrorIs(t, err, service.ErrNotSignedIn)
}
