package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmdirect/marketplace/internal/model"
	"farmdirect/marketplace/internal/repository"
	"farmdirect/marketplace/internal/store"
)

func newStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(store.Config{
		Directory: repository.NewDirectory(repository.SeedUsers()),
	})
}

func product(id string, price float64) model.Product {
	return model.Product{ID: id, Name: "Product " + id, Price: price, FarmerID: "1"}
}

func TestSignIn_MatchesEmailAndRole(t *testing.T) {
	s := newStore(t)

	ok := s.SignIn(context.Background(), "sarah@example.com", "anything", model.RoleBuyer)
	require.True(t, ok)

	user, signedIn := s.CurrentUser()
	require.True(t, signedIn)
	assert.Equal(t, "sarah@example.com", user.Email)
	assert.Equal(t, model.PageBuyerDashboard, s.CurrentPage())
}

func TestSignIn_RoleMismatchLeavesStateUntouched(t *testing.T) {
	s := newStore(t)

	ok := s.SignIn(context.Background(), "sarah@example.com", "x", model.RoleFarmer)
	assert.False(t, ok)

	_, signedIn := s.CurrentUser()
	assert.False(t, signedIn)
	assert.Equal(t, model.PageLanding, s.CurrentPage())
}

func TestSignIn_PasswordIsIgnored(t *testing.T) {
	s := newStore(t)

	assert.True(t, s.SignIn(context.Background(), "john@example.com", "", model.RoleFarmer))
	assert.Equal(t, model.PageFarmerDashboard, s.CurrentPage())
}

func TestSignIn_CancelledContext(t *testing.T) {
	s := store.New(store.Config{
		Directory: repository.NewDirectory(repository.SeedUsers()),
		AuthDelay: time.Minute,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.False(t, s.SignIn(ctx, "sarah@example.com", "pw", model.RoleBuyer))
	_, signedIn := s.CurrentUser()
	assert.False(t, signedIn)
	assert.Equal(t, model.PageLanding, s.CurrentPage())
}

func TestSignUp_Defaults(t *testing.T) {
	s := newStore(t)

	user := s.SignUp(context.Background(), store.SignUpInput{Name: "A", Email: "a@b.com"})

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, model.RoleBuyer, user.Role)
	assert.Equal(t, time.Now().Format("2006-01-02"), user.JoinDate)
	assert.Equal(t, model.PageBuyerDashboard, s.CurrentPage())

	current, signedIn := s.CurrentUser()
	require.True(t, signedIn)
	assert.Equal(t, user, current)
}

func TestSignUp_UniqueIdentifiers(t *testing.T) {
	s := newStore(t)

	a := s.SignUp(context.Background(), store.SignUpInput{Name: "A", Email: "a@b.com"})
	b := s.SignUp(context.Background(), store.SignUpInput{Name: "B", Email: "b@b.com", Role: model.RoleFarmer})

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, model.PageFarmerDashboard, s.CurrentPage())
}

func TestAddToCart_NewAndRepeat(t *testing.T) {
	s := newStore(t)
	p1 := product("1", 6.99)
	p2 := product("2", 4.50)

	s.AddToCart(p1)
	s.AddToCart(p2)
	s.AddToCart(p1)

	cart := s.Cart()
	require.Len(t, cart, 2)
	assert.Equal(t, "1", cart[0].Product.ID)
	assert.Equal(t, 2, cart[0].Quantity)
	assert.Equal(t, "2", cart[1].Product.ID)
	assert.Equal(t, 1, cart[1].Quantity)
	assert.Equal(t, 3, s.CartCount())
}

func TestUpdateCartQuantity_Overwrites(t *testing.T) {
	s := newStore(t)
	s.AddToCart(product("1", 6.99))

	s.UpdateCartQuantity("1", 5)

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 5, cart[0].Quantity)
}

func TestUpdateCartQuantity_ZeroRemovesEntry(t *testing.T) {
	s := newStore(t)
	s.AddToCart(product("1", 6.99))
	s.AddToCart(product("2", 4.50))

	s.UpdateCartQuantity("1", 0)

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, "2", cart[0].Product.ID)

	s.UpdateCartQuantity("2", -3)
	assert.Empty(t, s.Cart())
}

func TestUpdateCartQuantity_UnknownProductIsNoOp(t *testing.T) {
	s := newStore(t)
	s.AddToCart(product("1", 6.99))

	s.UpdateCartQuantity("missing", 4)

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 1, cart[0].Quantity)
}

func TestRemoveFromCart_Idempotent(t *testing.T) {
	s := newStore(t)
	s.AddToCart(product("1", 6.99))

	s.RemoveFromCart("1")
	assert.Empty(t, s.Cart())

	s.RemoveFromCart("1") // second call is a no-op
	assert.Empty(t, s.Cart())
}

func TestSignOut_ResetsEverything(t *testing.T) {
	s := newStore(t)
	require.True(t, s.SignIn(context.Background(), "sarah@example.com", "pw", model.RoleBuyer))
	s.AddToCart(product("1", 6.99))
	s.Navigate(model.PageCart)

	s.SignOut()

	_, signedIn := s.CurrentUser()
	assert.False(t, signedIn)
	assert.Equal(t, model.PageLanding, s.CurrentPage())
	assert.Empty(t, s.Cart())
	assert.Zero(t, s.CartCount())
}

func TestNavigate_Overwrites(t *testing.T) {
	s := newStore(t)

	s.Navigate(model.PageMarket)
	assert.Equal(t, model.PageMarket, s.CurrentPage())

	s.Navigate(model.PageOrders)
	assert.Equal(t, model.PageOrders, s.CurrentPage())
}

func TestUpdateProfile_ReplacesCurrentUser(t *testing.T) {
	s := newStore(t)
	require.True(t, s.SignIn(context.Background(), "sarah@example.com", "pw", model.RoleBuyer))

	user, _ := s.CurrentUser()
	user.Name = "Sarah J."
	user.Location = "Boston, USA"
	s.UpdateProfile(user)

	updated, signedIn := s.CurrentUser()
	require.True(t, signedIn)
	assert.Equal(t, "Sarah J.", updated.Name)
	assert.Equal(t, "Boston, USA", updated.Location)
	assert.Equal(t, "2", updated.ID)
}
