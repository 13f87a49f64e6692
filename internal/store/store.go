// Package store owns all mutable cross-page state of the demo: the signed-in
// user, the page the client is on, and the shopping cart. Every mutation goes
// through one of its operations; views only ever read snapshots.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"farmdirect/marketplace/internal/model"
	"farmdirect/marketplace/internal/repository"
)

type Config struct {
	Directory *repository.Directory
	// AuthDelay imitates a network round trip on sign-in/sign-up so the
	// client's loading state has something to show. Zero disables it.
	AuthDelay time.Duration
}

// Store is the single source of truth for session, navigation and cart
// state. One instance lives for the process lifetime; operations apply in
// the order the lock grants them.
type Store struct {
	directory *repository.Directory
	authDelay time.Duration

	mu   sync.RWMutex
	user *model.User
	page model.Page
	cart []model.CartItem
}

func New(cfg Config) *Store {
	return &Store{
		directory: cfg.Directory,
		authDelay: cfg.AuthDelay,
		page:      model.PageLanding,
	}
}

// Navigate overwrites the current page. No guards, no history stack.
func (s *Store) Navigate(page model.Page) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page = page
}

// SignIn looks the user up by email and role in the directory. The password
// is accepted but never checked: this is a non-authenticating demo. On a
// match the user becomes current and the page jumps to their dashboard; on a
// miss (or cancelled context) nothing changes and SignIn reports false.
func (s *Store) SignIn(ctx context.Context, email, password string, role model.Role) bool {
	_ = password

	if err := s.wait(ctx); err != nil {
		return false
	}

	user, ok := s.directory.FindByEmailAndRole(email, role)
	if !ok {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
	s.page = model.DashboardFor(user.Role)
	return true
}

// SignUpInput carries the fields collected by the sign-up form. Anything
// absent is defaulted; there is no uniqueness or format validation here.
type SignUpInput struct {
	Name     string
	Email    string
	Phone    string
	Location string
	Role     model.Role
}

// SignUp fabricates a new user, signs them in and navigates to their
// dashboard. The identifier is a UUID and the join date is today.
func (s *Store) SignUp(ctx context.Context, in SignUpInput) model.User {
	if err := s.wait(ctx); err != nil {
		return model.User{}
	}

	role := in.Role
	if role == "" {
		role = model.RoleBuyer
	}

	user := model.User{
		ID:       uuid.NewString(),
		Name:     in.Name,
		Email:    in.Email,
		Role:     role,
		Phone:    in.Phone,
		Location: in.Location,
		JoinDate: time.Now().Format("2006-01-02"),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
	s.page = model.DashboardFor(user.Role)
	return user
}

// SignOut clears the session: no user, landing page, empty cart. The cart is
// not preserved across sessions.
func (s *Store) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.page = model.PageLanding
	s.cart = nil
}

// AddToCart increments the entry for the product if one exists, otherwise
// appends a new entry with quantity 1.
func (s *Store) AddToCart(product model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].Product.ID == product.ID {
			s.cart[i].Quantity++
			return
		}
	}
	s.cart = append(s.cart, model.CartItem{Product: product, Quantity: 1})
}

// UpdateCartQuantity overwrites the quantity of the matching entry. A
// quantity of zero or below removes the entry, so the cart never holds a
// non-positive quantity. No-op if the product is not in the cart.
func (s *Store) UpdateCartQuantity(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(productID)
		return
	}
	for i := range s.cart {
		if s.cart[i].Product.ID == productID {
			s.cart[i].Quantity = quantity
			return
		}
	}
}

// RemoveFromCart drops the matching entry. No-op if absent.
func (s *Store) RemoveFromCart(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(productID)
}

func (s *Store) removeLocked(productID string) {
	for i := range s.cart {
		if s.cart[i].Product.ID == productID {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			return
		}
	}
}

// ClearCart empties the cart without touching the session. Used after a
// successful checkout.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
}

// UpdateProfile replaces the current user wholesale with the supplied
// record. The caller is responsible for keeping ID and role unchanged.
func (s *Store) UpdateProfile(user model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
}

// CurrentUser returns a copy of the signed-in user, or false when nobody is.
func (s *Store) CurrentUser() (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return model.User{}, false
	}
	return *s.user, true
}

func (s *Store) CurrentPage() model.Page {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.page
}

// Cart returns a snapshot of the cart in insertion order.
func (s *Store) Cart() []model.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.CartItem, len(s.cart))
	copy(out, s.cart)
	return out
}

// CartCount is the sum of quantities across entries, shown as the cart
// badge.
func (s *Store) CartCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, item := range s.cart {
		count += item.Quantity
	}
	return count
}

// Summary prices the current cart.
func (s *Store) Summary() Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Summarize(s.cart)
}

func (s *Store) wait(ctx context.Context) error {
	if s.authDelay <= 0 {
		return nil
	}
	t := time.NewTimer(s.authDelay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
