package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"farmdirect/marketplace/internal/model"
	"farmdirect/marketplace/internal/service"
	"farmdirect/marketplace/internal/store"
)

type Handler struct {
	router *chi.Mux

	store    *store.Store
	catalog  *service.CatalogService
	checkout *service.CheckoutService
	products *service.ProductService
}

func New(st *store.Store, catalog *service.CatalogService, checkout *service.CheckoutService, products *service.ProductService) *Handler {
	router := chi.NewRouter()

	// Middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(Brotli)

	h := &Handler{
		router:   router,
		store:    st,
		catalog:  catalog,
		checkout: checkout,
		products: products,
	}

	h.registerRoutes()
	return h
}

func (h *Handler) registerRoutes() {
	h.router.Route("/v1", func(r chi.Router) {
		r.Get("/health", h.HealthCheck)
		r.Get("/state", h.GetState)
		r.Post("/navigate", h.Navigate)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signin", h.SignIn)
			r.Post("/signup", h.SignUp)
			r.Post("/signout", h.SignOut)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.ListProducts)
			r.Post("/", h.CreateProduct)
			r.Put("/{id}", h.UpdateProduct)
			r.Delete("/{id}", h.DeleteProduct)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.GetCart)
			r.Post("/items", h.AddCartItem)
			r.Put("/items/{productID}", h.UpdateCartItem)
			r.Delete("/items/{productID}", h.RemoveCartItem)
		})

		r.Post("/checkout", h.Checkout)
		r.Get("/orders", h.ListOrders)
		r.Put("/profile", h.UpdateProfile)
	})
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// stateResponse is what the client renders from: which page to show, who is
// signed in and how many items the cart badge should display.
type stateResponse struct {
	Page      model.Page  `json:"page"`
	User      *model.User `json:"user,omitempty"`
	CartCount int         `json:"cart_count"`
}

func (h *Handler) state() stateResponse {
	resp := stateResponse{
		Page:      h.store.CurrentPage(),
		CartCount: h.store.CartCount(),
	}
	if user, ok := h.store.CurrentUser(); ok {
		resp.User = &user
	}
	return resp
}

func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.state())
}

type navigateRequest struct {
	Page string `json:"page"`
}

// Navigate switches the current page. Unknown page labels land on the
// landing page instead of failing.
func (h *Handler) Navigate(w http.ResponseWriter, r *http.Request) {
	var req navigateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.store.Navigate(model.ParsePage(req.Page))
	writeJSON(w, http.StatusOK, h.state())
}
