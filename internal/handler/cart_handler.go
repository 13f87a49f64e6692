package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"farmdirect/marketplace/internal/model"
	"farmdirect/marketplace/internal/repository"
	"farmdirect/marketplace/internal/store"
)

// cartResponse is the cart page payload: the entries plus the priced order
// summary shown next to them.
type cartResponse struct {
	Items   []model.CartItem `json:"items"`
	Count   int              `json:"count"`
	Summary store.Summary    `json:"summary"`
}

func (h *Handler) cart() cartResponse {
	return cartResponse{
		Items:   h.store.Cart(),
		Count:   h.store.CartCount(),
		Summary: h.store.Summary(),
	}
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.cart())
}

type addCartItemRequest struct {
	ProductID string `json:"product_id"`
}

func (h *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var req addCartItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.catalog.Get(req.ProductID)
	if errors.Is(err, repository.ErrProductNotFound) {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}

	h.store.AddToCart(product)
	writeJSON(w, http.StatusOK, h.cart())
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateCartItem overwrites an entry's quantity. Zero or below removes the
// entry, matching the store's invariant.
func (h *Handler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	var req updateCartItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.store.UpdateCartQuantity(chi.URLParam(r, "productID"), req.Quantity)
	writeJSON(w, http.StatusOK, h.cart())
}

func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	h.store.RemoveFromCart(chi.URLParam(r, "productID"))
	writeJSON(w, http.StatusOK, h.cart())
}
