package handler

import (
	"errors"
	"fmt"
	"net/http"

	"farmdirect/marketplace/internal/model"
	"farmdirect/marketplace/internal/service"
	"farmdirect/marketplace/internal/store"
)

type checkoutRequest struct {
	FullName string `json:"full_name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	ZipCode  string `json:"zip_code"`
	Phone    string `json:"phone"`
}

func (req checkoutRequest) validate() map[string]string {
	fields := map[string]string{}
	if req.FullName == "" {
		fields["full_name"] = "Full name is required"
	}
	if req.Address == "" {
		fields["address"] = "Address is required"
	}
	if req.City == "" {
		fields["city"] = "City is required"
	}
	if req.ZipCode == "" {
		fields["zip_code"] = "ZIP code is required"
	}
	if req.Phone == "" {
		fields["phone"] = "Phone number is required"
	}
	return fields
}

type checkoutResponse struct {
	Orders  []model.Order `json:"orders"`
	Summary store.Summary `json:"summary"`
	State   stateResponse `json:"state"`
}

// Checkout places the cart as pending orders. The summary is captured
// before the cart is cleared so the confirmation can still show the priced
// breakdown.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if fields := req.validate(); len(fields) > 0 {
		writeFieldErrors(w, fields)
		return
	}

	summary := h.store.Summary()
	address := fmt.Sprintf("%s, %s %s", req.Address, req.City, req.ZipCode)

	orders, err := h.checkout.PlaceOrder(address)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotSignedIn):
			writeError(w, http.StatusUnauthorized, err.Error())
		case errors.Is(err, service.ErrEmptyCart):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, checkoutResponse{
		Orders:  orders,
		Summary: summary,
		State:   h.state(),
	})
}

type orderListResponse struct {
	Orders []model.Order `json:"orders"`
}

// ListOrders returns the signed-in user's orders, optionally narrowed by a
// ?status= tab.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status != "" && status != "all" && !model.ValidStatus(model.OrderStatus(status)) {
		writeError(w, http.StatusBadRequest, "unknown order status")
		return
	}

	orders, err := h.checkout.ListOrders(status)
	if err != nil {
		if errors.Is(err, service.ErrNotSignedIn) {
			writeError(w, http.StatusUnauthorized, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, orderListResponse{Orders: orders})
}
