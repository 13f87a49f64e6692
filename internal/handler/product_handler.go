package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"farmdirect/marketplace/internal/model"
	"farmdirect/marketplace/internal/repository"
	"farmdirect/marketplace/internal/service"
)

type productListResponse struct {
	Products []model.Product `json:"products"`
	Total    int             `json:"total"`
}

// ListProducts serves the market feed: free-text search, category and price
// bracket filters, and a sort key, all from query parameters.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := service.CatalogQuery{
		Search:     r.URL.Query().Get("q"),
		Category:   r.URL.Query().Get("category"),
		PriceRange: r.URL.Query().Get("price"),
		SortBy:     r.URL.Query().Get("sort"),
	}

	writeJSON(w, http.StatusOK, productListResponse{
		Products: h.catalog.Search(q),
		Total:    h.catalog.Count(),
	})
}

type productRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Unit        string   `json:"unit"`
	Category    string   `json:"category"`
	Images      []string `json:"images"`
	Quantity    int      `json:"quantity"`
	HarvestDate string   `json:"harvest_date"`
	Organic     bool     `json:"organic"`
}

func (req productRequest) validate() map[string]string {
	fields := map[string]string{}
	if req.Name == "" {
		fields["name"] = "Name is required"
	}
	if req.Price < 0 {
		fields["price"] = "Price cannot be negative"
	}
	if req.Quantity < 0 {
		fields["quantity"] = "Quantity cannot be negative"
	}
	return fields
}

func (req productRequest) input() service.ProductInput {
	return service.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Unit:        req.Unit,
		Category:    req.Category,
		Images:      req.Images,
		Quantity:    req.Quantity,
		HarvestDate: req.HarvestDate,
		Organic:     req.Organic,
	}
}

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	user, ok := h.store.CurrentUser()
	if !ok {
		writeError(w, http.StatusUnauthorized, "not signed in")
		return
	}

	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if fields := req.validate(); len(fields) > 0 {
		writeFieldErrors(w, fields)
		return
	}

	product, err := h.products.Create(user, req.input())
	if err != nil {
		h.productError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, product)
}

func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	user, ok := h.store.CurrentUser()
	if !ok {
		writeError(w, http.StatusUnauthorized, "not signed in")
		return
	}

	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if fields := req.validate(); len(fields) > 0 {
		writeFieldErrors(w, fields)
		return
	}

	product, err := h.products.Update(user, chi.URLParam(r, "id"), req.input())
	if err != nil {
		h.productError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	user, ok := h.store.CurrentUser()
	if !ok {
		writeError(w, http.StatusUnauthorized, "not signed in")
		return
	}

	if err := h.products.Delete(user, chi.URLParam(r, "id")); err != nil {
		h.productError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) productError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotFarmer), errors.Is(err, service.ErrNotOwner):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, repository.ErrProductNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
