package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/inventory-service/internal/inventory"
)

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Adds a product to the inventory. Every failed rule is reported.
// @Tags products
// @Accept json
// @Produce json
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/products [post]
func (h *Handler) CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		h.respondErrors(w, r, http.StatusBadRequest, MsgInvalidJSON)
		return
	}

	created, err := h.svc.Create(r.Context(), inventory.ProductInput{
		Name:     req.Name,
		SKU:      req.SKU,
		Price:    req.Price,
		Stock:    req.Stock,
		Category: req.Category,
	})
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	h.respond(w, r, http.StatusCreated, toProductResponse(created))
}

// GetProductsHandler godoc
// @Summary List products
// @Description Lists every product in insertion order, optionally only one category (exact match). An empty category means no filter.
// @Tags products
// @Produce json
// @Param category query string false "Category filter"
// @Success 200 {array} ProductResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/products [get]
func (h *Handler) GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	var category *string
	if c := r.URL.Query().Get("category"); c != "" {
		category = &c
	}

	products, err := h.svc.List(r.Context(), category)
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, toProductResponses(products))
}

// SearchProductsHandler godoc
// @Summary Search products
// @Description Case-insensitive substring match on name or SKU.
// @Tags products
// @Produce json
// @Param keyword query string true "Search keyword"
// @Success 200 {array} ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/products/search [get]
func (h *Handler) SearchProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.Search(r.Context(), r.URL.Query().Get("keyword"))
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, toProductResponses(products))
}
