package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/inventory-service/internal/inventory"
)

// SellProductHandler godoc
// @Summary Sell a product
// @Description Decrements stock. Fails without changes when stock is insufficient.
// @Tags inventory
// @Accept json
// @Produce json
// @Param sale body SellRequest true "Product and quantity"
// @Success 200 {object} SellResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/products/sell [post]
func (h *Handler) SellProductHandler(w http.ResponseWriter, r *http.Request) {
	var req SellRequest
	if err := readJSON(w, r, &req); err != nil {
		h.respondErrors(w, r, http.StatusBadRequest, MsgInvalidJSON)
		return
	}

	res, err := h.svc.Sell(r.Context(), inventory.SaleInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, SellResponse{
		Product:        toProductResponse(res.Product),
		SoldQuantity:   res.SoldQuantity,
		RemainingStock: res.RemainingStock,
	})
}
