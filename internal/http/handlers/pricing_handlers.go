package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rogerio-castellano/inventory-service/internal/inventory"
)

// decodeUpdates accepts only a JSON array. Items of the wrong shape decode to
// empty items and fail individually.
func decodeUpdates(raw json.RawMessage) ([]PriceUpdateItem, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, false
	}

	var items []PriceUpdateItem
	err := json.Unmarshal(raw, &items)
	var typeErr *json.UnmarshalTypeError
	if err != nil && !errors.As(err, &typeErr) {
		return nil, false
	}
	return items, true
}

// BulkPriceUpdateHandler godoc
// @Summary Update many prices at once
// @Description Each item is applied independently and in order; failures do not stop the batch.
// @Tags inventory
// @Accept json
// @Produce json
// @Param updates body BulkPriceUpdateRequest true "List of {productId, newPrice}"
// @Success 200 {object} BulkPriceUpdateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/products/bulk-price-update [put]
func (h *Handler) BulkPriceUpdateHandler(w http.ResponseWriter, r *http.Request) {
	var req BulkPriceUpdateRequest
	if err := readJSON(w, r, &req); err != nil {
		h.respondErrors(w, r, http.StatusBadRequest, MsgInvalidJSON)
		return
	}

	items, ok := decodeUpdates(req.Updates)
	if !ok {
		h.respondErrors(w, r, http.StatusBadRequest, MsgUpdatesNotArray)
		return
	}

	updates := make([]inventory.PriceUpdateInput, len(items))
	for i, item := range items {
		updates[i] = inventory.PriceUpdateInput{ProductID: item.ProductID, NewPrice: item.NewPrice}
	}

	res, err := h.svc.BulkUpdatePrices(r.Context(), updates)
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	resp := BulkPriceUpdateResponse{
		Summary: BulkSummaryResponse{
			Total:   res.Summary.Total,
			Success: res.Summary.Success,
			Failed:  res.Summary.Failed,
		},
		Results: make([]PriceUpdateResultResponse, len(res.Results)),
	}
	for i, item := range res.Results {
		out := PriceUpdateResultResponse{
			ProductID: item.ProductID,
			Success:   item.Success,
			Error:     item.Error,
		}
		if item.Success {
			oldPrice, newPrice := item.OldPrice, item.NewPrice
			out.OldPrice, out.NewPrice = &oldPrice, &newPrice
		}
		resp.Results[i] = out
	}

	h.respond(w, r, http.StatusOK, resp)
}
