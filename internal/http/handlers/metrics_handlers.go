package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/inventory-service/internal/inventory"
	"github.com/rogerio-castellano/inventory-service/internal/repo"
)

const (
	defaultActivityLimit = 50
	maxActivityLimit     = 500
)

// GetDashboardMetricsHandler godoc
// @Summary Dashboard metrics
// @Tags metrics
// @Produce json
// @Success 200 {object} repo.Metrics
// @Failure 500 {object} ErrorResponse
// @Router /api/metrics/dashboard [get]
func (h *Handler) GetDashboardMetricsHandler(w http.ResponseWriter, r *http.Request) {
	m, err := h.svc.Dashboard(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	h.respond(w, r, http.StatusOK, m)
}

// GetMovementsHandler godoc
// @Summary Stock movements of a product
// @Tags inventory
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {array} MovementResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/products/{id}/movements [get]
func (h *Handler) GetMovementsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.respondErrors(w, r, http.StatusBadRequest, MsgInvalidProductID)
		return
	}

	movements, err := h.svc.Movements(r.Context(), id)
	if errors.Is(err, repo.ErrProductNotFound) {
		h.respondErrors(w, r, http.StatusNotFound, inventory.MsgProductNotFound)
		return
	}
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	response := make([]MovementResponse, len(movements))
	for i, m := range movements {
		response[i] = MovementResponse{
			ID:        m.ID,
			ProductID: m.ProductID,
			Delta:     m.Delta,
			CreatedAt: m.CreatedAt,
		}
	}
	h.respond(w, r, http.StatusOK, response)
}

// GetActivityHandler godoc
// @Summary Recent inventory activity
// @Description Latest events published to the activity log, oldest first.
// @Tags metrics
// @Produce json
// @Param limit query int false "Number of events (default 50, max 500)"
// @Success 200 {array} models.ActivityEvent
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/activity [get]
func (h *Handler) GetActivityHandler(w http.ResponseWriter, r *http.Request) {
	if h.activity == nil {
		h.respondErrors(w, r, http.StatusServiceUnavailable, MsgActivityDisabled)
		return
	}

	limit := defaultActivityLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			h.respondErrors(w, r, http.StatusBadRequest, MsgInvalidLimit)
			return
		}
		limit = min(n, maxActivityLimit)
	}

	events, err := h.activity.Recent(r.Context(), int64(limit))
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	h.respond(w, r, http.StatusOK, events)
}
