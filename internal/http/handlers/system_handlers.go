package handlers

import "net/http"

// IndexResponse describes the API surface.
type IndexResponse struct {
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
}

// IndexHandler godoc
// @Summary API overview
// @Tags system
// @Produce json
// @Success 200 {object} IndexResponse
// @Router / [get]
func (h *Handler) IndexHandler(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, http.StatusOK, IndexResponse{
		Message: "Inventory Management API",
		Endpoints: map[string]string{
			"POST /api/products":                  "เพิ่มสินค้าใหม่",
			"GET /api/products":                   "ดูสินค้าทั้งหมด (กรองด้วย ?category=)",
			"POST /api/products/sell":             "ขายสินค้า",
			"GET /api/products/search":            "ค้นหาสินค้า (?keyword=)",
			"PUT /api/products/bulk-price-update": "ปรับราคาหลายรายการ",
			"POST /api/products/import":           "นำเข้าสินค้าจากไฟล์ CSV",
			"GET /api/products/{id}/movements":    "ประวัติการเคลื่อนไหวสต็อก",
			"GET /api/metrics/dashboard":          "สรุปภาพรวมสต็อก",
			"GET /api/activity":                   "กิจกรรมล่าสุด",
		},
	})
}

// HealthHandler godoc
// @Summary Liveness probe
// @Tags system
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, http.StatusOK, HealthResponse{Status: "ok"})
}

func (h *Handler) NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	h.respondErrors(w, r, http.StatusNotFound, MsgRouteNotFound)
}

func (h *Handler) MethodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	h.respondErrors(w, r, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
}
