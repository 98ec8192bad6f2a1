package handlers_test_suite

import (
	"net/http"
	"testing"
	"time"

	"github.com/rogerio-castellano/inventory-service/internal/http/handlers"
	"github.com/rogerio-castellano/inventory-service/internal/inventory"
	"github.com/rogerio-castellano/inventory-service/internal/models"
	"github.com/rogerio-castellano/inventory-service/internal/repo"
)

func TestGetMovementsHandler(t *testing.T) {
	env := newTestEnv(t, envOptions{})
	env.do(t, http.MethodPost, "/api/products", riceJSON)
	env.do(t, http.MethodPost, "/api/products/sell", `{"productId":1,"quantity":2}`)
	env.do(t, http.MethodPost, "/api/products/sell", `{"productId":1,"quantity":50}`)
	env.do(t, http.MethodPost, "/api/products/sell", `{"productId":1,"quantity":1}`)

	w := env.do(t, http.MethodGet, "/api/products/1/movements", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	movements := decode[[]handlers.MovementResponse](t, w)
	if len(movements) != 2 {
		t.Fatalf("expected 2 movements, got %d", len(movements))
	}
	if movements[0].Delta != -2 || movements[1].Delta != -1 {
		t.Errorf("unexpected deltas %d, %d", movements[0].Delta, movements[1].Delta)
	}

	assertErrors(t, env.do(t, http.MethodGet, "/api/products/abc/movements", ""), http.StatusBadRequest, handlers.MsgInvalidProductID)
	assertErrors(t, env.do(t, http.MethodGet, "/api/products/9/movements", ""), http.StatusNotFound, inventory.MsgProductNotFound)
}

func TestGetDashboardMetricsHandler(t *testing.T) {
	env := newTestEnv(t, envOptions{})
	env.do(t, http.MethodPost, "/api/products", riceJSON)
	env.do(t, http.MethodPost, "/api/products", `{"name":"Milk","sku":"MLK001","price":20,"stock":3,"category":"เครื่องดื่ม"}`)
	env.do(t, http.MethodPost, "/api/products/sell", `{"productId":1,"quantity":4}`)

	w := env.do(t, http.MethodGet, "/api/metrics/dashboard", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	m := decode[repo.Metrics](t, w)
	if m.TotalProducts != 2 || m.TotalStock != 9 || m.TotalSold != 4 {
		t.Errorf("unexpected metrics %+v", m)
	}
	if m.LowStockCount != 1 {
		t.Errorf("expected 1 low stock product, got %d", m.LowStockCount)
	}
	if m.TopSeller.Name != "Rice" || m.TopSeller.Sold != 4 {
		t.Errorf("unexpected top seller %+v", m.TopSeller)
	}
}

func TestGetActivityHandler(t *testing.T) {
	env := newTestEnv(t, envOptions{})
	assertErrors(t, env.do(t, http.MethodGet, "/api/activity", ""), http.StatusServiceUnavailable, handlers.MsgActivityDisabled)

	stub := &stubActivity{events: []models.ActivityEvent{
		{Type: models.ActivityProductCreated, ProductID: 1, SKU: "RIC001", Stock: 10, Price: 45.5, OccurredAt: time.Now()},
	}}
	env = newTestEnv(t, envOptions{activity: stub})

	w := env.do(t, http.MethodGet, "/api/activity", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	events := decode[[]models.ActivityEvent](t, w)
	if len(events) != 1 || events[0].SKU != "RIC001" {
		t.Errorf("unexpected events %+v", events)
	}
	if stub.gotN != 50 {
		t.Errorf("expected default limit 50, got %d", stub.gotN)
	}

	env.do(t, http.MethodGet, "/api/activity?limit=10000", "")
	if stub.gotN != 500 {
		t.Errorf("expected limit capped at 500, got %d", stub.gotN)
	}

	assertErrors(t, env.do(t, http.MethodGet, "/api/activity?limit=-1", ""), http.StatusBadRequest, handlers.MsgInvalidLimit)
}
