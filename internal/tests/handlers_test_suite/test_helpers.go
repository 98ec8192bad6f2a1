package handlers_test_suite

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rogerio-castellano/inventory-service/internal/http/handlers"
	rl "github.com/rogerio-castellano/inventory-service/internal/http/rate_limiter"
	"github.com/rogerio-castellano/inventory-service/internal/http/router"
	"github.com/rogerio-castellano/inventory-service/internal/inventory"
	"github.com/rogerio-castellano/inventory-service/internal/models"
	"github.com/rogerio-castellano/inventory-service/internal/repo"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const riceJSON = `{"name":"Rice","sku":"RIC001","price":45.5,"stock":10,"category":"อาหาร"}`

// faultyProductRepository fails or panics on demand so the 500 path can be exercised.
type faultyProductRepository struct {
	*repo.InMemoryProductRepository
}

func (r faultyProductRepository) Filter(pf repo.ProductFilter) ([]models.Product, error) {
	if pf.Keyword == "boom" {
		panic("search exploded")
	}
	if pf.Category != nil && *pf.Category == "broken" {
		return nil, errors.New("storage unavailable")
	}
	return r.InMemoryProductRepository.Filter(pf)
}

type stubActivity struct {
	events []models.ActivityEvent
	gotN   int64
}

func (s *stubActivity) Recent(_ context.Context, n int64) ([]models.ActivityEvent, error) {
	s.gotN = n
	return s.events, nil
}

type testEnv struct {
	router http.Handler
	logs   *observer.ObservedLogs
}

type envOptions struct {
	activity   handlers.ActivityReader
	limiter    *rl.Limiter
	trustProxy bool
}

func newTestEnv(t *testing.T, opts envOptions) testEnv {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	products := faultyProductRepository{repo.NewInMemoryProductRepository()}
	svc := inventory.NewService(products, repo.NewInMemoryMovementRepository(), inventory.WithLogger(logger))
	h := handlers.NewHandler(svc, opts.activity, logger)

	return testEnv{router: router.NewRouter(h, logger, router.Options{
		Limiter:           opts.limiter,
		TrustProxyHeaders: opts.trustProxy,
	}), logs: logs}
}

func (e testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(w.Body).Decode(&v); err != nil {
		t.Fatalf("error decoding response %q: %v", w.Body.String(), err)
	}
	return v
}

func assertErrors(t *testing.T, w *httptest.ResponseRecorder, wantCode int, want ...string) {
	t.Helper()
	if w.Code != wantCode {
		t.Fatalf("expected %d, got %d (%s)", wantCode, w.Code, w.Body.String())
	}
	resp := decode[handlers.ErrorResponse](t, w)
	if len(resp.Errors) != len(want) {
		t.Fatalf("expected errors %q, got %q", want, resp.Errors)
	}
	for i := range want {
		if resp.Errors[i] != want[i] {
			t.Errorf("error %d: expected %q, got %q", i, want[i], resp.Errors[i])
		}
	}
}

func newCSVUpload(t *testing.T, field, content string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mp := multipart.NewWriter(&buf)
	part, err := mp.CreateFormFile(field, "products.csv")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := mp.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/products/import", &buf)
	req.Header.Set("Content-Type", mp.FormDataContentType())
	return req
}
