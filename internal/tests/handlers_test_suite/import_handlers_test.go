package handlers_test_suite

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rogerio-castellano/inventory-service/internal/http/handlers"
	"github.com/rogerio-castellano/inventory-service/internal/inventory"
)

func TestImportProductsHandler(t *testing.T) {
	env := newTestEnv(t, envOptions{})
	env.do(t, http.MethodPost, "/api/products", riceJSON)

	csv := "SKU,Name,Price,Stock,Category\n" +
		"PEN001,Pen,12.5,100,เครื่องเขียน\n" +
		"RIC001,Rice again,40,1,อาหาร\n" +
		"SOAP01,Soap,abc,5,ของใช้\n" +
		"WTR001,Water,8,24,เครื่องดื่ม\n"

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, newCSVUpload(t, "file", csv))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	resp := decode[handlers.ImportProductsResult](t, w)
	if resp.ImportedProductsCount != 2 {
		t.Errorf("expected 2 imported, got %d", resp.ImportedProductsCount)
	}
	expected := []string{
		"row 3: " + inventory.MsgSKUDuplicated,
		"row 4: " + inventory.MsgPriceInvalid,
	}
	if len(resp.Errors) != len(expected) {
		t.Fatalf("expected errors %q, got %q", expected, resp.Errors)
	}
	for i := range expected {
		if resp.Errors[i] != expected[i] {
			t.Errorf("expected %q, got %q", expected[i], resp.Errors[i])
		}
	}

	list := decode[[]handlers.ProductResponse](t, env.do(t, http.MethodGet, "/api/products", ""))
	if len(list) != 3 || list[1].SKU != "PEN001" || list[2].SKU != "WTR001" {
		t.Errorf("unexpected products after import: %+v", list)
	}
}

func TestImportProductsHandler_BadUpload(t *testing.T) {
	env := newTestEnv(t, envOptions{})

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, newCSVUpload(t, "upload", "name\n"))
	assertErrors(t, w, http.StatusBadRequest, handlers.MsgMissingFile)

	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, newCSVUpload(t, "file", "name,sku\nPen,PEN001\n"))
	assertErrors(t, w, http.StatusBadRequest, handlers.MsgInvalidCSV)
}
