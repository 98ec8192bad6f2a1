package handlers_test_suite

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/rogerio-castellano/inventory-service/internal/http/handlers"
	"github.com/rogerio-castellano/inventory-service/internal/inventory"
)

func TestCreateProductHandler_Valid(t *testing.T) {
	env := newTestEnv(t, envOptions{})

	w := env.do(t, http.MethodPost, "/api/products", riceJSON)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d (%s)", w.Code, w.Body.String())
	}

	resp := decode[handlers.ProductResponse](t, w)
	if resp.Id != 1 {
		t.Errorf("expected id 1, got %d", resp.Id)
	}
	if resp.Name != "Rice" || resp.SKU != "RIC001" {
		t.Errorf("unexpected product %+v", resp)
	}
	if resp.Price != 45.5 || resp.Stock != 10 || resp.Category != "อาหาร" {
		t.Errorf("unexpected product %+v", resp)
	}
	if resp.CreatedAt.IsZero() {
		t.Error("expected createdAt to be set")
	}

	w = env.do(t, http.MethodPost, "/api/products", `{"name":"Milk","sku":"MLK001","price":20,"stock":0,"category":"เครื่องดื่ม"}`)
	if got := decode[handlers.ProductResponse](t, w); got.Id != 2 {
		t.Errorf("expected id 2, got %d", got.Id)
	}
}

func TestCreateProductHandler_WholeNumberForms(t *testing.T) {
	tests := []struct {
		name  string
		stock string
		want  int
	}{
		{"Decimal point", "10.0", 10},
		{"Exponent", "1e1", 10},
		{"Negative zero", "-0.0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, envOptions{})
			body := `{"name":"Rice","sku":"RIC001","price":20,"stock":` + tt.stock + `,"category":"อาหาร"}`

			w := env.do(t, http.MethodPost, "/api/products", body)
			if w.Code != http.StatusCreated {
				t.Fatalf("expected 201 Created, got %d (%s)", w.Code, w.Body.String())
			}
			if got := decode[handlers.ProductResponse](t, w); got.Stock != tt.want {
				t.Errorf("expected stock %d, got %d", tt.want, got.Stock)
			}
		})
	}
}

func TestCreateProductHandler_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected []string
	}{
		{
			name: "Empty body object",
			body: `{}`,
			expected: []string{
				inventory.MsgNameRequired,
				inventory.MsgSKURequired,
				inventory.MsgPriceInvalid,
				inventory.MsgStockInvalid,
				inventory.MsgCategoryInvalid,
			},
		},
		{
			name: "Wrong JSON types",
			body: `{"name":123,"sku":"AB","price":"10","stock":1.5,"category":"อาหาร"}`,
			expected: []string{
				inventory.MsgNameRequired,
				inventory.MsgSKUTooShort,
				inventory.MsgPriceInvalid,
				inventory.MsgStockInvalid,
			},
		},
		{
			name:     "Negative stock and zero price",
			body:     `{"name":"Pen","sku":"PEN01","price":0,"stock":-1,"category":"เครื่องเขียน"}`,
			expected: []string{inventory.MsgPriceInvalid, inventory.MsgStockInvalid},
		},
		{
			name:     "Unknown category",
			body:     `{"name":"Pen","sku":"PEN01","price":5,"stock":1,"category":"toys"}`,
			expected: []string{inventory.MsgCategoryInvalid},
		},
		{
			name:     "Duplicated SKU",
			body:     `{"name":"Brown rice","sku":"RIC001","price":60,"stock":1,"category":"อาหาร"}`,
			expected: []string{inventory.MsgSKUDuplicated},
		},
		{
			name:     "Malformed JSON",
			body:     `{"name":`,
			expected: []string{handlers.MsgInvalidJSON},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, envOptions{})
			env.do(t, http.MethodPost, "/api/products", riceJSON)

			w := env.do(t, http.MethodPost, "/api/products", tt.body)
			assertErrors(t, w, http.StatusBadRequest, tt.expected...)

			list := decode[[]handlers.ProductResponse](t, env.do(t, http.MethodGet, "/api/products", ""))
			if len(list) != 1 {
				t.Errorf("expected no new product, got %d products", len(list))
			}
		})
	}
}

func TestGetProductsHandler_CategoryFilter(t *testing.T) {
	env := newTestEnv(t, envOptions{})
	env.do(t, http.MethodPost, "/api/products", riceJSON)
	env.do(t, http.MethodPost, "/api/products", `{"name":"Milk","sku":"MLK001","price":20,"stock":3,"category":"เครื่องดื่ม"}`)
	env.do(t, http.MethodPost, "/api/products", `{"name":"Noodles","sku":"NDL001","price":7,"stock":30,"category":"อาหาร"}`)

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{"No filter", "", []string{"RIC001", "MLK001", "NDL001"}},
		{"Food", "?" + url.Values{"category": {"อาหาร"}}.Encode(), []string{"RIC001", "NDL001"}},
		{"Unknown category", "?category=toys", []string{}},
		{"Empty category means no filter", "?category=", []string{"RIC001", "MLK001", "NDL001"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodGet, "/api/products"+tt.query, "")
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			if strings.TrimSpace(w.Body.String()) == "null" {
				t.Fatal("expected an array, got null")
			}
			list := decode[[]handlers.ProductResponse](t, w)
			if len(list) != len(tt.expected) {
				t.Fatalf("expected %d products, got %d", len(tt.expected), len(list))
			}
			for i, sku := range tt.expected {
				if list[i].SKU != sku {
					t.Errorf("position %d: expected %s, got %s", i, sku, list[i].SKU)
				}
			}
		})
	}
}

func TestSellProductHandler_Scenario(t *testing.T) {
	env := newTestEnv(t, envOptions{})
	env.do(t, http.MethodPost, "/api/products", `{"name":"Rice","sku":"RIC001","price":20,"stock":10,"category":"อาหาร"}`)

	w := env.do(t, http.MethodPost, "/api/products/sell", `{"productId":1,"quantity":3}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	resp := decode[handlers.SellResponse](t, w)
	if resp.SoldQuantity != 3 || resp.RemainingStock != 7 || resp.Product.Stock != 7 {
		t.Errorf("unexpected sale result %+v", resp)
	}

	w = env.do(t, http.MethodPost, "/api/products/sell", `{"productId":1,"quantity":100}`)
	assertErrors(t, w, http.StatusBadRequest, "สต็อกไม่เพียงพอ (มีเพียง 7 ชิ้น)")

	list := decode[[]handlers.ProductResponse](t, env.do(t, http.MethodGet, "/api/products", ""))
	if list[0].Stock != 7 {
		t.Errorf("expected stock to stay at 7, got %d", list[0].Stock)
	}

	w = env.do(t, http.MethodPost, "/api/products/sell", `{"productId":1,"quantity":7}`)
	if got := decode[handlers.SellResponse](t, w); got.RemainingStock != 0 {
		t.Errorf("expected remaining stock 0, got %d", got.RemainingStock)
	}
}

func TestSellProductHandler_WholeNumberForms(t *testing.T) {
	env := newTestEnv(t, envOptions{})
	env.do(t, http.MethodPost, "/api/products", `{"name":"Rice","sku":"RIC001","price":20,"stock":10,"category":"อาหาร"}`)

	w := env.do(t, http.MethodPost, "/api/products/sell", `{"productId":1.0,"quantity":3.0}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if got := decode[handlers.SellResponse](t, w); got.SoldQuantity != 3 || got.RemainingStock != 7 {
		t.Errorf("unexpected sale result %+v", got)
	}

	w = env.do(t, http.MethodPost, "/api/products/sell", `{"productId":1,"quantity":2e0}`)
	if got := decode[handlers.SellResponse](t, w); got.RemainingStock != 5 {
		t.Errorf("expected remaining stock 5, got %d", got.RemainingStock)
	}
}

func TestSellProductHandler_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{"Zero quantity", `{"productId":1,"quantity":0}`, inventory.MsgQuantityInvalid},
		{"Missing quantity", `{"productId":1}`, inventory.MsgQuantityInvalid},
		{"Quantity as string", `{"productId":1,"quantity":"3"}`, inventory.MsgQuantityInvalid},
		{"Fractional quantity", `{"productId":1,"quantity":1.5}`, inventory.MsgQuantityInvalid},
		{"Fractional product id", `{"productId":1.5,"quantity":1}`, inventory.MsgProductNotFound},
		{"Unknown product", `{"productId":99,"quantity":1}`, inventory.MsgProductNotFound},
		{"Missing product", `{"quantity":1}`, inventory.MsgProductNotFound},
		{"Malformed JSON", `not json`, handlers.MsgInvalidJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, envOptions{})
			env.do(t, http.MethodPost, "/api/products", riceJSON)

			w := env.do(t, http.MethodPost, "/api/products/sell", tt.body)
			assertErrors(t, w, http.StatusBadRequest, tt.expected)
		})
	}
}

func TestSearchProductsHandler(t *testing.T) {
	env := newTestEnv(t, envOptions{})
	env.do(t, http.MethodPost, "/api/products", riceJSON)
	env.do(t, http.MethodPost, "/api/products", `{"name":"Milk","sku":"MLK001","price":20,"stock":3,"category":"เครื่องดื่ม"}`)

	tests := []struct {
		name     string
		keyword  string
		expected []string
	}{
		{"Name, case-insensitive", "rIcE", []string{"RIC001"}},
		{"SKU substring", "001", []string{"RIC001", "MLK001"}},
		{"No match", "coffee", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodGet, "/api/products/search?keyword="+url.QueryEscape(tt.keyword), "")
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			list := decode[[]handlers.ProductResponse](t, w)
			if len(list) != len(tt.expected) {
				t.Fatalf("expected %d products, got %d", len(tt.expected), len(list))
			}
			for i, sku := range tt.expected {
				if list[i].SKU != sku {
					t.Errorf("position %d: expected %s, got %s", i, sku, list[i].SKU)
				}
			}
		})
	}

	for _, path := range []string{"/api/products/search", "/api/products/search?keyword=", "/api/products/search?keyword=%20%20"} {
		w := env.do(t, http.MethodGet, path, "")
		assertErrors(t, w, http.StatusBadRequest, inventory.MsgKeywordRequired)
	}
}

func TestBulkPriceUpdateHandler(t *testing.T) {
	env := newTestEnv(t, envOptions{})
	env.do(t, http.MethodPost, "/api/products", riceJSON)
	env.do(t, http.MethodPost, "/api/products", `{"name":"Milk","sku":"MLK001","price":20,"stock":3,"category":"เครื่องดื่ม"}`)

	body := `{"updates":[
		{"productId":1,"newPrice":50},
		{"productId":42,"newPrice":10},
		{"productId":2,"newPrice":-1},
		{"productId":2},
		{"productId":1,"newPrice":55}
	]}`
	w := env.do(t, http.MethodPut, "/api/products/bulk-price-update", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	resp := decode[handlers.BulkPriceUpdateResponse](t, w)
	if resp.Summary.Total != 5 || resp.Summary.Success != 2 || resp.Summary.Failed != 3 {
		t.Errorf("unexpected summary %+v", resp.Summary)
	}
	if len(resp.Results) != 5 {
		t.Fatalf("expected 5 results, got %d", len(resp.Results))
	}

	first := resp.Results[0]
	if !first.Success || first.OldPrice == nil || *first.OldPrice != 45.5 || *first.NewPrice != 50 {
		t.Errorf("unexpected first result %+v", first)
	}
	if resp.Results[1].Error != inventory.MsgProductNotFound {
		t.Errorf("expected not found, got %q", resp.Results[1].Error)
	}
	if resp.Results[2].Error != inventory.MsgInvalidPrice || resp.Results[3].Error != inventory.MsgInvalidPrice {
		t.Errorf("expected invalid price, got %q and %q", resp.Results[2].Error, resp.Results[3].Error)
	}
	if last := resp.Results[4]; *last.OldPrice != 50 || *last.NewPrice != 55 {
		t.Errorf("expected last write 50 -> 55, got %+v", last)
	}

	list := decode[[]handlers.ProductResponse](t, env.do(t, http.MethodGet, "/api/products", ""))
	if list[0].Price != 55 || list[1].Price != 20 {
		t.Errorf("unexpected prices after update: %v, %v", list[0].Price, list[1].Price)
	}
}

func TestBulkPriceUpdateHandler_Rejected(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{"Updates is an object", `{"updates":{"productId":1}}`, handlers.MsgUpdatesNotArray},
		{"Updates is a string", `{"updates":"all"}`, handlers.MsgUpdatesNotArray},
		{"Updates missing", `{}`, handlers.MsgUpdatesNotArray},
		{"Malformed JSON", `{"updates":[`, handlers.MsgInvalidJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, envOptions{})
			w := env.do(t, http.MethodPut, "/api/products/bulk-price-update", tt.body)
			assertErrors(t, w, http.StatusBadRequest, tt.expected)
		})
	}
}

func TestBulkPriceUpdateHandler_EmptyList(t *testing.T) {
	env := newTestEnv(t, envOptions{})
	w := env.do(t, http.MethodPut, "/api/products/bulk-price-update", `{"updates":[]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	resp := decode[handlers.BulkPriceUpdateResponse](t, w)
	if resp.Summary.Total != 0 || len(resp.Results) != 0 {
		t.Errorf("unexpected response %+v", resp)
	}
}
