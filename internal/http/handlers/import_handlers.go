package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/rogerio-castellano/inventory-service/internal/inventory"
)

const maxUploadBytes = 10 << 20

var csvColumns = []string{"name", "sku", "price", "stock", "category"}

// parseCSV reads a header row followed by product rows. Header names are matched
// case-insensitively and may appear in any order. Blank or unparsable cells are left nil.
func parseCSV(r io.Reader) ([]inventory.ProductInput, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV header: %w", err)
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, col := range csvColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("missing column %q", col)
		}
	}

	var rows []inventory.ProductInput
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %w", err)
		}

		cell := func(col string) string {
			i := index[col]
			if i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		rows = append(rows, inventory.ProductInput{
			Name:     parseString(cell("name")),
			SKU:      parseString(cell("sku")),
			Price:    parseFloat(cell("price")),
			Stock:    parseInt(cell("stock")),
			Category: parseString(cell("category")),
		})
	}
	return rows, nil
}

func parseString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func parseFloat(s string) *float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseInt(s string) *int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

// ImportProductsHandler godoc
// @Summary Import products via CSV
// @Description Header row name,sku,price,stock,category. Each row is validated like a single create; invalid rows are skipped.
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} ImportProductsResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/products/import [post]
func (h *Handler) ImportProductsHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, _, err := r.FormFile("file")
	if err != nil {
		h.respondErrors(w, r, http.StatusBadRequest, MsgMissingFile)
		return
	}
	defer file.Close()

	rows, err := parseCSV(file)
	if err != nil {
		h.respondErrors(w, r, http.StatusBadRequest, MsgInvalidCSV)
		return
	}

	res, err := h.svc.Import(r.Context(), rows)
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, ImportProductsResult{
		ImportedProductsCount: res.Imported,
		Errors:                res.Errors,
	})
}
