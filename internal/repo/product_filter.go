package repo

import (
	"strings"

	"github.com/rogerio-castellano/inventory-service/internal/models"
)

// ProductFilter narrows a product listing. Zero value matches everything.
type ProductFilter struct {
	// Category is compared with exact, case-sensitive equality.
	Category *string
	// Keyword is a case-insensitive substring of the name or the SKU.
	Keyword string
}

func matchesFilter(p models.Product, pf ProductFilter) bool {
	if pf.Category != nil && p.Category != *pf.Category {
		return false
	}
	if pf.Keyword != "" {
		kw := strings.ToLower(pf.Keyword)
		if !strings.Contains(strings.ToLower(p.Name), kw) && !strings.Contains(strings.ToLower(p.SKU), kw) {
			return false
		}
	}
	return true
}
