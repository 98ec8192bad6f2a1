package models

// Categories is the fixed set of product categories, in display order.
var Categories = []string{
	"อาหาร",
	"เครื่องดื่ม",
	"ของใช้",
	"เครื่องเขียน",
}

// IsValidCategory reports whether c is one of Categories. Matching is exact.
func IsValidCategory(c string) bool {
	for _, category := range Categories {
		if category == c {
			return true
		}
	}
	return false
}
