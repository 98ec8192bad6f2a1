package inventory

import "strings"

// Messages returned to clients. They are part of the public API.
const (
	MsgNameRequired      = "กรุณาระบุชื่อสินค้า"
	MsgSKURequired       = "กรุณาระบุรหัสสินค้า (SKU)"
	MsgSKUTooShort       = "รหัสสินค้า (SKU) ต้องมีอย่างน้อย 3 ตัวอักษร"
	MsgSKUDuplicated     = "รหัสสินค้า (SKU) นี้มีอยู่แล้ว"
	MsgPriceInvalid      = "ราคาต้องเป็นตัวเลขที่มากกว่า 0"
	MsgStockInvalid      = "จำนวนสต็อกต้องเป็นตัวเลขที่ไม่ติดลบ"
	MsgCategoryInvalid   = "หมวดหมู่ไม่ถูกต้อง (ต้องเป็น: อาหาร, เครื่องดื่ม, ของใช้, เครื่องเขียน)"
	MsgQuantityInvalid   = "จำนวนที่ขายต้องเป็นตัวเลขที่มากกว่า 0"
	MsgProductNotFound   = "ไม่พบสินค้า"
	MsgInsufficientStock = "สต็อกไม่เพียงพอ (มีเพียง %d ชิ้น)"
	MsgKeywordRequired   = "กรุณาระบุคำค้นหา"
	MsgInvalidPrice      = "ราคาไม่ถูกต้อง"
)

// ValidationErrors is the ordered list of rule violations for one request.
// It is always reported to the client in full.
type ValidationErrors []string

func (v ValidationErrors) Error() string {
	return strings.Join(v, "; ")
}
