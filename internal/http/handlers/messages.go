package handlers

// Transport-level messages. Business rule messages live in package inventory.
const (
	MsgInvalidJSON      = "รูปแบบข้อมูล JSON ไม่ถูกต้อง"
	MsgUpdatesNotArray  = "updates ต้องเป็นอาร์เรย์"
	MsgInvalidProductID = "รหัสสินค้าไม่ถูกต้อง"
	MsgMissingFile      = "กรุณาแนบไฟล์ CSV"
	MsgInvalidCSV       = "ไฟล์ CSV ไม่ถูกต้อง"
	MsgInvalidLimit     = "limit ต้องเป็นจำนวนเต็มที่มากกว่า 0"
	MsgActivityDisabled = "activity log is disabled"
	MsgRouteNotFound    = "not found"
	MsgMethodNotAllowed = "method not allowed"
	MsgInternalError    = "internal error"
)
