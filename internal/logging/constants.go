package logging

// Standardized field names for structured logging. Using the same keys
// everywhere keeps log output easy to filter and analyze.
const (
	FieldFile          = "file_path"
	FieldTransactionID = "transaction_id"
	FieldCategory      = "category_code"
	FieldMerchant      = "merchant"
	FieldOperation     = "operation"
	FieldConfidence    = "confidence"
	FieldCount         = "count"
	FieldFilter        = "filter"
	FieldKind          = "kind"
)
