package logging

// Standardized field names for structured logging. Using these constants
// keeps log output consistent across pipeline stages.
const (
	FieldFile          = "file_path"
	FieldStage         = "stage"
	FieldTransactionID = "transaction_id"
	FieldCategory      = "category"
	FieldRule          = "rule"
	FieldKeyword       = "keyword"
	FieldBaseName      = "base_name"
	FieldAlias         = "alias"
	FieldThreshold     = "threshold"
	FieldCount         = "count"
	FieldInputFile     = "input_file"
	FieldOutputFile    = "output_file"
)
