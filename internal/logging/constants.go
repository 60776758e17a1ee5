package logging

// Standardized field names for structured logging. Using these constants
// keeps log output consistent and filterable across the pipeline stages.
const (
	FieldFile     = "file_path"
	FieldCustomer = "customer"
	FieldColumn   = "column"
	FieldReason   = "reason"
	FieldBucket   = "bucket"
	FieldCount    = "count"
	FieldAsOf     = "as_of"
	FieldRunID    = "run_id"
	FieldRows     = "rows"
	FieldRejected = "rejected"
	FieldOutput   = "output_dir"
)
