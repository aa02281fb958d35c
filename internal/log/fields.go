package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldOperation  = "operation"

	FieldSaleID          = "sale_id"
	FieldClient          = "client"
	FieldQuantity        = "quantity"
	FieldPaid            = "paid"
	FieldUnpaid          = "unpaid"
	FieldTransactionType = "transaction_type"
	FieldLocation        = "location"
	FieldSaleDate        = "sale_date"

	FieldReportFile = "report_file"
	FieldRangeFrom  = "range_from"
	FieldRangeTo    = "range_to"
	FieldSink       = "sink"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentHTTP    = "http"
	ComponentStorage = "storage"
	ComponentReport  = "report"
	ComponentSink    = "sink"
	ComponentWorker  = "worker"
)

// Operations defines standard operation names
const (
	OpCreate   = "create"
	OpRead     = "read"
	OpRender   = "render"
	OpDeliver  = "deliver"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
