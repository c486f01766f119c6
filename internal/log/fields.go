package log

// Common field names for structured logging.
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldOperation  = "operation"

	FieldDatasetPath = "dataset_path"
	FieldRows        = "rows"
	FieldMonth       = "month"
	FieldSales       = "sales"
	FieldExpenses    = "expenses"
	FieldProfit      = "profit"
	FieldRecordID    = "record_id"
	FieldSheetsRef   = "sheets_ref"
)

// Components defines standard component names.
const (
	ComponentApp     = "app"
	ComponentHTTP    = "http"
	ComponentDataset = "dataset"
	ComponentStorage = "storage"
	ComponentAMQP    = "amqp"
	ComponentWorker  = "worker"
	ComponentSheets  = "sheets"
	ComponentCache   = "cache"
	ComponentBackend = "backend"
)

// Operations defines standard operation names.
const (
	OpParse    = "parse"
	OpImport   = "import"
	OpList     = "list"
	OpTotals   = "totals"
	OpExport   = "export"
	OpRender   = "render"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
