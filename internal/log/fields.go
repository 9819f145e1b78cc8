package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldOperation   = "operation"
	FieldError       = "error"
	FieldCategory    = "category"
	FieldCategoryID  = "category_id"
	FieldExpenseID   = "expense_id"
	FieldBudgetID    = "budget_id"
	FieldDate        = "date"
	FieldMonth       = "month"
	FieldAmountCents = "amount_cents"
	FieldDBPath      = "db_path"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentShell   = "shell"
	ComponentTracker = "tracker"
	ComponentStorage = "storage"
)
