package constants

const (
	// Storage keys
	TransactionsKey     = "spending_tracker_transactions"
	CustomCategoriesKey = "spending_tracker_custom_categories"

	// Date Layouts
	DateFormat      = "2006-01-02"
	MonthFormat     = "2006-01"

	TimestampFormat = "2006-01-02T15:04:05.000Z07:00"
)

const DateLayoutHint = "YYYY-MM-DD"
