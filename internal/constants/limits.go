package constants

const (
	AmountPlaces = 2
)

const (
	DefaultCurrency = "USD"
	DefaultJournal  = 20
)
