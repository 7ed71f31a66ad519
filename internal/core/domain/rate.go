package domain

import "github.com/shopspring/decimal"

// ConvertQuote is a point-in-time conversion quote from the rate provider.
// Timestamp is the provider's quote time as a Unix timestamp.
type ConvertQuote struct {
	Base      string
	Target    string
	Amount    decimal.Decimal
	Rate      decimal.Decimal
	Value     decimal.Decimal
	Timestamp int64
}

// LatestQuote holds the provider's current rates for a base currency.
type LatestQuote struct {
	Date  string
	Base  string
	Rates map[string]decimal.Decimal
}

// DailyQuote is the rate for one currency pair on one calendar day.
type DailyQuote struct {
	Date string
	Rate decimal.Decimal
}
