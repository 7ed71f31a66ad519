package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConvertRequest defines a single currency conversion. Base and target are
// free text; the handler normalizes them to canonical codes before the
// orchestrator runs.
type ConvertRequest struct {
	Base   string          `json:"base" binding:"required"`
	Target string          `json:"target" binding:"required"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// ConversionResult is the outcome of a single conversion. Value is the
// converted amount formatted as a currency string in the target currency.
type ConversionResult struct {
	Base      string          `json:"base"`
	Target    string          `json:"target"`
	Amount    decimal.Decimal `json:"amount"`
	Rate      decimal.Decimal `json:"rate"`
	Value     string          `json:"value"`
	Timestamp time.Time       `json:"timestamp"`
}

// BatchConversionItem is one entry of a batch-convert request. Fields are
// unvalidated at bind time; missing fields become per-item errors rather
// than rejecting the batch.
type BatchConversionItem struct {
	Base   string          `json:"base"`
	Target string          `json:"target"`
	Amount decimal.Decimal `json:"amount"`
}

// BatchConvertRequest wraps the ordered list of conversions.
type BatchConvertRequest struct {
	Conversions []BatchConversionItem `json:"conversions"`
}

// BatchConversionResult is one entry of a batch-convert response. Exactly one
// of ConvertedValue or Error is set; position matches the input list.
type BatchConversionResult struct {
	Base           string           `json:"base"`
	Target         string           `json:"target"`
	Amount         *decimal.Decimal `json:"amount,omitempty"`
	ConvertedValue string           `json:"converted_value,omitempty"`
	Timestamp      *time.Time       `json:"timestamp,omitempty"`
	Error          string           `json:"error,omitempty"`
}

// HistoricalRequest asks for day-granularity rates over an inclusive range.
// Dates are YYYY-MM-DD; the handler enforces start_date < end_date.
type HistoricalRequest struct {
	Base      string `json:"base" binding:"required"`
	Target    string `json:"target" binding:"required"`
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" binding:"required,datetime=2006-01-02"`
}

// HistoricalRatePoint is the rate for one calendar day.
type HistoricalRatePoint struct {
	Date string          `json:"date"`
	Rate decimal.Decimal `json:"rate"`
}

// CurrentRateRequest identifies the pair for a current-rate lookup. Bound
// from query parameters since the lookup is a GET.
type CurrentRateRequest struct {
	Base   string `form:"base" json:"base" binding:"required"`
	Target string `form:"target" json:"target" binding:"required"`
}

// CurrentRateResponse mirrors the provider's latest-rate shape.
type CurrentRateResponse struct {
	Date  string                     `json:"date"`
	Base  string                     `json:"base"`
	Rates map[string]decimal.Decimal `json:"rates"`
}
