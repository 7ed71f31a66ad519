package services

import (
	"context"
	"time"

	"github.com/cxgw/currency_gateway_app/internal/dto"
	"github.com/shopspring/decimal"
)

// ConversionSvcFacade composes rate-provider calls for single, batch and
// historical conversions. Inputs are canonical currency codes; normalization
// and shape validation happen upstream.
type ConversionSvcFacade interface {
	// Convert quotes a single conversion, formatting the converted value as
	// a currency string in the target currency.
	Convert(ctx context.Context, base, target string, amount decimal.Decimal) (*dto.ConversionResult, error)

	// BatchConvert processes the items concurrently and returns one result
	// per item, in input order. Item failures are inline error values, never
	// an error return.
	BatchConvert(ctx context.Context, items []dto.BatchConversionItem) []dto.BatchConversionResult

	// Historical fetches the day-by-day rate series for the inclusive
	// [start, end] range, in ascending date order.
	Historical(ctx context.Context, base, target string, start, end time.Time) ([]dto.HistoricalRatePoint, error)

	// CurrentRate retrieves the provider's latest rate(s) for the pair.
	CurrentRate(ctx context.Context, base, target string) (*dto.CurrentRateResponse, error)
}
