package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cxgw/currency_gateway_app/internal/apperrors"
	"github.com/cxgw/currency_gateway_app/internal/core/ports/providers"
	portssvc "github.com/cxgw/currency_gateway_app/internal/core/ports/services"
	"github.com/cxgw/currency_gateway_app/internal/dto"
	"github.com/cxgw/currency_gateway_app/internal/utils"
	"github.com/shopspring/decimal"
)

// ConversionService composes rate-provider calls for single, batch and
// historical conversions.
type ConversionService struct {
	rates providers.RateSource
}

func NewConversionService(rates providers.RateSource) *ConversionService {
	return &ConversionService{rates: rates}
}

// Ensure ConversionService implements the facade
var _ portssvc.ConversionSvcFacade = (*ConversionService)(nil)

// Convert quotes a single conversion. The provider's Unix timestamp becomes
// a calendar timestamp and the converted amount is formatted as a currency
// string in the target currency.
func (s *ConversionService) Convert(ctx context.Context, base, target string, amount decimal.Decimal) (*dto.ConversionResult, error) {
	quote, err := s.rates.Convert(ctx, base, target, amount)
	if err != nil {
		return nil, fmt.Errorf("conversion failed: %w", err)
	}

	return &dto.ConversionResult{
		Base:      base,
		Target:    target,
		Amount:    amount,
		Rate:      quote.Rate,
		Value:     utils.FormatCurrency(quote.Value, target),
		Timestamp: time.Unix(quote.Timestamp, 0).UTC(),
	}, nil
}

// BatchConvert processes the items concurrently and joins on completion of
// all of them. Result position is tied to input position, not completion
// order. A missing-field item or an upstream failure becomes an inline
// per-item error value so one bad entry never aborts the batch.
func (s *ConversionService) BatchConvert(ctx context.Context, items []dto.BatchConversionItem) []dto.BatchConversionResult {
	results := make([]dto.BatchConversionResult, len(items))

	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func(i int, item dto.BatchConversionItem) {
			defer wg.Done()
			results[i] = s.convertItem(ctx, item)
		}(i, item)
	}
	wg.Wait()

	return results
}

func (s *ConversionService) convertItem(ctx context.Context, item dto.BatchConversionItem) dto.BatchConversionResult {
	if item.Base == "" || item.Target == "" || !item.Amount.IsPositive() {
		return dto.BatchConversionResult{
			Base:   item.Base,
			Target: item.Target,
			Error:  "missing required fields",
		}
	}

	res, err := s.Convert(ctx, item.Base, item.Target, item.Amount)
	if err != nil {
		msg := apperrors.MsgConvertFetchFailed
		if !errors.Is(err, apperrors.ErrRateFetch) {
			msg = "conversion failed"
		}
		return dto.BatchConversionResult{
			Base:   item.Base,
			Target: item.Target,
			Error:  msg,
		}
	}

	amount := res.Amount
	ts := res.Timestamp
	return dto.BatchConversionResult{
		Base:           res.Base,
		Target:         res.Target,
		Amount:         &amount,
		ConvertedValue: res.Value,
		Timestamp:      &ts,
	}
}

// Historical iterates calendar days from start to end inclusive, issuing one
// provider call per day and accumulating an ascending series. The loop is
// deliberately sequential to bound burst load on the upstream API.
func (s *ConversionService) Historical(ctx context.Context, base, target string, start, end time.Time) ([]dto.HistoricalRatePoint, error) {
	var points []dto.HistoricalRatePoint
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		quote, err := s.rates.DailyRate(ctx, base, target, day)
		if err != nil {
			return nil, fmt.Errorf("historical series failed: %w", err)
		}
		points = append(points, dto.HistoricalRatePoint{
			Date: quote.Date,
			Rate: quote.Rate,
		})
	}
	return points, nil
}

// CurrentRate is a pass-through to the provider's latest-rate lookup.
func (s *ConversionService) CurrentRate(ctx context.Context, base, target string) (*dto.CurrentRateResponse, error) {
	quote, err := s.rates.Latest(ctx, base, target)
	if err != nil {
		return nil, fmt.Errorf("current rate lookup failed: %w", err)
	}

	return &dto.CurrentRateResponse{
		Date:  quote.Date,
		Base:  quote.Base,
		Rates: quote.Rates,
	}, nil
}
