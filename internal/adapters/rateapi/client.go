package rateapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/cxgw/currency_gateway_app/internal/apperrors"
	"github.com/cxgw/currency_gateway_app/internal/core/domain"
	"github.com/cxgw/currency_gateway_app/internal/core/ports/providers"
	"github.com/shopspring/decimal"
)

// Client is a thin wrapper around the CurrencyBeacon HTTP API. Each call is
// a single request; no retry, no caching. Timeouts are enforced by the
// injected http.Client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a rate API client against baseURL using apiKey.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Ensure Client implements providers.RateSource
var _ providers.RateSource = (*Client)(nil)

type convertResponse struct {
	Response struct {
		Timestamp int64           `json:"timestamp"`
		Date      string          `json:"date"`
		From      string          `json:"from"`
		To        string          `json:"to"`
		Amount    decimal.Decimal `json:"amount"`
		Value     decimal.Decimal `json:"value"`
	} `json:"response"`
}

type latestResponse struct {
	Date  string                     `json:"date"`
	Base  string                     `json:"base"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

type historicalResponse struct {
	Date  string                     `json:"date"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// Convert quotes a conversion of amount from base into target.
func (c *Client) Convert(ctx context.Context, base, target string, amount decimal.Decimal) (*domain.ConvertQuote, error) {
	params := url.Values{}
	params.Set("from", base)
	params.Set("to", target)
	params.Set("amount", amount.String())

	var payload convertResponse
	if err := c.get(ctx, "/convert", params, &payload); err != nil {
		return nil, fmt.Errorf("convert %s->%s: %w", base, target, err)
	}

	quote := &domain.ConvertQuote{
		Base:      base,
		Target:    target,
		Amount:    payload.Response.Amount,
		Value:     payload.Response.Value,
		Timestamp: payload.Response.Timestamp,
	}
	if payload.Response.Amount.IsPositive() {
		quote.Rate = payload.Response.Value.Div(payload.Response.Amount)
	}
	return quote, nil
}

// Latest retrieves the current rate for a base/target pair.
func (c *Client) Latest(ctx context.Context, base, target string) (*domain.LatestQuote, error) {
	params := url.Values{}
	params.Set("base", base)
	params.Set("symbols", target)

	var payload latestResponse
	if err := c.get(ctx, "/latest", params, &payload); err != nil {
		return nil, fmt.Errorf("latest %s->%s: %w", base, target, err)
	}

	return &domain.LatestQuote{
		Date:  payload.Date,
		Base:  payload.Base,
		Rates: payload.Rates,
	}, nil
}

// DailyRate retrieves the rate for a pair on one calendar day.
func (c *Client) DailyRate(ctx context.Context, base, target string, date time.Time) (*domain.DailyQuote, error) {
	day := date.Format("2006-01-02")

	params := url.Values{}
	params.Set("base", base)
	params.Set("symbols", target)
	params.Set("date", day)

	var payload historicalResponse
	if err := c.get(ctx, "/historical", params, &payload); err != nil {
		return nil, fmt.Errorf("historical %s->%s on %s: %w", base, target, day, err)
	}

	rate, ok := payload.Rates[target]
	if !ok {
		return nil, fmt.Errorf("historical %s->%s on %s: rate missing from response: %w", base, target, day, apperrors.ErrRateFetch)
	}

	return &domain.DailyQuote{Date: day, Rate: rate}, nil
}

// get performs one GET request against the provider and decodes the JSON
// body into out. Transport failures, non-2xx statuses and malformed bodies
// all collapse into apperrors.ErrRateFetch.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("api_key", c.apiKey)
	reqURL := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", apperrors.ErrRateFetch)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("transport: %w", apperrors.ErrRateFetch)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("status %d: %w", resp.StatusCode, apperrors.ErrRateFetch)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", apperrors.ErrRateFetch)
	}

	return nil
}
