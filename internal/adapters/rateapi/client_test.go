package rateapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cxgw/currency_gateway_app/internal/adapters/rateapi"
	"github.com/cxgw/currency_gateway_app/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decFromString(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestClient_Convert(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/convert", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "test-key", q.Get("api_key"))
		assert.Equal(t, "USD", q.Get("from"))
		assert.Equal(t, "EUR", q.Get("to"))
		assert.Equal(t, "100", q.Get("amount"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"response":{"timestamp":1709290800,"date":"2024-03-01","from":"USD","to":"EUR","amount":100,"value":92.5}}`))
	}))
	defer server.Close()

	client := rateapi.NewClient(server.URL, "test-key", time.Second)

	quote, err := client.Convert(context.Background(), "USD", "EUR", decFromString(t, "100"))

	require.NoError(t, err)
	assert.Equal(t, "USD", quote.Base)
	assert.Equal(t, "EUR", quote.Target)
	assert.Equal(t, "92.5", quote.Value.String())
	assert.Equal(t, "0.925", quote.Rate.String())
	assert.Equal(t, int64(1709290800), quote.Timestamp)
}

func TestClient_Latest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/latest", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "USD", q.Get("base"))
		assert.Equal(t, "EUR", q.Get("symbols"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"date":"2024-03-01","base":"USD","rates":{"EUR":0.925}}`))
	}))
	defer server.Close()

	client := rateapi.NewClient(server.URL, "test-key", time.Second)

	quote, err := client.Latest(context.Background(), "USD", "EUR")

	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", quote.Date)
	assert.Equal(t, "USD", quote.Base)
	require.Contains(t, quote.Rates, "EUR")
	assert.Equal(t, "0.925", quote.Rates["EUR"].String())
}

func TestClient_DailyRate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/historical", r.URL.Path)
		assert.Equal(t, "2024-03-01", r.URL.Query().Get("date"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"date":"2024-03-01","rates":{"EUR":0.93}}`))
	}))
	defer server.Close()

	client := rateapi.NewClient(server.URL, "test-key", time.Second)
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	quote, err := client.DailyRate(context.Background(), "USD", "EUR", date)

	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", quote.Date)
	assert.Equal(t, "0.93", quote.Rate.String())
}

func TestClient_DailyRate_MissingTargetRate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"date":"2024-03-01","rates":{}}`))
	}))
	defer server.Close()

	client := rateapi.NewClient(server.URL, "test-key", time.Second)

	_, err := client.DailyRate(context.Background(), "USD", "EUR", time.Now())

	assert.ErrorIs(t, err, apperrors.ErrRateFetch)
}

func TestClient_UpstreamFailureCollapsesToRateFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"meta":{"error_detail":"invalid api key"}}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	client := rateapi.NewClient(server.URL, "bad-key", time.Second)

	_, err := client.Convert(context.Background(), "USD", "EUR", decFromString(t, "1"))

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrRateFetch)
	// Upstream response text must not leak into the error
	assert.NotContains(t, err.Error(), "invalid api key")
}

func TestClient_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := rateapi.NewClient(server.URL, "test-key", time.Second)

	_, err := client.Latest(context.Background(), "USD", "EUR")

	assert.ErrorIs(t, err, apperrors.ErrRateFetch)
}
