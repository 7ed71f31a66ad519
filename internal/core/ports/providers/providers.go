package providers

import (
	"context"
	"time"

	"github.com/cxgw/currency_gateway_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateSource is the outbound port to the external exchange-rate provider.
// Each method issues a single network request; no retry, no caching. Failures
// wrap apperrors.ErrRateFetch and never carry upstream response text.
type RateSource interface {
	// Convert quotes a conversion of amount from base into target.
	Convert(ctx context.Context, base, target string, amount decimal.Decimal) (*domain.ConvertQuote, error)

	// Latest retrieves the current rate(s) for a base/target pair.
	Latest(ctx context.Context, base, target string) (*domain.LatestQuote, error)

	// DailyRate retrieves the rate for a pair on one calendar day.
	DailyRate(ctx context.Context, base, target string, date time.Time) (*domain.DailyQuote, error)
}

// Mailer is the outbound port for transactional email.
type Mailer interface {
	// SendVerification delivers an email-verification link to the address.
	SendVerification(ctx context.Context, email, link string) error
}
