package mail

import (
	"context"
	"log/slog"

	"github.com/cxgw/currency_gateway_app/internal/core/ports/providers"
)

// LogMailer writes verification emails to the structured log instead of
// delivering them. Real delivery belongs to an external provider; this
// keeps the Mailer port exercised in development and tests.
type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

// Ensure LogMailer implements the port
var _ providers.Mailer = (*LogMailer)(nil)

func (m *LogMailer) SendVerification(ctx context.Context, email, link string) error {
	m.logger.Info("Verification email",
		slog.String("email", email),
		slog.String("link", link),
	)
	return nil
}
