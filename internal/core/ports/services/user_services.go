package services

import (
	"context"
	"time"

	"github.com/cxgw/currency_gateway_app/internal/core/domain"
	"github.com/cxgw/currency_gateway_app/internal/dto"
)

// UserSvcFacade defines the account lifecycle operations.
type UserSvcFacade interface {
	// SignUp registers a new unverified user and sends the verification
	// email. Returns apperrors.ErrDuplicate when the email is taken.
	SignUp(ctx context.Context, req dto.SignUpRequest) (*domain.User, error)

	// SignIn checks credentials. Returns apperrors.ErrUnauthorized on bad
	// credentials and apperrors.ErrUnverified when the email is unverified.
	SignIn(ctx context.Context, email, password string) (*domain.User, error)

	// ResendVerification rotates the user's verification token and re-sends
	// the verification email.
	ResendVerification(ctx context.Context, email string) error

	// VerifyEmail consumes a verification token and marks the user verified.
	VerifyEmail(ctx context.Context, token string) error
}

// TokenSvcFacade defines access-token issuance.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed JWT for the user and returns it
	// with its expiry time.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}
