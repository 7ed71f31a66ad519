package services

import (
	"context"
	"time"

	"github.com/cxgw/currency_gateway_app/internal/core/domain"
	portssvc "github.com/cxgw/currency_gateway_app/internal/core/ports/services"
	"github.com/cxgw/currency_gateway_app/internal/platform/config"
	"github.com/cxgw/currency_gateway_app/internal/utils"
)

// tokenService implements TokenSvcFacade for JWT access tokens. It requires
// access to application configuration for the secret, issuer and expiry.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, err
	}
	return accessToken, expiryTime, nil
}
