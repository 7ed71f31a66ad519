package services

import (
	"github.com/cxgw/currency_gateway_app/internal/adapters/database/pgsql"
	"github.com/cxgw/currency_gateway_app/internal/core/ports/providers"
	portssvc "github.com/cxgw/currency_gateway_app/internal/core/ports/services"
	"github.com/cxgw/currency_gateway_app/internal/platform/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewServiceContainer wires the concrete services and their repositories
// into the container consumed by the handlers.
func NewServiceContainer(dbPool *pgxpool.Pool, rates providers.RateSource, mailer providers.Mailer, cfg *config.Config) *portssvc.ServiceContainer {
	userRepo := pgsql.NewUserRepository(dbPool)
	favoriteRepo := pgsql.NewFavoriteRepository(dbPool)

	return &portssvc.ServiceContainer{
		User:       NewUserService(userRepo, mailer, cfg.AppBaseURL),
		Token:      NewTokenService(cfg),
		Conversion: NewConversionService(rates),
		Favorite:   NewFavoriteService(favoriteRepo),
	}
}
