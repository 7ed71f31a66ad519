package services

import (
	"context"

	"github.com/cxgw/currency_gateway_app/internal/core/domain"
)

// FavoriteSvcFacade manages user-owned favorite currency pairs.
type FavoriteSvcFacade interface {
	// CreateFavorite appends a new favorite pair for the user. No dedup is
	// enforced; saving the same pair twice yields two records.
	CreateFavorite(ctx context.Context, userID, base, target string) (*domain.FavoritePair, error)

	// ListFavorites retrieves all pairs owned by the user.
	ListFavorites(ctx context.Context, userID string) ([]domain.FavoritePair, error)
}
