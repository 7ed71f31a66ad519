package repositories

import (
	"context"

	"github.com/cxgw/currency_gateway_app/internal/core/domain"
)

// FavoriteReader defines read operations for favorite currency pairs
type FavoriteReader interface {
	// ListFavoritesByUser retrieves all favorite pairs owned by a user.
	ListFavoritesByUser(ctx context.Context, userID string) ([]domain.FavoritePair, error)
}

// FavoriteWriter defines write operations for favorite currency pairs
type FavoriteWriter interface {
	// SaveFavorite persists a new favorite pair. The store is append-only;
	// duplicate pairs for the same user create independent rows.
	SaveFavorite(ctx context.Context, favorite domain.FavoritePair) error
}

// FavoriteRepositoryFacade combines all favorite-related repository interfaces
type FavoriteRepositoryFacade interface {
	FavoriteReader
	FavoriteWriter
}
