package services

import (
	"context"
	"fmt"
	"time"

	"github.com/cxgw/currency_gateway_app/internal/core/domain"
	portsrepo "github.com/cxgw/currency_gateway_app/internal/core/ports/repositories"
	portssvc "github.com/cxgw/currency_gateway_app/internal/core/ports/services"
	"github.com/google/uuid"
)

// FavoriteService manages user-owned favorite currency pairs.
type FavoriteService struct {
	favoriteRepo portsrepo.FavoriteRepositoryFacade
}

func NewFavoriteService(favoriteRepo portsrepo.FavoriteRepositoryFacade) *FavoriteService {
	return &FavoriteService{favoriteRepo: favoriteRepo}
}

// Ensure FavoriteService implements the facade
var _ portssvc.FavoriteSvcFacade = (*FavoriteService)(nil)

func (s *FavoriteService) CreateFavorite(ctx context.Context, userID, base, target string) (*domain.FavoritePair, error) {
	favorite := domain.FavoritePair{
		FavoriteID: uuid.NewString(),
		UserID:     userID,
		Base:       base,
		Target:     target,
		CreatedAt:  time.Now(),
	}

	if err := s.favoriteRepo.SaveFavorite(ctx, favorite); err != nil {
		return nil, fmt.Errorf("failed to create favorite pair in service: %w", err)
	}

	return &favorite, nil
}

func (s *FavoriteService) ListFavorites(ctx context.Context, userID string) ([]domain.FavoritePair, error) {
	favorites, err := s.favoriteRepo.ListFavoritesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorite pairs in service: %w", err)
	}
	// Return empty slice if no favorites found, not nil
	if favorites == nil {
		return []domain.FavoritePair{}, nil
	}
	return favorites, nil
}
