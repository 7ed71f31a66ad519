package dto

import (
	"time"

	"github.com/cxgw/currency_gateway_app/internal/core/domain"
)

// SaveFavoriteRequest defines the pair to persist for the caller.
type SaveFavoriteRequest struct {
	Base   string `json:"base" binding:"required"`
	Target string `json:"target" binding:"required"`
}

// FavoriteResponse defines the data returned for a favorite pair.
type FavoriteResponse struct {
	FavoriteID string    `json:"id"`
	UserID     string    `json:"user_id"`
	Base       string    `json:"base"`
	Target     string    `json:"target"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToFavoriteResponse converts a domain.FavoritePair to FavoriteResponse DTO
func ToFavoriteResponse(fav *domain.FavoritePair) FavoriteResponse {
	return FavoriteResponse{
		FavoriteID: fav.FavoriteID,
		UserID:     fav.UserID,
		Base:       fav.Base,
		Target:     fav.Target,
		CreatedAt:  fav.CreatedAt,
	}
}

// ToListFavoriteResponse converts a slice of domain.FavoritePair to DTOs
func ToListFavoriteResponse(favs []domain.FavoritePair) []FavoriteResponse {
	res := make([]FavoriteResponse, len(favs))
	for i, fav := range favs {
		res[i] = ToFavoriteResponse(&fav)
	}
	return res
}
