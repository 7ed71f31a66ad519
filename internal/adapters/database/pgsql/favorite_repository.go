package pgsql

import (
	"context"
	"fmt"

	"github.com/cxgw/currency_gateway_app/internal/core/domain"
	portsrepo "github.com/cxgw/currency_gateway_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FavoriteRepository struct {
	db *pgxpool.Pool
}

func NewFavoriteRepository(db *pgxpool.Pool) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Ensure FavoriteRepository implements the port
var _ portsrepo.FavoriteRepositoryFacade = (*FavoriteRepository)(nil)

// SaveFavorite inserts a new favorite pair. The table carries no uniqueness
// constraint over (user_id, base, target): the store is append-only and
// duplicates are independent rows.
func (r *FavoriteRepository) SaveFavorite(ctx context.Context, favorite domain.FavoritePair) error {
	query := `
        INSERT INTO favorite_currency_pairs (favorite_id, user_id, base, target, created_at)
        VALUES ($1, $2, $3, $4, $5);
    `
	_, err := r.db.Exec(ctx, query,
		favorite.FavoriteID,
		favorite.UserID,
		favorite.Base,
		favorite.Target,
		favorite.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save favorite pair: %w", err)
	}
	return nil
}

func (r *FavoriteRepository) ListFavoritesByUser(ctx context.Context, userID string) ([]domain.FavoritePair, error) {
	query := `
        SELECT favorite_id, user_id, base, target, created_at
        FROM favorite_currency_pairs
        WHERE user_id = $1
        ORDER BY created_at;
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorite pairs: %w", err)
	}
	defer rows.Close()

	var favorites []domain.FavoritePair
	for rows.Next() {
		var fav domain.FavoritePair
		if err := rows.Scan(&fav.FavoriteID, &fav.UserID, &fav.Base, &fav.Target, &fav.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan favorite pair: %w", err)
		}
		favorites = append(favorites, fav)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating favorite pairs: %w", err)
	}

	return favorites, nil
}
