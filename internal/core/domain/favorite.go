package domain

import "time"

// FavoritePair is a user-owned favorite currency pair. Rows are append-only:
// created once, never mutated, and duplicates are allowed.
type FavoritePair struct {
	FavoriteID string
	UserID     string
	Base       string
	Target     string
	CreatedAt  time.Time
}
