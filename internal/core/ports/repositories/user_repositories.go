package repositories

import (
	"context"

	"github.com/cxgw/currency_gateway_app/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a user by its ID. Returns apperrors.ErrNotFound
	// when no row matches.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email address.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByVerificationToken retrieves the user holding a pending
	// verification token.
	FindUserByVerificationToken(ctx context.Context, token string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// MarkEmailVerified flags the user's email as verified and clears the
	// verification token.
	MarkEmailVerified(ctx context.Context, userID string) error

	// UpdateVerificationToken replaces the user's pending verification token.
	UpdateVerificationToken(ctx context.Context, userID string, token string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
