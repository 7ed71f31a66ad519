package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cxgw/currency_gateway_app/internal/apperrors"
	"github.com/cxgw/currency_gateway_app/internal/core/domain"
	portsrepo "github.com/cxgw/currency_gateway_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure UserRepository implements the port
var _ portsrepo.UserRepositoryFacade = (*UserRepository)(nil)

func (r *UserRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
        INSERT INTO users (user_id, email, first_name, last_name, password_hash, email_verified, verification_token, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.db.Exec(ctx, query,
		user.UserID,
		user.Email,
		user.FirstName,
		user.LastName,
		user.PasswordHash,
		user.EmailVerified,
		user.VerificationToken,
		user.CreatedAt,
		user.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findUserWhere(ctx, "user_id = $1", userID)
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findUserWhere(ctx, "email = $1", email)
}

func (r *UserRepository) FindUserByVerificationToken(ctx context.Context, token string) (*domain.User, error) {
	return r.findUserWhere(ctx, "verification_token = $1 AND verification_token <> ''", token)
}

func (r *UserRepository) findUserWhere(ctx context.Context, where string, arg any) (*domain.User, error) {
	query := `
        SELECT user_id, email, first_name, last_name, password_hash, email_verified, verification_token, created_at, last_updated_at
        FROM users
        WHERE ` + where + `;
    `
	var user domain.User
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&user.UserID,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.PasswordHash,
		&user.EmailVerified,
		&user.VerificationToken,
		&user.CreatedAt,
		&user.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) MarkEmailVerified(ctx context.Context, userID string) error {
	query := `
        UPDATE users
        SET email_verified = TRUE, verification_token = '', last_updated_at = $2
        WHERE user_id = $1;
    `
	tag, err := r.db.Exec(ctx, query, userID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to mark email verified: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *UserRepository) UpdateVerificationToken(ctx context.Context, userID string, token string) error {
	query := `
        UPDATE users
        SET verification_token = $2, last_updated_at = $3
        WHERE user_id = $1;
    `
	tag, err := r.db.Exec(ctx, query, userID, token, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update verification token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
