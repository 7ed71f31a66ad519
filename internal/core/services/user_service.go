package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cxgw/currency_gateway_app/internal/apperrors"
	"github.com/cxgw/currency_gateway_app/internal/core/domain"
	"github.com/cxgw/currency_gateway_app/internal/core/ports/providers"
	portsrepo "github.com/cxgw/currency_gateway_app/internal/core/ports/repositories"
	portssvc "github.com/cxgw/currency_gateway_app/internal/core/ports/services"
	"github.com/cxgw/currency_gateway_app/internal/dto"
	"github.com/cxgw/currency_gateway_app/internal/utils"
	"github.com/google/uuid"
)

// UserService owns the account lifecycle: registration, credential checks
// and the email verification flow.
type UserService struct {
	userRepo   portsrepo.UserRepositoryFacade
	mailer     providers.Mailer
	appBaseURL string
}

func NewUserService(userRepo portsrepo.UserRepositoryFacade, mailer providers.Mailer, appBaseURL string) *UserService {
	return &UserService{
		userRepo:   userRepo,
		mailer:     mailer,
		appBaseURL: appBaseURL,
	}
}

// Ensure UserService implements the facade
var _ portssvc.UserSvcFacade = (*UserService)(nil)

func (s *UserService) SignUp(ctx context.Context, req dto.SignUpRequest) (*domain.User, error) {
	existing, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicate
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	token, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return nil, fmt.Errorf("failed to generate verification token: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:            uuid.NewString(),
		Email:             req.Email,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		PasswordHash:      passwordHash,
		EmailVerified:     false,
		VerificationToken: token,
		CreatedAt:         now,
		LastUpdatedAt:     now,
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	if err := s.mailer.SendVerification(ctx, user.Email, s.verificationLink(token)); err != nil {
		return nil, fmt.Errorf("failed to send verification email: %w", err)
	}

	return &user, nil
}

func (s *UserService) SignIn(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to find user for sign-in: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	if !user.EmailVerified {
		return nil, apperrors.ErrUnverified
	}

	return user, nil
}

func (s *UserService) ResendVerification(ctx context.Context, email string) error {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to find user for resend: %w", err)
	}
	if user.EmailVerified {
		// Nothing to resend; treat as success like the provider does.
		return nil
	}

	token, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return fmt.Errorf("failed to generate verification token: %w", err)
	}
	if err := s.userRepo.UpdateVerificationToken(ctx, user.UserID, token); err != nil {
		return fmt.Errorf("failed to rotate verification token: %w", err)
	}

	if err := s.mailer.SendVerification(ctx, user.Email, s.verificationLink(token)); err != nil {
		return fmt.Errorf("failed to send verification email: %w", err)
	}

	return nil
}

func (s *UserService) VerifyEmail(ctx context.Context, token string) error {
	if token == "" {
		return apperrors.ErrValidation
	}

	user, err := s.userRepo.FindUserByVerificationToken(ctx, token)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to look up verification token: %w", err)
	}

	if err := s.userRepo.MarkEmailVerified(ctx, user.UserID); err != nil {
		return fmt.Errorf("failed to mark email verified: %w", err)
	}

	return nil
}

func (s *UserService) verificationLink(token string) string {
	return fmt.Sprintf("%s/api/v1/auth/verify-email?token=%s", s.appBaseURL, token)
}
