package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/cxgw/currency_gateway_app/internal/apperrors"
	"github.com/cxgw/currency_gateway_app/internal/core/domain"
	portssvc "github.com/cxgw/currency_gateway_app/internal/core/ports/services"
	"github.com/cxgw/currency_gateway_app/internal/core/services"
	"github.com/cxgw/currency_gateway_app/internal/dto"
	"github.com/cxgw/currency_gateway_app/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByVerificationToken(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkEmailVerified(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateVerificationToken(ctx context.Context, userID string, token string) error {
	args := m.Called(ctx, userID, token)
	return args.Error(0)
}

// --- Mock Mailer ---
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendVerification(ctx context.Context, email, link string) error {
	args := m.Called(ctx, email, link)
	return args.Error(0)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockRepo   *MockUserRepository
	mockMailer *MockMailer
	service    portssvc.UserSvcFacade
}

const testBaseURL = "http://localhost:8080"

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.mockMailer = new(MockMailer)
	suite.service = services.NewUserService(suite.mockRepo, suite.mockMailer, testBaseURL)
}

// --- SignUp ---

func (suite *UserServiceTestSuite) TestSignUp_Success() {
	ctx := context.Background()
	req := dto.SignUpRequest{
		Email:     "new@example.com",
		FirstName: "New",
		LastName:  "User",
		Password:  "password123",
	}

	suite.mockRepo.On("FindUserByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == req.Email &&
			u.FirstName == req.FirstName &&
			u.LastName == req.LastName &&
			!u.EmailVerified &&
			u.VerificationToken != "" &&
			u.PasswordHash != req.Password &&
			utils.CheckPasswordHash(req.Password, u.PasswordHash)
	})).Return(nil).Once()
	suite.mockMailer.On("SendVerification", ctx, req.Email, mock.MatchedBy(func(link string) bool {
		return strings.HasPrefix(link, testBaseURL+"/api/v1/auth/verify-email?token=")
	})).Return(nil).Once()

	user, err := suite.service.SignUp(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal(req.Email, user.Email)
	suite.False(user.EmailVerified)
	suite.NotEmpty(user.UserID)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockMailer.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestSignUp_DuplicateEmail() {
	ctx := context.Background()
	req := dto.SignUpRequest{
		Email:     "taken@example.com",
		FirstName: "Taken",
		LastName:  "User",
		Password:  "password123",
	}
	existing := &domain.User{UserID: uuid.NewString(), Email: req.Email}

	suite.mockRepo.On("FindUserByEmail", ctx, req.Email).Return(existing, nil).Once()

	user, err := suite.service.SignUp(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
	suite.mockMailer.AssertNotCalled(suite.T(), "SendVerification", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestSignUp_DuplicateRaceOnInsert() {
	ctx := context.Background()
	req := dto.SignUpRequest{
		Email:     "race@example.com",
		FirstName: "Race",
		LastName:  "User",
		Password:  "password123",
	}

	suite.mockRepo.On("FindUserByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()

	user, err := suite.service.SignUp(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- SignIn ---

func (suite *UserServiceTestSuite) signInUser(password string, verified bool) *domain.User {
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	return &domain.User{
		UserID:        uuid.NewString(),
		Email:         "user@example.com",
		PasswordHash:  hash,
		EmailVerified: verified,
		CreatedAt:     time.Now(),
		LastUpdatedAt: time.Now(),
	}
}

func (suite *UserServiceTestSuite) TestSignIn_Success() {
	ctx := context.Background()
	user := suite.signInUser("password123", true)

	suite.mockRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	got, err := suite.service.SignIn(ctx, user.Email, "password123")

	suite.Require().NoError(err)
	suite.Equal(user, got)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestSignIn_WrongPassword() {
	ctx := context.Background()
	user := suite.signInUser("password123", true)

	suite.mockRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	got, err := suite.service.SignIn(ctx, user.Email, "not-the-password")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestSignIn_UnknownEmail() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByEmail", ctx, "ghost@example.com").Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.SignIn(ctx, "ghost@example.com", "whatever")

	suite.Require().Error(err)
	suite.Nil(got)
	// Unknown email and wrong password are indistinguishable to the caller.
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestSignIn_UnverifiedEmail() {
	ctx := context.Background()
	user := suite.signInUser("password123", false)

	suite.mockRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	got, err := suite.service.SignIn(ctx, user.Email, "password123")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrUnverified)
}

// --- ResendVerification ---

func (suite *UserServiceTestSuite) TestResendVerification_RotatesToken() {
	ctx := context.Background()
	user := suite.signInUser("password123", false)
	user.VerificationToken = "old-token"

	suite.mockRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()
	suite.mockRepo.On("UpdateVerificationToken", ctx, user.UserID, mock.MatchedBy(func(token string) bool {
		return token != "" && token != "old-token"
	})).Return(nil).Once()
	suite.mockMailer.On("SendVerification", ctx, user.Email, mock.AnythingOfType("string")).Return(nil).Once()

	err := suite.service.ResendVerification(ctx, user.Email)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockMailer.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestResendVerification_AlreadyVerifiedIsNoop() {
	ctx := context.Background()
	user := suite.signInUser("password123", true)

	suite.mockRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	err := suite.service.ResendVerification(ctx, user.Email)

	suite.Require().NoError(err)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateVerificationToken", mock.Anything, mock.Anything, mock.Anything)
	suite.mockMailer.AssertNotCalled(suite.T(), "SendVerification", mock.Anything, mock.Anything, mock.Anything)
}

// --- VerifyEmail ---

func (suite *UserServiceTestSuite) TestVerifyEmail_Success() {
	ctx := context.Background()
	user := suite.signInUser("password123", false)
	user.VerificationToken = "valid-token"

	suite.mockRepo.On("FindUserByVerificationToken", ctx, "valid-token").Return(user, nil).Once()
	suite.mockRepo.On("MarkEmailVerified", ctx, user.UserID).Return(nil).Once()

	err := suite.service.VerifyEmail(ctx, "valid-token")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestVerifyEmail_EmptyToken() {
	err := suite.service.VerifyEmail(context.Background(), "")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindUserByVerificationToken", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestVerifyEmail_UnknownToken() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByVerificationToken", ctx, "bogus").Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.VerifyEmail(ctx, "bogus")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "MarkEmailVerified", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestVerifyEmail_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("FindUserByVerificationToken", ctx, "token").Return(nil, expectedErr).Once()

	err := suite.service.VerifyEmail(ctx, "token")

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
}

// --- Run Suite ---
func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
