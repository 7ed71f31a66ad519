package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/cxgw/currency_gateway_app/internal/core/domain"
	portssvc "github.com/cxgw/currency_gateway_app/internal/core/ports/services"
	"github.com/cxgw/currency_gateway_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock FavoriteRepository ---
type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) SaveFavorite(ctx context.Context, favorite domain.FavoritePair) error {
	args := m.Called(ctx, favorite)
	return args.Error(0)
}

func (m *MockFavoriteRepository) ListFavoritesByUser(ctx context.Context, userID string) ([]domain.FavoritePair, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FavoritePair), args.Error(1)
}

// --- Test Suite ---
type FavoriteServiceTestSuite struct {
	suite.Suite
	mockRepo *MockFavoriteRepository
	service  portssvc.FavoriteSvcFacade
}

func (suite *FavoriteServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockFavoriteRepository)
	suite.service = services.NewFavoriteService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *FavoriteServiceTestSuite) TestCreateFavorite_Success() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("SaveFavorite", ctx, mock.MatchedBy(func(f domain.FavoritePair) bool {
		return f.UserID == userID && f.Base == "USD" && f.Target == "EUR" && f.FavoriteID != ""
	})).Return(nil).Once()

	fav, err := suite.service.CreateFavorite(ctx, userID, "USD", "EUR")

	suite.Require().NoError(err)
	suite.Require().NotNil(fav)
	suite.Equal(userID, fav.UserID)
	suite.Equal("USD", fav.Base)
	suite.Equal("EUR", fav.Target)
	suite.NotEmpty(fav.FavoriteID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *FavoriteServiceTestSuite) TestCreateFavorite_DuplicatePairIsAllowed() {
	ctx := context.Background()
	userID := uuid.NewString()

	// The store is append-only: saving the same pair twice yields two
	// records with distinct IDs.
	suite.mockRepo.On("SaveFavorite", ctx, mock.AnythingOfType("domain.FavoritePair")).Return(nil).Twice()

	first, err := suite.service.CreateFavorite(ctx, userID, "USD", "EUR")
	suite.Require().NoError(err)
	second, err := suite.service.CreateFavorite(ctx, userID, "USD", "EUR")
	suite.Require().NoError(err)

	suite.NotEqual(first.FavoriteID, second.FavoriteID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *FavoriteServiceTestSuite) TestCreateFavorite_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("SaveFavorite", ctx, mock.AnythingOfType("domain.FavoritePair")).Return(expectedErr).Once()

	fav, err := suite.service.CreateFavorite(ctx, uuid.NewString(), "USD", "EUR")

	suite.Require().Error(err)
	suite.Nil(fav)
	suite.ErrorIs(err, expectedErr)
}

func (suite *FavoriteServiceTestSuite) TestListFavorites_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	expected := []domain.FavoritePair{
		{FavoriteID: uuid.NewString(), UserID: userID, Base: "USD", Target: "EUR", CreatedAt: time.Now().Add(-time.Hour)},
		{FavoriteID: uuid.NewString(), UserID: userID, Base: "GBP", Target: "JPY", CreatedAt: time.Now()},
	}

	suite.mockRepo.On("ListFavoritesByUser", ctx, userID).Return(expected, nil).Once()

	favs, err := suite.service.ListFavorites(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal(expected, favs)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *FavoriteServiceTestSuite) TestListFavorites_EmptyIsNotNil() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("ListFavoritesByUser", ctx, userID).Return(nil, nil).Once()

	favs, err := suite.service.ListFavorites(ctx, userID)

	suite.Require().NoError(err)
	suite.NotNil(favs)
	suite.Empty(favs)
}

func (suite *FavoriteServiceTestSuite) TestListFavorites_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("ListFavoritesByUser", ctx, mock.AnythingOfType("string")).Return(nil, expectedErr).Once()

	favs, err := suite.service.ListFavorites(ctx, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(favs)
	suite.ErrorIs(err, expectedErr)
}

// --- Run Suite ---
func TestFavoriteService(t *testing.T) {
	suite.Run(t, new(FavoriteServiceTestSuite))
}
