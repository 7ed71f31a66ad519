package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/cxgw/currency_gateway_app/internal/core/ports/services"
	"github.com/cxgw/currency_gateway_app/internal/currency"
	"github.com/cxgw/currency_gateway_app/internal/dto"
	"github.com/cxgw/currency_gateway_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// favoriteHandler handles requests for the caller's favorite currency pairs.
type favoriteHandler struct {
	favoriteService portssvc.FavoriteSvcFacade
}

func newFavoriteHandler(fs portssvc.FavoriteSvcFacade) *favoriteHandler {
	return &favoriteHandler{favoriteService: fs}
}

// registerFavoriteRoutes registers the favorite-pair routes on the
// authenticated currency group.
func registerFavoriteRoutes(rg *gin.RouterGroup, favoriteService portssvc.FavoriteSvcFacade) {
	h := newFavoriteHandler(favoriteService)

	fav := rg.Group("/favorite")
	{
		fav.POST("", h.saveFavorite)
		fav.GET("", h.listFavorites)
	}
}

// saveFavorite godoc
// @Summary Save a favorite currency pair
// @Description Persists a base/target pair for the authenticated user. Inputs are normalized; repeats are stored as separate records.
// @Tags favorites
// @Accept json
// @Produce json
// @Param favorite body dto.SaveFavoriteRequest true "Pair to save"
// @Success 201 {object} dto.Response{data=dto.FavoriteResponse}
// @Failure 400 {object} dto.Response "Validation or normalization error"
// @Failure 401 {object} dto.Response "Unauthorized"
// @Failure 500 {object} dto.Response
// @Security BearerAuth
// @Router /currency/favorite [post]
func (h *favoriteHandler) saveFavorite(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Error("Unauthorized. Please provide a valid token"))
		return
	}

	var req dto.SaveFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for favorite", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorWithDetails("Please provide base and target currencies", dto.ValidationMessages(err)))
		return
	}

	if errs := currency.NormalizePair(&req.Base, &req.Target); len(errs) > 0 {
		logger.Warn("Currency normalization failed", slog.Any("errors", errs))
		c.JSON(http.StatusBadRequest, dto.ErrorWithDetails("Invalid currency input.", errs))
		return
	}

	fav, err := h.favoriteService.CreateFavorite(c.Request.Context(), userID, req.Base, req.Target)
	if err != nil {
		logger.Error("Failed to save favorite currency pair", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Error("Failed to save favorite currency pair"))
		return
	}

	logger.Info("Favorite currency pair saved",
		slog.String("base", fav.Base),
		slog.String("target", fav.Target),
	)
	c.JSON(http.StatusCreated, dto.Success("Favorite currency pair saved successfully", dto.ToFavoriteResponse(fav)))
}

// listFavorites godoc
// @Summary List favorite currency pairs
// @Description Returns every pair the authenticated user has saved, oldest first.
// @Tags favorites
// @Produce json
// @Success 200 {object} dto.Response{data=[]dto.FavoriteResponse}
// @Failure 401 {object} dto.Response "Unauthorized"
// @Failure 500 {object} dto.Response
// @Security BearerAuth
// @Router /currency/favorite [get]
func (h *favoriteHandler) listFavorites(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Error("Unauthorized. Please provide a valid token"))
		return
	}

	favs, err := h.favoriteService.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list favorite currency pairs", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Error("Failed to fetch favorite currency pairs"))
		return
	}

	c.JSON(http.StatusOK, dto.Success("Favorite currency pairs fetched successfully", dto.ToListFavoriteResponse(favs)))
}
