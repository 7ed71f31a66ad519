package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/cxgw/currency_gateway_app/internal/apperrors"
	portssvc "github.com/cxgw/currency_gateway_app/internal/core/ports/services"
	"github.com/cxgw/currency_gateway_app/internal/currency"
	"github.com/cxgw/currency_gateway_app/internal/dto"
	"github.com/cxgw/currency_gateway_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// conversionHandler handles HTTP requests for currency conversion and rate
// lookups.
type conversionHandler struct {
	conversionService portssvc.ConversionSvcFacade
}

func newConversionHandler(cs portssvc.ConversionSvcFacade) *conversionHandler {
	return &conversionHandler{conversionService: cs}
}

// registerConversionRoutes registers conversion and rate-lookup routes on
// the (already authenticated) currency group.
func registerConversionRoutes(rg *gin.RouterGroup, conversionService portssvc.ConversionSvcFacade) {
	h := newConversionHandler(conversionService)

	rg.POST("/convert", h.convert)
	rg.POST("/batch-convert", h.batchConvert)
	rg.POST("/historical", h.historical)
	rg.GET("/current-rate", h.currentRate)
}

// convert godoc
// @Summary Convert an amount between currencies
// @Description Converts amount from base to target at the current rate. Base and target accept codes, full names or colloquial aliases.
// @Tags currency
// @Accept json
// @Produce json
// @Param conversion body dto.ConvertRequest true "Conversion details"
// @Success 200 {object} dto.Response{data=dto.ConversionResult}
// @Failure 400 {object} dto.Response "Validation or normalization error"
// @Failure 401 {object} dto.Response "Unauthorized"
// @Failure 500 {object} dto.Response "Rate provider failure"
// @Security BearerAuth
// @Router /currency/convert [post]
func (h *conversionHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for convert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorWithDetails("Please provide base, target and amount", dto.ValidationMessages(err)))
		return
	}

	if errs := currency.NormalizePair(&req.Base, &req.Target); len(errs) > 0 {
		logger.Warn("Currency normalization failed", slog.Any("errors", errs))
		c.JSON(http.StatusBadRequest, dto.ErrorWithDetails("Invalid currency input.", errs))
		return
	}

	if !req.Amount.IsPositive() {
		c.JSON(http.StatusBadRequest, dto.ErrorWithDetails("Validation error.", []string{"Amount must be a positive number"}))
		return
	}

	result, err := h.conversionService.Convert(c.Request.Context(), req.Base, req.Target, req.Amount)
	if err != nil {
		logger.Error("Error converting currency", slog.String("error", err.Error()))
		if errors.Is(err, apperrors.ErrRateFetch) {
			c.JSON(http.StatusInternalServerError, dto.Error(apperrors.MsgConvertFetchFailed))
		} else {
			c.JSON(http.StatusInternalServerError, dto.Error("something went wrong"))
		}
		return
	}

	logger.Info("Currency conversion successful",
		slog.String("base", req.Base),
		slog.String("target", req.Target),
		slog.String("amount", req.Amount.String()),
	)
	c.JSON(http.StatusOK, dto.Success("Currency conversion successful", result))
}

// batchConvert godoc
// @Summary Convert a batch of amounts
// @Description Processes the conversions concurrently; per-item failures are reported inline so one bad entry does not abort the batch. Output order matches input order.
// @Tags currency
// @Accept json
// @Produce json
// @Param batch body dto.BatchConvertRequest true "Ordered list of conversions"
// @Success 200 {object} dto.Response{data=[]dto.BatchConversionResult}
// @Failure 400 {object} dto.Response "Missing or empty conversions list"
// @Failure 401 {object} dto.Response "Unauthorized"
// @Security BearerAuth
// @Router /currency/batch-convert [post]
func (h *conversionHandler) batchConvert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.BatchConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Conversions) == 0 {
		logger.Warn("Batch conversion request missing or invalid format")
		c.JSON(http.StatusBadRequest, dto.Error("please provide an array of conversion objects with base, target and amount"))
		return
	}

	results := h.conversionService.BatchConvert(c.Request.Context(), req.Conversions)

	logger.Info("Batch currency conversion completed", slog.Int("count", len(results)))
	c.JSON(http.StatusOK, dto.Success("Batch currency conversion successful", results))
}

// historical godoc
// @Summary Fetch a historical rate series
// @Description Returns one rate per calendar day over the inclusive [start_date, end_date] range, ascending.
// @Tags currency
// @Accept json
// @Produce json
// @Param range body dto.HistoricalRequest true "Pair and date range"
// @Success 200 {object} dto.Response{data=[]dto.HistoricalRatePoint}
// @Failure 400 {object} dto.Response "Validation or normalization error"
// @Failure 401 {object} dto.Response "Unauthorized"
// @Failure 500 {object} dto.Response "Rate provider failure"
// @Security BearerAuth
// @Router /currency/historical [post]
func (h *conversionHandler) historical(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.HistoricalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for historical", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorWithDetails("Validation error.", dto.ValidationMessages(err)))
		return
	}

	if errs := currency.NormalizePair(&req.Base, &req.Target); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorWithDetails("Invalid currency input.", errs))
		return
	}

	// Format already validated by binding
	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)
	if !start.Before(end) {
		c.JSON(http.StatusBadRequest, dto.ErrorWithDetails("Validation error.", []string{"Start date must be before end date"}))
		return
	}

	series, err := h.conversionService.Historical(c.Request.Context(), req.Base, req.Target, start, end)
	if err != nil {
		logger.Error("Error fetching historical exchange rate", slog.String("error", err.Error()))
		if errors.Is(err, apperrors.ErrRateFetch) {
			c.JSON(http.StatusInternalServerError, dto.Error(apperrors.MsgHistoricalFetchFailed))
		} else {
			c.JSON(http.StatusInternalServerError, dto.Error("something went wrong"))
		}
		return
	}

	logger.Info("Historical exchange rate fetched successfully",
		slog.String("base", req.Base),
		slog.String("target", req.Target),
	)
	c.JSON(http.StatusOK, dto.Success("Historical exchange rate fetched successfully", series))
}

// currentRate godoc
// @Summary Get the current rate for a pair
// @Description Returns the provider's latest quote for base/target.
// @Tags currency
// @Produce json
// @Param base query string true "Base currency"
// @Param target query string true "Target currency"
// @Success 200 {object} dto.Response{data=dto.CurrentRateResponse}
// @Failure 400 {object} dto.Response "Validation or normalization error"
// @Failure 401 {object} dto.Response "Unauthorized"
// @Failure 500 {object} dto.Response "Rate provider failure"
// @Security BearerAuth
// @Router /currency/current-rate [get]
func (h *conversionHandler) currentRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CurrentRateRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorWithDetails("Validation error.", dto.ValidationMessages(err)))
		return
	}

	if errs := currency.NormalizePair(&req.Base, &req.Target); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorWithDetails("Invalid currency input.", errs))
		return
	}

	result, err := h.conversionService.CurrentRate(c.Request.Context(), req.Base, req.Target)
	if err != nil {
		logger.Error("Error fetching current currency rate", slog.String("error", err.Error()))
		if errors.Is(err, apperrors.ErrRateFetch) {
			c.JSON(http.StatusInternalServerError, dto.Error(apperrors.MsgCurrentFetchFailed))
		} else {
			c.JSON(http.StatusInternalServerError, dto.Error("something went wrong"))
		}
		return
	}

	logger.Info("Fetched current currency rate",
		slog.String("base", req.Base),
		slog.String("target", req.Target),
	)
	c.JSON(http.StatusOK, dto.Success("Current rate fetched successfully", result))
}
