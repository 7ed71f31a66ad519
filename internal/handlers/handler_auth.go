package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cxgw/currency_gateway_app/internal/apperrors"
	portssvc "github.com/cxgw/currency_gateway_app/internal/core/ports/services"
	"github.com/cxgw/currency_gateway_app/internal/dto"
	"github.com/cxgw/currency_gateway_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// verifiedPage is the HTML confirmation shown after a successful email
// verification.
const verifiedPage = `<html>
<head>
    <title>Email Verified</title>
</head>
<body style="text-align: center; padding: 50px;">
    <h1>Email Verified Successfully</h1>
    <p>You can now close this window and log in.</p>
</body>
</html>`

// authHandler handles authentication related requests.
type authHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
}

func newAuthHandler(us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade) *authHandler {
	return &authHandler{
		userService:  us,
		tokenService: ts,
	}
}

// registerAuthRoutes sets up the public authentication routes. The sign-up
// and sign-in endpoints sit behind the per-IP limiter.
func registerAuthRoutes(rg *gin.RouterGroup, us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade, authLimiter *limiter.Limiter) {
	h := newAuthHandler(us, ts)
	limit := middleware.RateLimit(authLimiter)

	auth := rg.Group("/auth")
	{
		auth.POST("/signup", limit, h.signUp)
		auth.POST("/signin", limit, h.signIn)
		auth.POST("/resend-verification", h.resendVerification)
		auth.GET("/verify-email", h.verifyEmail)
	}
}

// signUp godoc
// @Summary Register a new user
// @Description Creates an unverified account and sends a verification email
// @Tags auth
// @Accept json
// @Produce json
// @Param signup body dto.SignUpRequest true "Registration details"
// @Success 201 {object} dto.Response
// @Failure 400 {object} dto.Response "Validation error"
// @Failure 409 {object} dto.Response "User already exists"
// @Failure 500 {object} dto.Response
// @Router /auth/signup [post]
func (h *authHandler) signUp(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for sign-up", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorWithDetails("Validation error.", dto.ValidationMessages(err)))
		return
	}

	logger.Info("User sign-up attempt", slog.String("email", req.Email))

	user, err := h.userService.SignUp(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("User already exists", slog.String("email", req.Email))
			c.JSON(http.StatusConflict, dto.Error("User already exists"))
			return
		}
		logger.Error("Failed to register user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Error("Failed to register user"))
		return
	}

	logger.Info("User created successfully", slog.String("email", user.Email))
	c.JSON(http.StatusCreated, dto.Success("User created successfully. Please verify your email", dto.ToUserResponse(user)))
}

// signIn godoc
// @Summary Sign in
// @Description Authenticates a user and returns a JWT access token
// @Tags auth
// @Accept json
// @Produce json
// @Param signin body dto.SignInRequest true "Credentials"
// @Success 200 {object} dto.Response{data=dto.SignInResponse}
// @Failure 400 {object} dto.Response "Validation error"
// @Failure 401 {object} dto.Response "Invalid credentials"
// @Failure 403 {object} dto.Response "Email not verified"
// @Failure 500 {object} dto.Response
// @Router /auth/signin [post]
func (h *authHandler) signIn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorWithDetails("Validation error.", dto.ValidationMessages(err)))
		return
	}

	logger.Info("User sign-in attempt", slog.String("email", req.Email))

	user, err := h.userService.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnverified):
			logger.Warn("Sign-in blocked - email not verified", slog.String("email", req.Email))
			c.JSON(http.StatusForbidden, dto.Error("please verify your email before logging in."))
		case errors.Is(err, apperrors.ErrUnauthorized):
			logger.Warn("Sign-in failed - invalid credentials", slog.String("email", req.Email))
			c.JSON(http.StatusUnauthorized, dto.Error("Invalid login credentials"))
		default:
			logger.Error("Sign-in failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.Error("Failed to sign in"))
		}
		return
	}

	token, _, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Error("Failed to generate token"))
		return
	}

	logger.Info("User signed in successfully", slog.String("email", user.Email))
	c.JSON(http.StatusOK, dto.Success("User signed in successfully", dto.SignInResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	}))
}

// resendVerification godoc
// @Summary Resend verification email
// @Description Rotates the verification token and re-sends the email
// @Tags auth
// @Accept json
// @Produce json
// @Param resend body dto.ResendVerificationRequest true "Email address"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response "Validation error"
// @Failure 500 {object} dto.Response
// @Router /auth/resend-verification [post]
func (h *authHandler) resendVerification(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ResendVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorWithDetails("Validation error.", dto.ValidationMessages(err)))
		return
	}

	logger.Info("Resend verification email requested", slog.String("email", req.Email))

	if err := h.userService.ResendVerification(c.Request.Context(), req.Email); err != nil {
		logger.Error("Error resending verification email", slog.String("email", req.Email), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Error("Error resending verification email"))
		return
	}

	logger.Info("Verification email sent successfully", slog.String("email", req.Email))
	c.JSON(http.StatusOK, dto.Success("Verification email sent successfully", nil))
}

// verifyEmail godoc
// @Summary Verify email address
// @Description Consumes a verification token and shows a confirmation page
// @Tags auth
// @Produce html
// @Param token query string true "Verification token"
// @Success 200 {string} string "HTML confirmation page"
// @Failure 400 {object} dto.Response "Invalid or expired link"
// @Failure 500 {object} dto.Response
// @Router /auth/verify-email [get]
func (h *authHandler) verifyEmail(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	token := c.Query("token")
	err := h.userService.VerifyEmail(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Email verification failed - invalid token")
			c.JSON(http.StatusBadRequest, dto.Error("Invalid or expired verification link"))
			return
		}
		logger.Error("Email verification failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Error("Failed to verify email"))
		return
	}

	logger.Info("Email verified successfully")
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(verifiedPage))
}
