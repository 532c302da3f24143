package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/timewinder-app/timewinder/internal/core/domain"
	"github.com/timewinder-app/timewinder/internal/core/services"
)

type AuthHandler struct {
	auth *services.AuthService
	otp  *services.OTPService
}

func NewAuthHandler(auth *services.AuthService, otp *services.OTPService) *AuthHandler {
	return &AuthHandler{
		auth: auth,
		otp:  otp,
	}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/password-reset", h.PasswordReset)
		authGroup.POST("/otp/send", h.SendOTP)
		authGroup.POST("/otp/confirm", h.ConfirmOTP)
	}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type passwordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type sendOTPRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
}

type confirmOTPRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	Code        string `json:"code" binding:"required,len=6"`
}

// Register godoc
// @Summary  Create an account
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    request body registerRequest true "credentials"
// @Success  201 {object} userResponse
// @Router   /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.auth.Register(c.Request.Context(), services.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{"error": "email already exists"})
		case errors.Is(err, domain.ErrInvalidEmail):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid email format"})
		case errors.Is(err, domain.ErrPasswordTooShort):
			c.JSON(http.StatusBadRequest, gin.H{"error": "password too short"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, userResponse{
		ID:    user.ID,
		Email: user.Email,
	})
}

// Login godoc
// @Summary  Exchange credentials for a session token
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    request body loginRequest true "credentials"
// @Success  200 {object} tokenResponse
// @Router   /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, tokenResponse{Token: token})
}

// PasswordReset godoc
// @Summary  Send a password reset token
// @Tags     auth
// @Accept   json
// @Param    request body passwordResetRequest true "email"
// @Success  202
// @Router   /auth/password-reset [post]
func (h *AuthHandler) PasswordReset(c *gin.Context) {
	var req passwordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.auth.SendPasswordReset(c.Request.Context(), req.Email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	// Accepted regardless of whether the address has an account.
	c.Status(http.StatusAccepted)
}

// SendOTP godoc
// @Summary  Send a phone verification code
// @Tags     auth
// @Accept   json
// @Param    request body sendOTPRequest true "phone number"
// @Success  202
// @Router   /auth/otp/send [post]
func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req sendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.otp.SendCode(c.Request.Context(), req.PhoneNumber); err != nil {
		if errors.Is(err, services.ErrInvalidPhoneNumber) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusAccepted)
}

// ConfirmOTP godoc
// @Summary  Exchange a verification code for a session token
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    request body confirmOTPRequest true "phone number and code"
// @Success  200 {object} tokenResponse
// @Router   /auth/otp/confirm [post]
func (h *AuthHandler) ConfirmOTP(c *gin.Context) {
	var req confirmOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.otp.ConfirmCode(c.Request.Context(), req.PhoneNumber, req.Code)
	if err != nil {
		if errors.Is(err, services.ErrInvalidOTPCode) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired code"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, tokenResponse{Token: token})
}
