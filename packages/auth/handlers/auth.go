package handlers

import (
	"errors"
	"log"
	"net/http"

	"prode-api/packages/auth/middleware"
	"prode-api/packages/auth/models"
	"prode-api/packages/auth/services"
	"prode-api/packages/auth/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// @Summary User Registration
// @Description Register a new participant and get JWT tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param user body models.RegisterRequest true "User registration data"
// @Success 201 {object} models.TokenResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.ValidationMessage(err), "code": "invalid_input"})
		return
	}

	tokens, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "Email already exists", "code": "conflict"})
		case errors.Is(err, services.ErrUsernameTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "Username already exists", "code": "conflict"})
		default:
			internalError(c, "Failed to create user", err)
		}
		return
	}

	c.JSON(http.StatusCreated, tokens)
}

// @Summary User Login
// @Description Login with email and password to get JWT tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "User login credentials"
// @Success 200 {object} models.TokenResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.ValidationMessage(err), "code": "invalid_input"})
		return
	}

	tokens, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) || errors.Is(err, services.ErrUserDisabled) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials", "code": "unauthenticated"})
			return
		}
		internalError(c, "Failed to log in", err)
		return
	}

	c.JSON(http.StatusOK, tokens)
}

// @Summary Refresh Access Token
// @Description Get a new access token using a refresh token (the refresh token is rotated)
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body models.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} models.TokenResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req models.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.ValidationMessage(err), "code": "invalid_input"})
		return
	}

	tokens, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, services.ErrInvalidRefreshToken) || errors.Is(err, services.ErrUserDisabled) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token", "code": "unauthenticated"})
			return
		}
		internalError(c, "Failed to refresh token", err)
		return
	}

	c.JSON(http.StatusOK, tokens)
}

// @Summary Logout
// @Description Revoke a refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body models.RefreshTokenRequest true "Refresh token to revoke"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	var req models.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.ValidationMessage(err), "code": "invalid_input"})
		return
	}

	if err := h.authService.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		internalError(c, "Failed to revoke token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// @Summary Logout from All Devices
// @Description Revoke all refresh tokens of the current user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /auth/logout-all [post]
func (h *AuthHandler) LogoutAll(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		unauthenticated(c)
		return
	}

	if err := h.authService.LogoutAll(c.Request.Context(), userID); err != nil {
		internalError(c, "Failed to revoke tokens", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out from all devices"})
}

// @Summary Send Password Reset Link
// @Description Email a password reset link. Always answers success to avoid email enumeration.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.PasswordResetRequest true "Password reset request"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} map[string]string
// @Router /auth/reset-password/send-link [post]
func (h *AuthHandler) SendPasswordResetLink(c *gin.Context) {
	var req models.PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.ValidationMessage(err), "code": "invalid_input"})
		return
	}

	if err := h.authService.SendPasswordResetLink(c.Request.Context(), req.Email); err != nil {
		internalError(c, "Failed to send password reset email", err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}

// @Summary Confirm Password Reset
// @Description Set a new password with the token received by email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.PasswordResetConfirmRequest true "Password reset confirmation"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} map[string]string
// @Router /auth/reset-password/confirm [post]
func (h *AuthHandler) ConfirmPasswordReset(c *gin.Context) {
	var req models.PasswordResetConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.ValidationMessage(err), "code": "invalid_input"})
		return
	}

	if err := h.authService.ConfirmPasswordReset(c.Request.Context(), req); err != nil {
		if errors.Is(err, services.ErrInvalidResetToken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired token", "code": "invalid_input"})
			return
		}
		internalError(c, "Failed to update password", err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}

// @Summary Change Password
// @Description Change the password of the authenticated user
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.ChangePasswordRequest true "Password change request"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/change-password [post]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		unauthenticated(c)
		return
	}

	var req models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.ValidationMessage(err), "code": "invalid_input"})
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), userID, req); err != nil {
		switch {
		case errors.Is(err, services.ErrWrongPassword):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Current password is invalid", "code": "invalid_input"})
		case errors.Is(err, services.ErrUserNotFound):
			unauthenticated(c)
		default:
			internalError(c, "Failed to update password", err)
		}
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}

// @Summary Get User Profile
// @Description Get the profile of the authenticated user
// @Tags user
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/me [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		unauthenticated(c)
		return
	}

	user, err := h.authService.GetUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found", "code": "not_found"})
			return
		}
		internalError(c, "Failed to load profile", err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// @Summary Update User Profile
// @Description Update first name, last name (shown on the ranking) and username
// @Tags user
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpdateProfileRequest true "Profile fields to update"
// @Success 200 {object} models.User
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /users/me [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		unauthenticated(c)
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.ValidationMessage(err), "code": "invalid_input"})
		return
	}

	user, err := h.authService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "Username already exists", "code": "conflict"})
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found", "code": "not_found"})
		default:
			internalError(c, "Failed to update user", err)
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

func unauthenticated(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized", "code": "unauthenticated"})
}

func internalError(c *gin.Context, message string, err error) {
	log.Printf("%s: %v", message, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": message, "code": "internal"})
}
