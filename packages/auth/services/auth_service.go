package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"prode-api/packages/auth/models"
	"prode-api/packages/auth/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken          = errors.New("email already exists")
	ErrUsernameTaken       = errors.New("username already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserDisabled        = errors.New("user is disabled")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidResetToken   = errors.New("invalid or expired token")
	ErrWrongPassword       = errors.New("current password is invalid")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)

// Password reset links stay valid (and new requests are throttled) for 2 hours.
const passwordResetTTL = 2 * time.Hour

type AuthService struct {
	db          *gorm.DB
	jwtSecret   string
	email       EmailService
	frontendURL string
}

func NewAuthService(db *gorm.DB, jwtSecret string, email EmailService, frontendURL string) *AuthService {
	return &AuthService{
		db:          db,
		jwtSecret:   jwtSecret,
		email:       email,
		frontendURL: strings.TrimRight(frontendURL, "/"),
	}
}

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.TrimSpace(req.Username)

	var existing models.User
	err := s.db.WithContext(ctx).Where("email = ? OR username = ?", email, username).First(&existing).Error
	if err == nil {
		if existing.Email == email {
			return nil, ErrEmailTaken
		}
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := models.User{
		Email:       email,
		Username:    username,
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		Password:    hashedPassword,
		Enabled:     true,
		LastLogin:   &now,
		NbConnexion: 1, // registration logs the user in
		Roles:       models.GetDefaultRoles(),
	}

	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.TokenResponse, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	if !user.Enabled {
		return nil, ErrUserDisabled
	}

	user.RecordLogin(time.Now())
	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*models.TokenResponse, error) {
	tokens, user, err := utils.RefreshAccessToken(ctx, s.db, s.jwtSecret, refreshToken)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, utils.ErrRefreshTokenExpired) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}
	if !user.Enabled {
		return nil, ErrUserDisabled
	}

	user.RecordLogin(time.Now())
	if err := s.db.WithContext(ctx).Model(user).Select("last_login", "nb_connexion").Updates(user).Error; err != nil {
		return nil, err
	}

	tokens.User = user
	return tokens, nil
}

func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	return utils.RevokeRefreshToken(ctx, s.db, refreshToken)
}

func (s *AuthService) LogoutAll(ctx context.Context, userID uuid.UUID) error {
	return utils.RevokeAllUserTokens(ctx, s.db, userID)
}

func (s *AuthService) GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfile changes the names shown on the leaderboard and, optionally, the username.
func (s *AuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, req models.UpdateProfileRequest) (*models.User, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if username != user.Username {
			var count int64
			if err := s.db.WithContext(ctx).Model(&models.User{}).
				Where("username = ? AND id <> ?", username, user.ID).
				Count(&count).Error; err != nil {
				return nil, err
			}
			if count > 0 {
				return nil, ErrUsernameTaken
			}
			user.Username = username
		}
	}
	if req.FirstName != nil {
		user.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		user.LastName = strings.TrimSpace(*req.LastName)
	}

	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, req models.ChangePasswordRequest) error {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if !utils.CheckPassword(req.CurrentPassword, user.Password) {
		return ErrWrongPassword
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.db.WithContext(ctx).Model(user).Update("password", hashedPassword).Error
}

// SendPasswordResetLink never reveals whether the email exists.
func (s *AuthService) SendPasswordResetLink(ctx context.Context, email string) error {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	// A recent request is still valid, do not issue another link
	if user.ConfirmationToken != nil && !user.IsPasswordRequestExpired(passwordResetTTL) {
		return nil
	}

	token, err := utils.GenerateSecureToken()
	if err != nil {
		return err
	}

	now := time.Now()
	user.ConfirmationToken = &token
	user.PasswordRequestedAt = &now
	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/auth/reset-password?token=%s", s.frontendURL, token)
	return s.email.SendPasswordResetEmail(user.Email, resetURL)
}

func (s *AuthService) ConfirmPasswordReset(ctx context.Context, req models.PasswordResetConfirmRequest) error {
	var user models.User
	if err := s.db.WithContext(ctx).Where("confirmation_token = ?", req.Token).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidResetToken
		}
		return err
	}
	if user.IsPasswordRequestExpired(passwordResetTTL) {
		return ErrInvalidResetToken
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.Password = hashedPassword
	user.ConfirmationToken = nil
	user.PasswordRequestedAt = nil
	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		return err
	}

	// Force every device to log in again with the new password.
	if err := utils.RevokeAllUserTokens(ctx, s.db, user.ID); err != nil {
		log.Printf("Warning: failed to revoke tokens of user %s after password reset: %v", user.ID, err)
	}
	return nil
}

// CleanExpiredTokens is run by the scheduler.
func (s *AuthService) CleanExpiredTokens(ctx context.Context) (int64, error) {
	return utils.CleanExpiredTokens(ctx, s.db)
}

func (s *AuthService) issueTokens(ctx context.Context, user models.User) (*models.TokenResponse, error) {
	tokens, err := utils.GenerateTokenPair(ctx, s.db, s.jwtSecret, user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}
	tokens.User = &user
	return tokens, nil
}
