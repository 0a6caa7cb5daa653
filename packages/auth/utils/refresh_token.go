package utils

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"prode-api/packages/auth/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AccessTokenExpiry  = 15 * time.Minute
	RefreshTokenExpiry = 7 * 24 * time.Hour
)

var ErrRefreshTokenExpired = errors.New("refresh token expired")

// GenerateTokenPair issues an access token and a fresh refresh token.
func GenerateTokenPair(ctx context.Context, db *gorm.DB, secret string, user models.User) (*models.TokenResponse, error) {
	accessToken, err := GenerateToken(secret, user)
	if err != nil {
		return nil, err
	}

	refreshTokenString, err := GenerateSecureToken()
	if err != nil {
		return nil, err
	}

	// One active refresh token per user: older sessions are revoked on login.
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.RefreshToken{}).Error; err != nil {
			return err
		}
		return tx.Create(&models.RefreshToken{
			UserID:    user.ID,
			Token:     refreshTokenString,
			ExpiresAt: time.Now().Add(RefreshTokenExpiry),
		}).Error
	})
	if err != nil {
		return nil, err
	}

	return &models.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		ExpiresIn:    int64(AccessTokenExpiry.Seconds()),
		TokenType:    "Bearer",
	}, nil
}

// RefreshAccessToken rotates the refresh token and issues a new access token.
func RefreshAccessToken(ctx context.Context, db *gorm.DB, secret, refreshTokenString string) (*models.TokenResponse, *models.User, error) {
	var refreshToken models.RefreshToken
	if err := db.WithContext(ctx).Preload("User").Where("token = ?", refreshTokenString).First(&refreshToken).Error; err != nil {
		return nil, nil, err
	}

	if refreshToken.IsExpired() {
		db.WithContext(ctx).Delete(&refreshToken)
		return nil, nil, ErrRefreshTokenExpired
	}

	accessToken, err := GenerateToken(secret, refreshToken.User)
	if err != nil {
		return nil, nil, err
	}

	newRefreshTokenString, err := GenerateSecureToken()
	if err != nil {
		return nil, nil, err
	}

	refreshToken.Token = newRefreshTokenString
	refreshToken.ExpiresAt = time.Now().Add(RefreshTokenExpiry)
	if err := db.WithContext(ctx).Omit("User").Save(&refreshToken).Error; err != nil {
		return nil, nil, err
	}

	user := refreshToken.User
	return &models.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefreshTokenString,
		ExpiresIn:    int64(AccessTokenExpiry.Seconds()),
		TokenType:    "Bearer",
	}, &user, nil
}

func RevokeRefreshToken(ctx context.Context, db *gorm.DB, refreshTokenString string) error {
	return db.WithContext(ctx).Where("token = ?", refreshTokenString).Delete(&models.RefreshToken{}).Error
}

func RevokeAllUserTokens(ctx context.Context, db *gorm.DB, userID uuid.UUID) error {
	return db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.RefreshToken{}).Error
}

// CleanExpiredTokens deletes expired refresh tokens. Run by the scheduler.
func CleanExpiredTokens(ctx context.Context, db *gorm.DB) (int64, error) {
	result := db.WithContext(ctx).Where("expires_at < ?", time.Now()).Delete(&models.RefreshToken{})
	return result.RowsAffected, result.Error
}

// GenerateSecureToken returns 256 random bits, hex encoded.
func GenerateSecureToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
