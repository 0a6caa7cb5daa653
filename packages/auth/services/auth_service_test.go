package services

import (
	"context"
	"net/url"
	"testing"
	"time"

	"prode-api/packages/auth/models"
	"prode-api/packages/auth/utils"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type recordingEmailService struct {
	to       string
	resetURL string
	sent     int
}

func (r *recordingEmailService) SendPasswordResetEmail(to, resetURL string) error {
	r.to = to
	r.resetURL = resetURL
	r.sent++
	return nil
}

func setupAuthService(t *testing.T) (*AuthService, *recordingEmailService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.RefreshToken{}))

	email := &recordingEmailService{}
	return NewAuthService(db, "secret", email, "http://localhost:3000/"), email, db
}

func register(t *testing.T, s *AuthService, email, username string) *models.TokenResponse {
	t.Helper()
	tokens, err := s.Register(context.Background(), models.RegisterRequest{
		Email:     email,
		Username:  username,
		Password:  "password123",
		FirstName: " Lucía ",
		LastName:  "Fernández",
	})
	require.NoError(t, err)
	return tokens
}

func TestRegisterIssuesTokens(t *testing.T) {
	s, _, _ := setupAuthService(t)

	tokens := register(t, s, "Lucia@Prode.local", "lucia")
	require.NotNil(t, tokens.User)
	assert.Equal(t, "lucia@prode.local", tokens.User.Email)
	assert.Equal(t, "Lucía Fernández", tokens.User.DisplayName())
	assert.True(t, tokens.User.HasRole(models.RoleUser))
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, "Bearer", tokens.TokenType)

	claims, err := utils.ParseToken("secret", tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, tokens.User.ID, claims.UserID)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	s, _, _ := setupAuthService(t)
	register(t, s, "lucia@prode.local", "lucia")

	_, err := s.Register(context.Background(), models.RegisterRequest{Email: "lucia@prode.local", Username: "other", Password: "password123"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = s.Register(context.Background(), models.RegisterRequest{Email: "other@prode.local", Username: "lucia", Password: "password123"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLogin(t *testing.T) {
	s, _, db := setupAuthService(t)
	register(t, s, "lucia@prode.local", "lucia")
	ctx := context.Background()

	tokens, err := s.Login(ctx, models.LoginRequest{Email: "lucia@prode.local", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)

	_, err = s.Login(ctx, models.LoginRequest{Email: "lucia@prode.local", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Login(ctx, models.LoginRequest{Email: "nobody@prode.local", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	require.NoError(t, db.Model(&models.User{}).Where("username = ?", "lucia").Update("enabled", false).Error)
	_, err = s.Login(ctx, models.LoginRequest{Email: "lucia@prode.local", Password: "password123"})
	assert.ErrorIs(t, err, ErrUserDisabled)
}

func TestRefreshRotatesToken(t *testing.T) {
	s, _, _ := setupAuthService(t)
	tokens := register(t, s, "lucia@prode.local", "lucia")
	ctx := context.Background()

	refreshed, err := s.Refresh(ctx, tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, tokens.RefreshToken, refreshed.RefreshToken)
	assert.Equal(t, tokens.User.ID, refreshed.User.ID)

	_, err = s.Refresh(ctx, tokens.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)

	require.NoError(t, s.Logout(ctx, refreshed.RefreshToken))
	_, err = s.Refresh(ctx, refreshed.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestUpdateProfile(t *testing.T) {
	s, _, _ := setupAuthService(t)
	lucia := register(t, s, "lucia@prode.local", "lucia")
	register(t, s, "mateo@prode.local", "mateo")
	ctx := context.Background()

	first, last := "Lu", ""
	user, err := s.UpdateProfile(ctx, lucia.User.ID, models.UpdateProfileRequest{FirstName: &first, LastName: &last})
	require.NoError(t, err)
	assert.Equal(t, "Lu", user.DisplayName())

	taken := "mateo"
	_, err = s.UpdateProfile(ctx, lucia.User.ID, models.UpdateProfileRequest{Username: &taken})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestChangePassword(t *testing.T) {
	s, _, _ := setupAuthService(t)
	tokens := register(t, s, "lucia@prode.local", "lucia")
	ctx := context.Background()

	err := s.ChangePassword(ctx, tokens.User.ID, models.ChangePasswordRequest{CurrentPassword: "nope", NewPassword: "newpassword"})
	assert.ErrorIs(t, err, ErrWrongPassword)

	require.NoError(t, s.ChangePassword(ctx, tokens.User.ID, models.ChangePasswordRequest{CurrentPassword: "password123", NewPassword: "newpassword"}))

	_, err = s.Login(ctx, models.LoginRequest{Email: "lucia@prode.local", Password: "newpassword"})
	assert.NoError(t, err)
}

func TestPasswordResetFlow(t *testing.T) {
	s, email, db := setupAuthService(t)
	tokens := register(t, s, "lucia@prode.local", "lucia")
	ctx := context.Background()

	require.NoError(t, s.SendPasswordResetLink(ctx, "nobody@prode.local"))
	assert.Zero(t, email.sent)

	require.NoError(t, s.SendPasswordResetLink(ctx, "lucia@prode.local"))
	require.Equal(t, 1, email.sent)
	assert.Equal(t, "lucia@prode.local", email.to)

	// A second request within the TTL is throttled
	require.NoError(t, s.SendPasswordResetLink(ctx, "lucia@prode.local"))
	assert.Equal(t, 1, email.sent)

	link, err := url.Parse(email.resetURL)
	require.NoError(t, err)
	assert.Equal(t, "/auth/reset-password", link.Path)
	token := link.Query().Get("token")
	require.NotEmpty(t, token)

	require.NoError(t, s.ConfirmPasswordReset(ctx, models.PasswordResetConfirmRequest{Token: token, NewPassword: "resetpass"}))

	// Existing sessions are revoked
	_, err = s.Refresh(ctx, tokens.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)

	_, err = s.Login(ctx, models.LoginRequest{Email: "lucia@prode.local", Password: "resetpass"})
	assert.NoError(t, err)

	err = s.ConfirmPasswordReset(ctx, models.PasswordResetConfirmRequest{Token: token, NewPassword: "again123"})
	assert.ErrorIs(t, err, ErrInvalidResetToken)

	expired := time.Now().Add(-3 * time.Hour)
	stale := "stale-token"
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", tokens.User.ID).
		Updates(map[string]interface{}{"confirmation_token": stale, "password_requested_at": expired}).Error)
	err = s.ConfirmPasswordReset(ctx, models.PasswordResetConfirmRequest{Token: stale, NewPassword: "again123"})
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}

func TestCleanExpiredTokens(t *testing.T) {
	s, _, db := setupAuthService(t)
	tokens := register(t, s, "lucia@prode.local", "lucia")

	require.NoError(t, db.Model(&models.RefreshToken{}).Where("token = ?", tokens.RefreshToken).
		Update("expires_at", time.Now().Add(-time.Hour)).Error)

	deleted, err := s.CleanExpiredTokens(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}
