package auth

import (
	"prode-api/packages/auth/handlers"
	"prode-api/packages/auth/middleware"
	"prode-api/packages/auth/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Config struct {
	JWTSecret            string
	MailDSN              string
	MailerEnvelopeSender string
	FrontendURL          string
}

type Module struct {
	Handler     *handlers.AuthHandler
	AuthService *services.AuthService
	db          *gorm.DB
	jwtSecret   string
}

func NewModule(db *gorm.DB, cfg Config) *Module {
	emailService := services.NewEmailService(cfg.MailDSN, cfg.MailerEnvelopeSender)
	authService := services.NewAuthService(db, cfg.JWTSecret, emailService, cfg.FrontendURL)

	return &Module{
		Handler:     handlers.NewAuthHandler(authService),
		AuthService: authService,
		db:          db,
		jwtSecret:   cfg.JWTSecret,
	}
}

func (m *Module) SetupRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", m.Handler.Register)
		auth.POST("/login", m.Handler.Login)
		auth.POST("/refresh", m.Handler.RefreshToken)
		auth.POST("/logout", m.Handler.Logout)
		auth.POST("/logout-all", m.JWTMiddleware(), m.Handler.LogoutAll)
		auth.POST("/reset-password/send-link", m.Handler.SendPasswordResetLink)
		auth.POST("/reset-password/confirm", m.Handler.ConfirmPasswordReset)
		auth.POST("/change-password", m.JWTMiddleware(), m.Handler.ChangePassword)
	}

	users := r.Group("/users")
	users.Use(m.JWTMiddleware())
	{
		users.GET("/me", m.Handler.Profile)
		users.PUT("/me", m.Handler.UpdateProfile)
	}
}

func (m *Module) JWTMiddleware() gin.HandlerFunc {
	return middleware.JWTMiddleware(m.jwtSecret)
}

func (m *Module) OptionalJWTMiddleware() gin.HandlerFunc {
	return middleware.OptionalJWTMiddleware(m.jwtSecret)
}

func (m *Module) RequireRole(role string) gin.HandlerFunc {
	return middleware.RequireRole(m.db, role)
}
