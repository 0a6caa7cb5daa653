package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"prode-api/config"
	_ "prode-api/docs" // Swagger docs
	"prode-api/packages/auth"
	"prode-api/packages/core"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// @title           Prode API
// @version         1.0
// @description     API del prode del mundial de clubes: pronósticos, resultados y ranking, con JWT
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  MIT
// @license.url   http://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey  BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		return err
	}

	gin.SetMode(cfg.GinMode)
	r := gin.Default()
	r.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))

	authModule := auth.NewModule(db, auth.Config{
		JWTSecret:            cfg.JWTSecret,
		MailDSN:              cfg.MailDSN,
		MailerEnvelopeSender: cfg.MailerEnvelopeSender,
		FrontendURL:          cfg.FrontendURL,
	})
	authModule.SetupRoutes(r)

	coreModule := core.NewModule(db, core.Config{
		InProgressWindow:         cfg.InProgressWindow,
		PredictionWindowEnforced: cfg.PredictionWindowEnforced,
	}, core.Middlewares{
		JWT:         authModule.JWTMiddleware(),
		OptionalJWT: authModule.OptionalJWTMiddleware(),
		RequireRole: authModule.RequireRole,
	}, authModule.AuthService)
	coreModule.SetupRoutes(r)

	// Swagger endpoint
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/health", healthHandler(db))

	if cfg.SchedulerEnabled {
		if err := coreModule.StartScheduler(); err != nil {
			return fmt.Errorf("failed to start scheduler: %w", err)
		}
		defer coreModule.StopScheduler()
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	log.Printf("Server starting on port %s", cfg.Port)
	return serve(srv, quit)
}

// serve runs srv until it fails or a signal arrives on quit, then shuts it down
// gracefully. A listen failure is returned to the caller so deferred cleanup runs.
func serve(srv *http.Server, quit <-chan os.Signal) error {
	serverErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-quit:
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	return nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}

	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Message  string `json:"message" example:"Server is running"`
	Database string `json:"database" example:"connected"`
}

// @Summary Health Check
// @Description Check if the server is running and database is connected
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func healthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, HealthResponse{
				Message:  "Server is running",
				Database: "unreachable",
			})
			return
		}
		c.JSON(http.StatusOK, HealthResponse{
			Message:  "Server is running",
			Database: "connected",
		})
	}
}
