package core

import (
	"log"
	"time"

	authModels "prode-api/packages/auth/models"
	"prode-api/packages/core/cron"
	"prode-api/packages/core/handlers"
	"prode-api/packages/core/repository"
	"prode-api/packages/core/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Config struct {
	InProgressWindow         time.Duration
	PredictionWindowEnforced bool
}

// Middlewares are provided by the auth module.
type Middlewares struct {
	JWT         gin.HandlerFunc
	OptionalJWT gin.HandlerFunc
	RequireRole func(role string) gin.HandlerFunc
}

type Module struct {
	MatchHandler        *handlers.MatchHandler
	MatchService        *services.MatchService
	PredictionHandler   *handlers.PredictionHandler
	PredictionService   *services.PredictionService
	RankingHandler      *handlers.RankingHandler
	RankingService      *services.RankingService
	ResultsWatchService *services.ResultsWatchService
	Scheduler           *cron.Scheduler
	middlewares         Middlewares
}

func NewModule(db *gorm.DB, cfg Config, middlewares Middlewares, tokens cron.TokenCleaner) *Module {
	matchRepository := repository.NewMatchRepository(db)
	predictionRepository := repository.NewPredictionRepository(db)
	userRepository := repository.NewUserRepository(db)

	matchService := services.NewMatchService(matchRepository, cfg.InProgressWindow)
	matchHandler := handlers.NewMatchHandler(matchService)

	predictionService := services.NewPredictionService(predictionRepository, matchRepository, cfg.InProgressWindow, cfg.PredictionWindowEnforced)
	predictionHandler := handlers.NewPredictionHandler(predictionService)

	rankingService := services.NewRankingService(predictionRepository, matchRepository, userRepository)
	rankingHandler := handlers.NewRankingHandler(rankingService)

	resultsWatchService := services.NewResultsWatchService(matchRepository, cfg.InProgressWindow)
	scheduler := cron.NewScheduler(tokens, resultsWatchService)

	if !cfg.PredictionWindowEnforced {
		log.Println("Warning: prediction window is not enforced, predictions are accepted at any time")
	}

	return &Module{
		MatchHandler:        matchHandler,
		MatchService:        matchService,
		PredictionHandler:   predictionHandler,
		PredictionService:   predictionService,
		RankingHandler:      rankingHandler,
		RankingService:      rankingService,
		ResultsWatchService: resultsWatchService,
		Scheduler:           scheduler,
		middlewares:         middlewares,
	}
}

func (m *Module) SetupRoutes(r *gin.Engine) {
	admin := m.middlewares.RequireRole(authModels.RoleAdmin)

	matches := r.Group("/matches")
	{
		matches.GET("", m.MatchHandler.GetMatches)
		matches.GET("/:id", m.MatchHandler.GetMatch)
		matches.POST("", m.middlewares.JWT, admin, m.MatchHandler.CreateMatch)
		matches.PATCH("/:id/result", m.middlewares.JWT, admin, m.MatchHandler.SetResult)
	}

	predictions := r.Group("/predictions")
	predictions.Use(m.middlewares.JWT)
	{
		predictions.POST("", m.PredictionHandler.SubmitPrediction)
		predictions.GET("", m.PredictionHandler.GetPrediction)
		predictions.GET("/me", m.PredictionHandler.GetMyPredictions)
	}

	r.GET("/ranking", m.middlewares.OptionalJWT, m.RankingHandler.GetRanking)
}

// StartScheduler starts the cron scheduler for maintenance jobs
func (m *Module) StartScheduler() error {
	log.Println("Starting core module scheduler...")
	return m.Scheduler.Start()
}

// StopScheduler stops the cron scheduler
func (m *Module) StopScheduler() {
	log.Println("Stopping core module scheduler...")
	m.Scheduler.Stop()
}
