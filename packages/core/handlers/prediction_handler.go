package handlers

import (
	"errors"
	"net/http"

	authMiddleware "prode-api/packages/auth/middleware"
	authUtils "prode-api/packages/auth/utils"
	"prode-api/packages/core/models"
	"prode-api/packages/core/services"

	"github.com/gin-gonic/gin"
)

type PredictionHandler struct {
	predictionService *services.PredictionService
}

func NewPredictionHandler(predictionService *services.PredictionService) *PredictionHandler {
	return &PredictionHandler{predictionService: predictionService}
}

// SubmitPrediction creates or replaces the caller's prediction for a match
// @Summary Submit a prediction
// @Description Save the predicted score of a match. Resubmitting overwrites the previous prediction. Only upcoming matches accept predictions.
// @Tags predictions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param prediction body models.SubmitPredictionRequest true "Prediction (scores as numbers or numeric strings)"
// @Success 200 {object} models.Prediction
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /predictions [post]
func (h *PredictionHandler) SubmitPrediction(c *gin.Context) {
	userID, ok := authMiddleware.GetUserID(c)
	if !ok {
		unauthenticated(c)
		return
	}

	var req models.SubmitPredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidInput(c, authUtils.ValidationMessage(err))
		return
	}

	prediction, err := h.predictionService.Submit(c.Request.Context(), userID, req.MatchID, req.PredictedHomeScore, req.PredictedAwayScore)
	if err != nil {
		respondError(c, err, "Match not found")
		return
	}

	c.JSON(http.StatusOK, prediction)
}

// GetPrediction returns the caller's prediction for a match
// @Summary Get own prediction
// @Description Get the caller's prediction for one match. data is null when the caller has not predicted it yet.
// @Tags predictions
// @Security BearerAuth
// @Produce json
// @Param match_id query int true "Match ID"
// @Success 200 {object} models.PredictionLookup
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /predictions [get]
func (h *PredictionHandler) GetPrediction(c *gin.Context) {
	userID, ok := authMiddleware.GetUserID(c)
	if !ok {
		unauthenticated(c)
		return
	}

	matchID, ok := parseID(c.Query("match_id"))
	if !ok {
		invalidInput(c, "Invalid match_id parameter")
		return
	}

	prediction, err := h.predictionService.Get(c.Request.Context(), userID, matchID)
	if err != nil && !errors.Is(err, services.ErrNotFound) {
		respondError(c, err, "Prediction not found")
		return
	}

	c.JSON(http.StatusOK, models.PredictionLookup{Data: prediction})
}

// GetMyPredictions returns the caller's prode
// @Summary Get own prode
// @Description Every match with the caller's prediction, the points it earned and the totals
// @Tags predictions
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.UserSummary
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /predictions/me [get]
func (h *PredictionHandler) GetMyPredictions(c *gin.Context) {
	userID, ok := authMiddleware.GetUserID(c)
	if !ok {
		unauthenticated(c)
		return
	}

	summary, err := h.predictionService.GetUserSummary(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Predictions not found")
		return
	}

	c.JSON(http.StatusOK, summary)
}
