package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	authUtils "prode-api/packages/auth/utils"
	"prode-api/packages/core/models"
	"prode-api/packages/core/services"

	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matchService *services.MatchService
}

func NewMatchHandler(matchService *services.MatchService) *MatchHandler {
	return &MatchHandler{matchService: matchService}
}

// GetMatches lists the fixture
// @Summary Get matches
// @Description Get the fixture ordered by kick-off time, each match with its prediction status
// @Tags matches
// @Produce json
// @Param date_from query string false "Filter from date (YYYY-MM-DD format)"
// @Param date_to query string false "Filter to date, inclusive (YYYY-MM-DD format)"
// @Param stage query string false "Filter by stage (e.g. Group A, Round of 16)"
// @Param upcoming query bool false "Only matches that are upcoming or being played"
// @Success 200 {array} models.MatchView
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /matches [get]
func (h *MatchHandler) GetMatches(c *gin.Context) {
	if c.Query("upcoming") == "true" {
		matches, err := h.matchService.ListUpcoming(c.Request.Context())
		if err != nil {
			respondError(c, err, "Matches not found")
			return
		}
		c.JSON(http.StatusOK, matches)
		return
	}

	var filter services.MatchFilter

	if dateFromStr := c.Query("date_from"); dateFromStr != "" {
		dateFrom, err := time.Parse("2006-01-02", dateFromStr)
		if err != nil {
			invalidInput(c, "Invalid date_from format. Use YYYY-MM-DD")
			return
		}
		filter.DateFrom = &dateFrom
	}

	if dateToStr := c.Query("date_to"); dateToStr != "" {
		dateTo, err := time.Parse("2006-01-02", dateToStr)
		if err != nil {
			invalidInput(c, "Invalid date_to format. Use YYYY-MM-DD")
			return
		}
		// Include the whole day
		dateTo = dateTo.Add(24 * time.Hour)
		filter.DateTo = &dateTo
	}

	if stage := strings.TrimSpace(c.Query("stage")); stage != "" {
		filter.Stage = &stage
	}

	matches, err := h.matchService.ListMatches(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Matches not found")
		return
	}

	c.JSON(http.StatusOK, matches)
}

// GetMatch returns one match
// @Summary Get a match
// @Description Get a match with its status and whether it still accepts predictions
// @Tags matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} models.MatchView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /matches/{id} [get]
func (h *MatchHandler) GetMatch(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		invalidInput(c, "Invalid match ID")
		return
	}

	match, err := h.matchService.GetMatch(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Match not found")
		return
	}

	c.JSON(http.StatusOK, match)
}

// CreateMatch adds a match to the fixture
// @Summary Create a match
// @Description Add a fixture match (admin only)
// @Tags matches
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param match body models.CreateMatchRequest true "Match data"
// @Success 201 {object} models.MatchView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /matches [post]
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	var req models.CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidInput(c, authUtils.ValidationMessage(err))
		return
	}

	match, err := h.matchService.CreateMatch(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Match not found")
		return
	}

	log.Printf("Match %d (%s vs %s) created by %s", match.ID, match.HomeTeam, match.AwayTeam, actor(c))
	c.JSON(http.StatusCreated, match)
}

// SetResult records the final score of a match
// @Summary Record a match result
// @Description Record the final score of a match once it has kicked off (admin only, once per match)
// @Tags matches
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Match ID"
// @Param result body models.SetResultRequest true "Final score"
// @Success 200 {object} models.MatchView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /matches/{id}/result [patch]
func (h *MatchHandler) SetResult(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		invalidInput(c, "Invalid match ID")
		return
	}

	var req models.SetResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidInput(c, authUtils.ValidationMessage(err))
		return
	}

	match, err := h.matchService.SetResult(c.Request.Context(), id, *req.HomeScore, *req.AwayScore)
	if err != nil {
		respondError(c, err, "Match not found")
		return
	}

	log.Printf("Result %d-%d recorded for match %d by %s", *req.HomeScore, *req.AwayScore, id, actor(c))
	c.JSON(http.StatusOK, match)
}
