package handlers

import (
	"net/http"

	authMiddleware "prode-api/packages/auth/middleware"
	"prode-api/packages/core/services"

	"github.com/gin-gonic/gin"
)

type RankingHandler struct {
	rankingService *services.RankingService
}

func NewRankingHandler(rankingService *services.RankingService) *RankingHandler {
	return &RankingHandler{rankingService: rankingService}
}

// GetRanking returns the leaderboard
// @Summary Get the ranking
// @Description Participants ordered by points, then exact and winner predictions. With a token, the caller's entry is flagged.
// @Tags ranking
// @Produce json
// @Success 200 {array} models.RankingEntry
// @Failure 500 {object} map[string]string
// @Router /ranking [get]
func (h *RankingHandler) GetRanking(c *gin.Context) {
	// uuid.Nil when anonymous
	userID, _ := authMiddleware.GetUserID(c)

	ranking, err := h.rankingService.GetRanking(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Ranking not found")
		return
	}

	c.JSON(http.StatusOK, ranking)
}
