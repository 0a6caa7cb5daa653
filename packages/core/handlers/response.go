package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	authMiddleware "prode-api/packages/auth/middleware"
	"prode-api/packages/core/services"

	"github.com/gin-gonic/gin"
)

// respondError translates service errors into the API error shape.
func respondError(c *gin.Context, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "invalid_input"})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMessage, "code": "not_found"})
	case errors.Is(err, services.ErrMatchInProgress):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Match already started, predictions are closed", "code": "submission_closed"})
	case errors.Is(err, services.ErrSubmissionClosed):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Match already finished, predictions are closed", "code": "submission_closed"})
	case errors.Is(err, services.ErrResultAlreadySet):
		c.JSON(http.StatusConflict, gin.H{"error": "Match result already recorded", "code": "conflict"})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Concurrent update, please retry", "code": "conflict"})
	default:
		log.Printf("Internal error on %s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "code": "internal"})
	}
}

func invalidInput(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message, "code": "invalid_input"})
}

func unauthenticated(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required", "code": "unauthenticated"})
}

// actor names the authenticated caller in audit log lines.
func actor(c *gin.Context) string {
	if email, ok := authMiddleware.GetUserEmail(c); ok && email != "" {
		return email
	}
	if userID, ok := authMiddleware.GetUserID(c); ok {
		return userID.String()
	}
	return "anonymous"
}

func parseID(value string) (uint, bool) {
	id, err := strconv.ParseUint(value, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
