package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	authMiddleware "prode-api/packages/auth/middleware"
	authModels "prode-api/packages/auth/models"
	authUtils "prode-api/packages/auth/utils"
	"prode-api/packages/core/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"invalid input", fmt.Errorf("scores must be non-negative: %w", services.ErrInvalidInput), http.StatusBadRequest, "invalid_input"},
		{"missing match", fmt.Errorf("match 9: %w", services.ErrNotFound), http.StatusNotFound, "not_found"},
		{"in progress", services.ErrMatchInProgress, http.StatusBadRequest, "submission_closed"},
		{"finished", services.ErrMatchFinished, http.StatusBadRequest, "submission_closed"},
		{"result already set", services.ErrResultAlreadySet, http.StatusConflict, "conflict"},
		{"upsert retry lost", fmt.Errorf("prediction of user x for match 1: %w", services.ErrConflict), http.StatusConflict, "conflict"},
		{"store down", fmt.Errorf("%w: %w", services.ErrStoreUnavailable, errors.New("connection refused")), http.StatusInternalServerError, "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/predictions", nil)

			respondError(c, tt.err, "Match not found")

			assert.Equal(t, tt.status, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body["code"])
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestActorUsesTokenEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	const secret = "test-secret"

	r := gin.New()
	r.GET("/whoami", authMiddleware.OptionalJWTMiddleware(secret), func(c *gin.Context) {
		c.String(http.StatusOK, actor(c))
	})

	token, err := authUtils.GenerateToken(secret, authModels.User{ID: uuid.New(), Email: "admin@prode.local"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, "admin@prode.local", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	assert.Equal(t, "anonymous", w.Body.String())
}
