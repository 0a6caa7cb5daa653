package middleware

import (
	"net/http"
	"strings"

	"prode-api/packages/auth/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	contextUserID    = "user_id"
	contextUserEmail = "user_email"
)

// JWTMiddleware rejects requests without a valid "Bearer <token>" header.
func JWTMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c, secret)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
				"code":  "unauthenticated",
			})
			return
		}
		c.Set(contextUserID, claims.UserID)
		c.Set(contextUserEmail, claims.Email)
		c.Next()
	}
}

// OptionalJWTMiddleware identifies the caller when a valid token is present and
// lets anonymous requests through otherwise.
func OptionalJWTMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := bearerClaims(c, secret); ok {
			c.Set(contextUserID, claims.UserID)
			c.Set(contextUserEmail, claims.Email)
		}
		c.Next()
	}
}

func bearerClaims(c *gin.Context, secret string) (*utils.Claims, bool) {
	header := c.GetHeader("Authorization")
	tokenString, found := strings.CutPrefix(header, "Bearer ")
	if !found || tokenString == "" {
		return nil, false
	}
	claims, err := utils.ParseToken(secret, strings.TrimSpace(tokenString))
	if err != nil {
		return nil, false
	}
	return claims, true
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(contextUserID)
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	return userID, ok && userID != uuid.Nil
}

func GetUserEmail(c *gin.Context) (string, bool) {
	value, exists := c.Get(contextUserEmail)
	if !exists {
		return "", false
	}
	email, ok := value.(string)
	return email, ok
}
