package middleware

import (
	"net/http"

	"prode-api/packages/auth/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RequireRole rejects callers that do not hold requiredRole.
// Must run after JWTMiddleware.
func RequireRole(db *gorm.DB, requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := GetUserID(c)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized", "code": "unauthenticated"})
			return
		}

		var user models.User
		if err := db.WithContext(c.Request.Context()).First(&user, "id = ?", userID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found", "code": "unauthenticated"})
			return
		}

		if !user.Enabled || !user.HasRole(requiredRole) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":         "Insufficient permissions",
				"code":          "forbidden",
				"required_role": requiredRole,
			})
			return
		}

		c.Set("user_roles", user.Roles)
		c.Next()
	}
}
