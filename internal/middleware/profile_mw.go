package middleware

import (
	"net/http"

	"acme_dashboard/internal/model"

	"github.com/gin-gonic/gin"
)

// ProfileMiddleware creates a middleware to check for specific user profiles
func ProfileMiddleware(allowedProfiles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		profileVal, exists := c.Get(AuthProfileKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Profile not found in token, ensure JWT middleware runs first"})
			return
		}

		userProfile, ok := profileVal.(string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid profile type in token"})
			return
		}

		isAllowed := false
		for _, allowed := range allowedProfiles {
			if userProfile == allowed {
				isAllowed = true
				break
			}
		}

		if !isAllowed {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You do not have permission to access this resource"})
			return
		}

		c.Next()
	}
}

// AdminMiddleware restricts a route to the admin profile
func AdminMiddleware() gin.HandlerFunc {
	return ProfileMiddleware(model.ProfileAdmin)
}
