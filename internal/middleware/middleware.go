package middleware

import (
	"fmt"
	"net/http"

	"github.com/adamingor/dodo-pizza-api/internal/auth"
	"github.com/gin-gonic/gin"
)

// RequireAuth verifies the signed session cookie and attaches the user
// identity to the request context. Handlers behind it can treat the current
// user id as a trusted input.
func RequireAuth(sessions *auth.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(auth.CookieName)
		if err != nil || cookie == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please sign in to continue"})
			c.Abort()
			return
		}

		userID, err := sessions.Verify(cookie)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "You are not authorized"})
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}

// CurrentUser returns the authenticated user id set by RequireAuth.
func CurrentUser(c *gin.Context) (uint, error) {
	value, exists := c.Get("userID")
	if !exists {
		return 0, fmt.Errorf("no authenticated user in context")
	}
	userID, ok := value.(uint)
	if !ok {
		return 0, fmt.Errorf("unexpected user id type %T", value)
	}
	return userID, nil
}
