package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"quoteurl/models"
	"quoteurl/services"
)

const userContextKey = "current_user"

var identityService = services.NewIdentityService()

// OptionalIdentity resolves a session token into the current account without
// rejecting anonymous requests. Accepts Authorization: Bearer <token> or the
// session cookie.
func OptionalIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token != "" {
			if user, err := identityService.CurrentUser(c.Request.Context(), token); err == nil {
				c.Set(userContextKey, user)
			}
		}
		c.Next()
	}
}

func sessionToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := c.Cookie("session"); err == nil {
		return cookie
	}
	return ""
}

// CurrentUser returns the identity OptionalIdentity put on the context, or
// nil for anonymous callers.
func CurrentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(userContextKey); ok {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}
