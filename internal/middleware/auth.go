package middleware

import (
	"net/http"
	"strings"

	"github.com/1mdc/discourse-follow/internal/token"

	"github.com/gin-gonic/gin"
)

// UserIDKey is the gin context key holding the authenticated user id.
const UserIDKey = "user_id"

// JWTAuth rejects requests without a valid Bearer token and sets the
// authenticated user id in the context.
func JWTAuth(ts token.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c, ts)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid authorization"})
			return
		}
		c.Set(UserIDKey, claims.UserID)
		c.Next()
	}
}

// OptionalJWTAuth sets the user id when a valid Bearer token is present
// but never rejects the request. Handlers that need an acting user decide
// what an anonymous request means.
func OptionalJWTAuth(ts token.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := bearerClaims(c, ts); ok {
			c.Set(UserIDKey, claims.UserID)
		}
		c.Next()
	}
}

// CurrentUserID returns the authenticated user id from the context, if any.
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

func bearerClaims(c *gin.Context, ts token.TokenService) (*token.Claims, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil, false
	}
	claims, err := ts.ParseAccessToken(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return nil, false
	}
	return claims, true
}
