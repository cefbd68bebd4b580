package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/notemart/notemart/internal/domain/model"
	"github.com/notemart/notemart/internal/server/http/dto"
)

const (
	// UserIDContextKey holds the authenticated user id in the gin context.
	UserIDContextKey = "auth.userID"
	// RoleContextKey holds the authenticated user role in the gin context.
	RoleContextKey = "auth.role"

	authCookieName = "auth_token"
)

// TokenParser resolves a bearer token into user identity and role.
type TokenParser interface {
	ParseToken(token string) (int64, model.Role, error)
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// AuthRequired rejects requests without a valid token.
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail("authentication required"))
			return
		}

		userID, role, err := parser.ParseToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail("invalid or expired token"))
			return
		}

		c.Set(UserIDContextKey, userID)
		c.Set(RoleContextKey, role)
		c.Next()
	}
}

// OptionalAuth attaches identity when a valid token is present but lets
// anonymous requests through.
func OptionalAuth(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractToken(c); token != "" {
			if userID, role, err := parser.ParseToken(token); err == nil {
				c.Set(UserIDContextKey, userID)
				c.Set(RoleContextKey, role)
			}
		}
		c.Next()
	}
}

// AdminRequired rejects non-admin callers. It must run after AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get(RoleContextKey)
		if !ok || role.(model.Role) != model.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.Fail("admin access required"))
			return
		}
		c.Next()
	}
}

// SetAuthCookie mirrors the issued token into an http-only cookie so browser
// clients stay logged in without storing the token themselves.
func SetAuthCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(authCookieName, token, maxAge, "/", "", false, true)
}
