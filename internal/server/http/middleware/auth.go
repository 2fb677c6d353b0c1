package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/grubtruck/grubtruck/internal/domain/model"
	pkgAuth "github.com/grubtruck/grubtruck/internal/pkg/auth"
	"github.com/grubtruck/grubtruck/internal/server/http/dto"
)

const (
	// PrincipalContextKey is a gin context key for the resolved principal.
	PrincipalContextKey = "principal"
	authCookieName      = "grubtruck_token"
)

// PrincipalResolver turns an opaque credential into the requesting principal.
type PrincipalResolver interface {
	Resolve(ctx context.Context, token string) (*model.Principal, error)
}

// AuthRequired resolves the caller's principal before the handler runs;
// anonymous and invalid credentials are rejected with 401.
func AuthRequired(resolver PrincipalResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
			return
		}

		principal, err := resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrInvalidToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
			return
		}

		c.Set(PrincipalContextKey, principal)
		c.Next()
	}
}

// RoleRequired rejects principals whose role does not match the operation's
// required role. Must run after AuthRequired.
func RoleRequired(role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, ok := c.Get(PrincipalContextKey)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
			return
		}
		principal, ok := val.(*model.Principal)
		if !ok || principal.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Error: "Forbidden"})
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes auth token cookie to response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}
