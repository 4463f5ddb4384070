package middleware

import (
	"net/http"
	"strings"

	"travellounge/internal/services"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey   = "userID"
	userRoleKey = "userRole"
)

// TokenParser validates a bearer token.
type TokenParser interface {
	Parse(token string) (services.Claims, error)
}

func abortJSON(c *gin.Context, status int, code, msg string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error":      msg,
		"code":       code,
		"request_id": GetRequestID(c),
	})
}

// RequireAuth accepts "Authorization: Bearer <jwt>". Browsers cannot set
// headers on a websocket handshake, so a ?token= query value is also read.
func RequireAuth(p TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimSpace(c.GetHeader("Authorization"))
		if token == "" {
			token = strings.TrimSpace(c.Query("token"))
		}
		if token == "" {
			abortJSON(c, http.StatusUnauthorized, "unauthorized", "missing token")
			return
		}
		claims, err := p.Parse(token)
		if err != nil {
			abortJSON(c, http.StatusUnauthorized, "unauthorized", err.Error())
			return
		}
		c.Set(userIDKey, claims.UserID)
		c.Set(userRoleKey, claims.Role)
		c.Next()
	}
}

// RequireRoles is role-based access control; RequireAuth must run first.
//
//	admin.DELETE("/users/:id", RequireRoles("admin"), handler)
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[strings.ToLower(strings.TrimSpace(r))] = struct{}{}
	}

	return func(c *gin.Context) {
		role := strings.ToLower(strings.TrimSpace(c.GetString(userRoleKey)))
		if role == "" {
			abortJSON(c, http.StatusUnauthorized, "unauthorized", "no role in context")
			return
		}
		if _, ok := allowed[role]; !ok {
			abortJSON(c, http.StatusForbidden, "forbidden", "role not allowed")
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user id, or 0.
func UserID(c *gin.Context) int64 {
	return c.GetInt64(userIDKey)
}

// UserRole returns the authenticated role, or "".
func UserRole(c *gin.Context) string {
	return c.GetString(userRoleKey)
}
