package middleware

import (
	"net/http"

	"eizer/internal/models"
	"eizer/internal/respond"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// RequireAuth rejects requests without a session identity.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		if sess.Get("user_id") == nil {
			respond.Error(c, http.StatusUnauthorized, respond.CodeUnauthorized, "Authentication required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects authenticated non-admin identities. Must run after
// RequireAuth so a missing session surfaces as UNAUTHORIZED, not FORBIDDEN.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		roleStr, _ := sess.Get("role").(string)
		if models.UserRole(roleStr) != models.RoleAdmin {
			respond.Error(c, http.StatusForbidden, respond.CodeForbidden, "Admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}
