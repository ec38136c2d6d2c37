package middleware

import (
	"eizer/internal/database"
	"eizer/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const currentUserKey = "CurrentUser"

// InjectUser resolves the session identity into a full user record for
// handlers that need the caller, not just the role.
func InjectUser(store *database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		if uidRaw := sess.Get("user_id"); uidRaw != nil {
			if uid, ok := uidRaw.(uint); ok && uid > 0 {
				if user, err := store.GetUserByID(uid); err == nil && user != nil {
					c.Set(currentUserKey, *user)
				}
			}
		}

		c.Next()
	}
}

// CurrentUser returns the resolved caller, if any.
func CurrentUser(c *gin.Context) (models.User, bool) {
	val, ok := c.Get(currentUserKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := val.(models.User)
	return user, ok
}
