package middleware

import (
	"log"
	"net/http"

	"feedline/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// SessionUserKey is the session key under which login stores the identity
// snapshot. ContextUserKey is where the gate places it for handlers.
const (
	SessionUserKey = "user"
	ContextUserKey = "sessionUser"
)

// RequireSession rejects requests whose session carries no user. On success
// the SessionUser is placed in the gin context as a typed value and the
// session is re-saved, which slides its 30-minute expiry window.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip for OPTIONS requests (CORS preflight)
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		session := sessions.Default(c)
		user, ok := session.Get(SessionUserKey).(models.SessionUser)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "User not authenticated or session expired",
			})
			c.Abort()
			return
		}

		if err := session.Save(); err != nil {
			log.Printf("session refresh failed: %v", err)
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// SessionUser returns the identity the gate attached to the context. The
// boolean is false only on routes that bypassed the gate.
func SessionUser(c *gin.Context) (models.SessionUser, bool) {
	user, ok := c.Get(ContextUserKey)
	if !ok {
		return models.SessionUser{}, false
	}
	su, ok := user.(models.SessionUser)
	return su, ok
}
