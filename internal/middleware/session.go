// internal/middleware/session.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/heritage-goods/storefront-backend/internal/utils"
)

// Session pins an anonymous session id to every request. A valid
// X-Session-Token is honored; anything else gets a fresh token echoed back in
// the response header for the frontend to store.
func Session(ttlHours int) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-Session-Token")
		if token != "" {
			if claims, err := utils.ValidateSessionToken(token); err == nil {
				c.Set("session_id", claims.SessionID)
				c.Next()
				return
			}
		}

		signed, sessionID, err := utils.GenerateSessionToken(ttlHours)
		if err != nil {
			logrus.WithError(err).Error("Failed to issue session token")
			utils.InternalErrorResponse(c, "")
			c.Abort()
			return
		}

		c.Header("X-Session-Token", signed)
		c.Set("session_id", sessionID)
		c.Next()
	}
}
