package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const ageCookieName = "age_verified"

// AgeGateMiddleware requires the one-time age acknowledgement cookie on
// content routes. The acknowledgement itself is set by AcknowledgeAge.
func AgeGateMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if v, err := c.Cookie(ageCookieName); err != nil || v != "true" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Age verification required"})
			return
		}
		c.Next()
	}
}

// AcknowledgeAge sets the durable age-gate acknowledgement cookie.
func AcknowledgeAge(c *gin.Context) {
	c.SetCookie(ageCookieName, "true", int((365 * 24 * time.Hour).Seconds()), "/", "", false, true)
}
