package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campus-events/app/pkg/logger"
)

// userKey is the gin context key the identity middleware fills in.
const userKey = "user"

// Identity resolves the acting user for the request. The client may name a
// user via the X-User header; otherwise the configured default applies.
// This is identification, not authentication: the header is trusted.
func Identity(defaultUser string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.GetHeader("X-User")
		if user == "" {
			user = defaultUser
		}
		c.Set(userKey, user)
		c.Next()
	}
}

// currentUser returns the identity set by the Identity middleware.
func currentUser(c *gin.Context) string {
	return c.GetString(userKey)
}

// RequestLogger tags each request with an id and logs it on completion.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		log.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}
