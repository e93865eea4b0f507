package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/pkg/logger"
)

// RequestIDMiddleware tags each request with a unique id, reusing the
// caller's when provided.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(logger.RequestIDKey)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header(logger.RequestIDKey, requestID)
		c.Set(logger.RequestIDKey, requestID)
		c.Next()
	}
}
