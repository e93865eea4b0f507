package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/pkg/resp"
	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/utils"
)

// AuthMiddleware validates the bearer access token and puts the caller's
// identity on the context.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c, "missing or invalid token")
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims, err := utils.ParseAccessToken(tokenStr, secret)
		if err != nil {
			resp.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		c.Set("userId", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("isStaff", claims.IsStaff)
		c.Next()
	}
}

// StaffOnly gates reporting endpoints; requires AuthMiddleware upstream.
func StaffOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !utils.CurrentIsStaff(c) {
			resp.Forbidden(c, "staff only")
			c.Abort()
			return
		}
		c.Next()
	}
}
