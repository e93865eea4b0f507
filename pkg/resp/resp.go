package resp

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/pkg/apperr"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "code": "validation_error", "error": msg})
}

func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "code": "auth_error", "error": msg})
}

func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"ok": false, "code": "forbidden", "error": msg})
}

func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "code": "internal", "error": err.Error()})
}

// Error maps taxonomy errors onto their status and stable code; anything
// else is a 500.
func Error(c *gin.Context, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		c.JSON(ae.Status(), gin.H{"ok": false, "code": ae.Code, "error": ae.Message})
		return
	}
	ServerError(c, err)
}
