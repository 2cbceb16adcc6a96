package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler is a middleware that catches panics and returns a structured
// 500 response instead of tearing down the request with an empty body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"message": "Internal Server Error",
					"error":   "an unexpected error occurred",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}
