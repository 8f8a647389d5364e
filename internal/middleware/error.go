package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ErrorHandler logs errors attached to the context and writes an
// error response when a handler aborted without writing one.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		requestID := c.GetString(ContextRequestID)
		for _, e := range c.Errors {
			log.Error().
				Err(e.Err).
				Str("request_id", requestID).
				Str("path", c.Request.URL.Path).
				Str("method", c.Request.Method).
				Msg("Request error")
		}

		if c.Writer.Written() {
			return
		}

		status := http.StatusInternalServerError
		if err, ok := c.Errors.Last().Err.(interface{ StatusCode() int }); ok {
			status = err.StatusCode()
		}
		c.JSON(status, gin.H{
			"status":  "error",
			"message": c.Errors.Last().Error(),
		})
	}
}
