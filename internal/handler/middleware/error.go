package middleware

import (
	"log/slog"
	"net/http"

	"internship-checkout/internal/handler/httperr"
	"internship-checkout/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler writes the last public error when a handler aborted without a
// body, and logs server-side failures with their stack origin.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, e := range c.Errors {
			resp, ok := e.Meta.(httperr.Response)
			if !ok || resp.Status < http.StatusInternalServerError {
				continue
			}
			slog.Error("request failed",
				slog.String("request_id", GetRequestID(c)),
				slog.Int("status", resp.Status),
				slog.Any("error", e.Err),
				slog.Any("origin", errs.ExtractStackLines(e.Err, 3)))
		}

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := err.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Internal server error"}})
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic",
					slog.String("request_id", GetRequestID(c)),
					slog.String("path", c.Request.URL.Path),
					slog.Any("error", err))

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"

				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
