package middleware

import (
	"log/slog"
	"net/http"

	"playroom-booking/internal/handler/httperr"
	"playroom-booking/internal/pkg/cookie"
	"playroom-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const stackLines = 12

// ErrorHandler renders the last public error if the handler wrote nothing, and
// logs the underlying cause of every server-side fault with its stack.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, e := range c.Errors {
			resp, ok := e.Meta.(httperr.Response)
			if !ok || resp.Status >= http.StatusInternalServerError {
				logger.Error("Request failed",
					slog.String("request_id", GetRequestID(c)),
					slog.String("session_id", cookie.GetSessionID(c)),
					slog.String("error", e.Err.Error()),
					slog.Any("stack", errs.ExtractStackLines(e.Err, stackLines)),
				)
			}
		}

		if c.Writer.Written() {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if err.IsType(gin.ErrorTypePublic) {
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.NewResponse(httperr.Internal, nil))
	}
}

func CustomRecovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("recovered from panic",
					slog.Any("panic", rec),
					slog.String("path", c.Request.URL.Path),
					slog.String("request_id", GetRequestID(c)),
					slog.String("session_id", cookie.GetSessionID(c)),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.NewResponse(httperr.Internal, nil))
			}
		}()
		c.Next()
	}
}
