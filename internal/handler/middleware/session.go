package middleware

import (
	"playroom-booking/internal/handler/httperr"
	"playroom-booking/internal/pkg/cookie"
	"playroom-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

const ctxSessionIDKey = "session_id"

// RequireSession resolves the booking session from the cookie or header. Whether
// the session still exists is left to the usecase.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := cookie.GetSessionID(c)
		if id == "" {
			httperr.Abort(c, httperr.NoSession, shared.ErrSessionNotFound, nil)
			return
		}
		c.Set(ctxSessionIDKey, id)
		c.Next()
	}
}

func GetSessionID(c *gin.Context) string {
	if v, exists := c.Get(ctxSessionIDKey); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
