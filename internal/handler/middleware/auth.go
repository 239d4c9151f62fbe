package middleware

import (
	"log/slog"
	"strings"

	"playroom-booking/internal/domain/user"
	"playroom-booking/internal/pkg/cookie"
	"playroom-booking/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// TokenValidator verifies tokens minted by the auth service.
type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
}

const ctxIdentityKey = "identity"

func NewAuthMiddleware(tokenValidator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// OptionalAuth identifies the caller when a valid token is present. Guests and
// invalid tokens continue as guests; the raw token is forwarded upstream.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Debug("Ignoring invalid token on optional auth", "error", err.Error())
			c.Next()
			return
		}

		role, err := user.NewRole(claims.Role)
		if err != nil {
			role = user.RoleCustomer
		}
		id := user.Identity{
			UserID: claims.UserID,
			Role:   role,
			Name:   claims.Name,
			Email:  claims.Email,
			Phone:  claims.Phone,
		}

		c.Set(ctxIdentityKey, id)
		c.Request = c.Request.WithContext(jwt.ContextWithToken(c.Request.Context(), token))
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

// GetIdentity returns the caller, or the guest identity when unauthenticated.
func GetIdentity(c *gin.Context) user.Identity {
	v, exists := c.Get(ctxIdentityKey)
	if !exists {
		return user.Identity{}
	}
	id, _ := v.(user.Identity)
	return id
}
