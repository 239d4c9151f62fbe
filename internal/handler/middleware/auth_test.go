//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"playroom-booking/internal/domain/user"
	"playroom-booking/internal/handler/middleware"
	"playroom-booking/internal/pkg/config"
	"playroom-booking/internal/pkg/cookie"
	"playroom-booking/internal/pkg/jwt"
	"playroom-booking/tests/common/authtest"
	"playroom-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type seen struct {
	Guest bool   `json:"guest"`
	Role  string `json:"role"`
	Name  string `json:"name"`
	Token string `json:"token"`
}

func newAuthRouter(t *testing.T) (*gin.Engine, *authtest.JWTHelper) {
	gin.SetMode(gin.TestMode)
	helper := authtest.NewJWTHelper(config.NewTestConfig().JWT)
	mw := middleware.NewAuthMiddleware(helper.Service(t))

	r := gin.New()
	r.GET("/whoami", mw.OptionalAuth(), func(c *gin.Context) {
		id := middleware.GetIdentity(c)
		c.JSON(http.StatusOK, seen{
			Guest: id.IsGuest(),
			Role:  string(id.Role),
			Name:  id.Name,
			Token: jwt.TokenFromContext(c.Request.Context()),
		})
	})
	return r, helper
}

func TestOptionalAuth(t *testing.T) {
	staff := user.Identity{UserID: uuid.New(), Role: user.RoleOperator, Name: "Sari"}

	t.Run("guest without a token", func(t *testing.T) {
		r, _ := newAuthRouter(t)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/whoami", nil, "")

		var body seen
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.True(t, body.Guest)
		assert.Empty(t, body.Token)
	})

	t.Run("bearer token identifies the caller", func(t *testing.T) {
		r, helper := newAuthRouter(t)
		token := helper.GenerateToken(t, staff)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/whoami", nil, token)

		var body seen
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.False(t, body.Guest)
		assert.Equal(t, "operator", body.Role)
		assert.Equal(t, "Sari", body.Name)
		assert.Equal(t, token, body.Token, "raw token is forwarded upstream")
	})

	t.Run("cookie token is preferred", func(t *testing.T) {
		r, helper := newAuthRouter(t)
		token := helper.GenerateToken(t, staff)

		rec := httptest.PerformRequestWithCookies(t, r, http.MethodGet, "/whoami", nil,
			[]*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: token}}, "garbage")

		var body seen
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, "operator", body.Role)
	})

	t.Run("expired token continues as guest", func(t *testing.T) {
		r, helper := newAuthRouter(t)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/whoami", nil, helper.CreateExpiredToken(t, staff))

		var body seen
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.True(t, body.Guest)
	})

	t.Run("unknown role falls back to customer", func(t *testing.T) {
		r, helper := newAuthRouter(t)
		token := helper.GenerateToken(t, user.Identity{UserID: uuid.New(), Role: "superuser"})

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/whoami", nil, token)

		var body seen
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, "customer", body.Role)
	})
}
