//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"playroom-booking/internal/domain/draft"
	"playroom-booking/internal/handler/api"
	"playroom-booking/internal/handler/middleware"
	"playroom-booking/internal/usecase/shared"
	"playroom-booking/tests/common/httptest"
	queriesmock "playroom-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newCatalogRouter(t *testing.T) (*gin.Engine, *queriesmock.MockCatalogQueries) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	q := queriesmock.NewMockCatalogQueries(ctrl)
	h := api.NewCatalogHandler(q)

	r := gin.New()
	g := r.Group("/catalog", middleware.RequireSession())
	g.GET("/rooms", h.Rooms)
	g.GET("/units", h.Units)
	g.GET("/fnbs", h.Fnbs)
	return r, q
}

func TestCatalogHandler_Rooms(t *testing.T) {
	r, q := newCatalogRouter(t)
	q.EXPECT().Rooms(gomock.Any(), sessionID).
		Return([]draft.Room{{ID: "room-vip", Name: "VIP", MaxVisitors: 4}}, nil)

	rec := httptest.PerformRequestWithCookies(t, r, http.MethodGet, "/catalog/rooms", nil, sessionCookie(), "")

	var body []map[string]any
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
	assert.Len(t, body, 1)
}

func TestCatalogHandler_FnbsUnavailable(t *testing.T) {
	r, q := newCatalogRouter(t)
	q.EXPECT().Fnbs(gomock.Any()).Return(nil, shared.ErrUpstreamUnavailable)

	rec := httptest.PerformRequestWithCookies(t, r, http.MethodGet, "/catalog/fnbs", nil, sessionCookie(), "")
	httptest.AssertErrorResponse(t, rec, http.StatusServiceUnavailable, "Booking service is unavailable")
}

func TestCatalogHandler_RequiresSession(t *testing.T) {
	r, _ := newCatalogRouter(t)

	rec := httptest.PerformRequest(t, r, http.MethodGet, "/catalog/units", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "No active booking draft")
}
