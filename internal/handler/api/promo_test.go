//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"playroom-booking/internal/domain/draft"
	"playroom-booking/internal/domain/promo"
	"playroom-booking/internal/handler/api"
	"playroom-booking/internal/handler/middleware"
	"playroom-booking/internal/usecase/commands"
	"playroom-booking/internal/usecase/queries"
	"playroom-booking/internal/usecase/shared"
	"playroom-booking/tests/common/httptest"
	commandsmock "playroom-booking/tests/mock/commands"
	queriesmock "playroom-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PromoRewardHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockPromo   *commandsmock.MockPromoCommands
	mockReward  *commandsmock.MockRewardCommands
	mockQueries *queriesmock.MockDraftQueries
}

func (s *PromoRewardHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockPromo = commandsmock.NewMockPromoCommands(s.mockCtrl)
	s.mockReward = commandsmock.NewMockRewardCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockDraftQueries(s.mockCtrl)
	promoHandler := api.NewPromoHandler(s.mockPromo, s.mockQueries)
	rewardHandler := api.NewRewardHandler(s.mockReward, s.mockQueries)

	g := s.router.Group("/draft", middleware.RequireSession())
	g.POST("/promo", promoHandler.Apply)
	g.DELETE("/promo", promoHandler.Remove)
	g.POST("/reward", rewardHandler.Apply)
	g.POST("/reward/refresh", rewardHandler.Refresh)
}

func (s *PromoRewardHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPromoRewardHandlerSuite(t *testing.T) {
	suite.Run(t, new(PromoRewardHandlerTestSuite))
}

func (s *PromoRewardHandlerTestSuite) expectView() {
	s.mockQueries.EXPECT().GetDraft(gomock.Any(), sessionID, gomock.Any()).
		Return(&queries.DraftView{SessionID: sessionID}, nil).Times(1)
}

func (s *PromoRewardHandlerTestSuite) TestApplyPromo() {
	url := "/draft/promo"

	for _, tc := range []struct {
		name    string
		outcome promo.Outcome
	}{
		{"applied", promo.OutcomeApplied},
		{"inactive", promo.OutcomeInactive},
	} {
		s.Run("success: "+tc.name, func() {
			s.mockPromo.EXPECT().ApplyPromo(gomock.Any(), sessionID, "save10").Return(tc.outcome, nil).Times(1)
			s.expectView()

			rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url,
				map[string]any{"code": "save10"}, sessionCookie(), "")

			var body map[string]any
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
			s.Equal(tc.name, body["outcome"])
		})
	}

	s.Run("error: 404 for an unknown code", func() {
		s.mockPromo.EXPECT().ApplyPromo(gomock.Any(), sessionID, "NOPE").
			Return(promo.OutcomeNotFound, commands.ErrPromoNotFound).Times(1)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url,
			map[string]any{"code": "NOPE"}, sessionCookie(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Promo code not found")
	})

	s.Run("error: 400 without a code", func() {
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url,
			map[string]any{}, sessionCookie(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *PromoRewardHandlerTestSuite) TestRemovePromo() {
	s.mockPromo.EXPECT().RemovePromo(gomock.Any(), sessionID).Return(draft.ChangePromo, nil).Times(1)
	s.expectView()

	rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodDelete, "/draft/promo", nil, sessionCookie(), "")

	var body struct {
		Changed []string `json:"changed"`
	}
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal([]string{"promo"}, body.Changed)
}

func (s *PromoRewardHandlerTestSuite) TestApplyReward() {
	url := "/draft/reward"

	s.Run("success: reports the merge state", func() {
		s.mockReward.EXPECT().ApplyReward(gomock.Any(), sessionID, "ur-123").
			Return(&commands.RewardResult{RedirectTarget: "/booking", Merged: false}, nil).Times(1)
		s.expectView()

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url,
			map[string]any{"userRewardId": "ur-123"}, sessionCookie(), "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("/booking", body["redirectTarget"])
		s.Equal(false, body["merged"])
	})

	s.Run("error: 422 for an unusable reward", func() {
		s.mockReward.EXPECT().ApplyReward(gomock.Any(), sessionID, "ur-999").
			Return(nil, commands.ErrRewardNotApplicable).Times(1)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url,
			map[string]any{"userRewardId": "ur-999"}, sessionCookie(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Reward cannot be used")
	})

	s.Run("error: 503 when the reward service is down", func() {
		s.mockReward.EXPECT().ApplyReward(gomock.Any(), sessionID, "ur-123").
			Return(nil, shared.ErrUpstreamUnavailable).Times(1)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url,
			map[string]any{"userRewardId": "ur-123"}, sessionCookie(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "")
	})
}

func (s *PromoRewardHandlerTestSuite) TestRefreshReward() {
	s.mockReward.EXPECT().RefreshRewardCatalog(gomock.Any(), sessionID).
		Return(&commands.RewardResult{Merged: true}, nil).Times(1)
	s.expectView()

	rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/draft/reward/refresh", nil, sessionCookie(), "")

	var body map[string]any
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal(true, body["merged"])
}
