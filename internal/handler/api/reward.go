package api

import (
	"net/http"

	reqdto "playroom-booking/internal/handler/dto/request"
	resdto "playroom-booking/internal/handler/dto/response"
	"playroom-booking/internal/handler/middleware"
	"playroom-booking/internal/usecase/commands"
	"playroom-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RewardHandler struct {
	cmds commands.RewardCommands
	q    queries.DraftQueries
}

func NewRewardHandler(cmds commands.RewardCommands, q queries.DraftQueries) *RewardHandler {
	return &RewardHandler{cmds: cmds, q: q}
}

// @Summary Redeem a reward into the draft
// @Description Replaces the draft with one seeded from the reward preset
// @Tags reward
// @Accept json
// @Produce json
// @Param request body reqdto.ApplyRewardRequest true "Reward"
// @Success 200 {object} resdto.RewardResponse
// @Failure 422 {object} httperr.Response
// @Router /api/draft/reward [post]
func (h *RewardHandler) Apply(c *gin.Context) {
	var req reqdto.ApplyRewardRequest
	if !bind(c, &req) {
		return
	}
	ctx := c.Request.Context()
	sid := middleware.GetSessionID(c)

	res, err := h.cmds.ApplyReward(ctx, sid, req.UserRewardID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.render(c, sid, res)
}

// @Summary Retry merging the reward unit from the catalog
// @Tags reward
// @Produce json
// @Success 200 {object} resdto.RewardResponse
// @Router /api/draft/reward/refresh [post]
func (h *RewardHandler) Refresh(c *gin.Context) {
	sid := middleware.GetSessionID(c)
	res, err := h.cmds.RefreshRewardCatalog(c.Request.Context(), sid)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.render(c, sid, res)
}

func (h *RewardHandler) render(c *gin.Context, sid string, res *commands.RewardResult) {
	view, err := h.q.GetDraft(c.Request.Context(), sid, middleware.GetIdentity(c))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewRewardResponse(res, view))
}
