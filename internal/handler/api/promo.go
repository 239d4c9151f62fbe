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

type PromoHandler struct {
	cmds commands.PromoCommands
	q    queries.DraftQueries
}

func NewPromoHandler(cmds commands.PromoCommands, q queries.DraftQueries) *PromoHandler {
	return &PromoHandler{cmds: cmds, q: q}
}

// @Summary Apply promo code
// @Description An inactive code answers 200 with outcome "inactive" and leaves pricing untouched
// @Tags promo
// @Accept json
// @Produce json
// @Param request body reqdto.ApplyPromoRequest true "Promo code"
// @Success 200 {object} resdto.PromoResponse
// @Failure 404 {object} httperr.Response
// @Router /api/draft/promo [post]
func (h *PromoHandler) Apply(c *gin.Context) {
	var req reqdto.ApplyPromoRequest
	if !bind(c, &req) {
		return
	}
	ctx := c.Request.Context()
	sid := middleware.GetSessionID(c)

	outcome, err := h.cmds.ApplyPromo(ctx, sid, req.Code)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	view, err := h.q.GetDraft(ctx, sid, middleware.GetIdentity(c))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewPromoResponse(outcome, view))
}

// @Summary Remove promo code
// @Tags promo
// @Produce json
// @Success 200 {object} resdto.MutationResponse
// @Router /api/draft/promo [delete]
func (h *PromoHandler) Remove(c *gin.Context) {
	ctx := c.Request.Context()
	sid := middleware.GetSessionID(c)

	changed, err := h.cmds.RemovePromo(ctx, sid)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	view, err := h.q.GetDraft(ctx, sid, middleware.GetIdentity(c))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewMutationResponse(changed, view))
}
