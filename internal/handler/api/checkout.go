package api

import (
	"net/http"

	"playroom-booking/internal/domain/payment"
	reqdto "playroom-booking/internal/handler/dto/request"
	resdto "playroom-booking/internal/handler/dto/response"
	"playroom-booking/internal/handler/middleware"
	"playroom-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	cmds commands.CheckoutCommands
}

func NewCheckoutHandler(cmds commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds}
}

// @Summary Submit the booking
// @Description Normal bookings answer with a gateway redirect; reward and counter bookings complete immediately
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitRequest false "Customer details for guests and counter bookings"
// @Success 200 {object} resdto.SubmitResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/draft/submit [post]
func (h *CheckoutHandler) Submit(c *gin.Context) {
	var req reqdto.SubmitRequest
	if c.Request.ContentLength != 0 {
		if !bind(c, &req) {
			return
		}
	}
	res, err := h.cmds.Submit(c.Request.Context(), middleware.GetSessionID(c), commands.SubmitInput{
		Actor:    middleware.GetIdentity(c),
		Customer: req.ToDomain(),
	})
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSubmitResult(res))
}

// @Summary Payment gateway return
// @Description The gateway redirects back here with the transaction status
// @Tags payments
// @Produce json
// @Param orderId query string true "Invoice number"
// @Param transactionStatus query string true "Gateway transaction status"
// @Success 200 {object} resdto.SignalResponse
// @Router /api/payments/return [get]
func (h *CheckoutHandler) Return(c *gin.Context) {
	var q reqdto.PaymentReturnQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, err)
		return
	}
	h.signal(c, q.ToDomain())
}

// @Summary Payment frame notification
// @Description Relays the embedded payment frame's completion message
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.PaymentNotificationRequest true "Gateway message"
// @Success 200 {object} resdto.SignalResponse
// @Router /api/payments/notification [post]
func (h *CheckoutHandler) Notification(c *gin.Context) {
	var req reqdto.PaymentNotificationRequest
	if !bind(c, &req) {
		return
	}
	h.signal(c, req.ToDomain())
}

func (h *CheckoutHandler) signal(c *gin.Context, sig payment.Signal) {
	res, err := h.cmds.HandleSignal(c.Request.Context(), middleware.GetSessionID(c), sig)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSignalResult(res))
}
