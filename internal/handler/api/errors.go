package api

import (
	"errors"
	"net/http"

	"playroom-booking/internal/domain/submission"
	"playroom-booking/internal/handler/httperr"
	"playroom-booking/internal/pkg/errs"
	"playroom-booking/internal/usecase/commands"
	"playroom-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type statusMapping struct {
	target error
	fault  httperr.Fault
}

var incomplete = httperr.Fault{Status: http.StatusUnprocessableEntity, Code: "booking_incomplete", Message: "Booking is incomplete"}

// first match wins; order the more specific sentinels first
var usecaseErrors = []statusMapping{
	{shared.ErrSessionNotFound, httperr.NoSession},
	{commands.ErrExitGuarded, httperr.Fault{Status: http.StatusConflict, Code: "exit_guarded", Message: "Payment is still pending; confirm to leave"}},
	{commands.ErrPaymentPending, httperr.Fault{Status: http.StatusConflict, Code: "payment_pending", Message: "Draft is locked while payment is pending"}},
	{commands.ErrSubmissionPending, httperr.Fault{Status: http.StatusConflict, Code: "submission_pending", Message: "Draft is locked while a submission is in flight"}},
	{submission.ErrAlreadySubmitting, httperr.Fault{Status: http.StatusConflict, Code: "already_submitted", Message: "Booking was already submitted"}},
	{commands.ErrRoomNotFound, httperr.Fault{Status: http.StatusNotFound, Code: "room_not_found", Message: "Room not found"}},
	{commands.ErrUnitNotFound, httperr.Fault{Status: http.StatusNotFound, Code: "unit_not_found", Message: "Unit not found"}},
	{commands.ErrFnbNotFound, httperr.Fault{Status: http.StatusNotFound, Code: "fnb_not_found", Message: "Food or drink item not found"}},
	{commands.ErrPromoNotFound, httperr.Fault{Status: http.StatusNotFound, Code: "promo_not_found", Message: "Promo code not found"}},
	{commands.ErrRewardNotApplicable, httperr.Fault{Status: http.StatusUnprocessableEntity, Code: "reward_not_applicable", Message: "Reward cannot be used"}},
	{commands.ErrNoPendingPayment, httperr.Fault{Status: http.StatusNotFound, Code: "no_pending_payment", Message: "No payment is pending"}},
	{submission.ErrRewardTooSoon, httperr.Fault{Status: http.StatusUnprocessableEntity, Code: "reward_too_soon", Message: "Reward bookings must start at least 30 minutes from now"}},
	{commands.ErrGatewayIntegration, httperr.Fault{Status: http.StatusBadGateway, Code: "gateway_unavailable", Message: "Payment gateway is not available"}},
	{shared.ErrUpstreamRejected, httperr.Fault{Status: http.StatusUnprocessableEntity, Code: "booking_rejected", Message: "Booking was rejected"}},
	{shared.ErrUpstreamUnavailable, httperr.Fault{Status: http.StatusServiceUnavailable, Code: "upstream_unavailable", Message: "Booking service is unavailable"}},
}

// abortWithUsecaseError maps usecase errors onto statuses. Field-level faults carry
// their fields in the detail so the client can mark them.
func abortWithUsecaseError(c *gin.Context, err error) {
	var missing *submission.MissingFieldsError
	if errors.As(err, &missing) {
		httperr.Abort(c, incomplete, err, gin.H{"mode": missing.Mode, "missing": missing.Fields})
		return
	}

	for _, m := range usecaseErrors {
		if !errs.Is(err, m.target) {
			continue
		}
		var detail any
		var fr shared.FieldRejection
		if m.target == shared.ErrUpstreamRejected && errors.As(err, &fr) {
			detail = gin.H{"fields": fr.RejectedFields()}
		}
		httperr.Abort(c, m.fault, err, detail)
		return
	}
	httperr.Abort(c, httperr.Internal, err, nil)
}

func abortBadRequest(c *gin.Context, err error) {
	httperr.Abort(c, httperr.BadRequest, err, nil)
}

func isSessionGone(err error) bool {
	return errs.Is(err, shared.ErrSessionNotFound)
}
