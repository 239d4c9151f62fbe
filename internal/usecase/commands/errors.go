package commands

import (
	"playroom-booking/internal/domain/calendar"
	"playroom-booking/internal/pkg/config"
	"playroom-booking/internal/pkg/errs"
)

var (
	ErrRoomNotFound        = errs.New("room not found in catalog")
	ErrUnitNotFound        = errs.New("unit not found in catalog")
	ErrFnbNotFound         = errs.New("food or drink item not found in catalog")
	ErrPromoNotFound       = errs.New("promo code not found")
	ErrExitGuarded         = errs.New("payment is still pending; confirm to discard the draft")
	ErrPaymentPending      = errs.New("draft is locked while payment is pending")
	ErrSubmissionPending   = errs.New("draft is locked while a submission is in flight")
	ErrGatewayIntegration  = errs.New("booking service returned no usable payment gateway url")
	ErrNoPendingPayment    = errs.New("no payment is awaiting a gateway signal")
	ErrRewardNotApplicable = errs.New("reward cannot be used for a booking")
)

// DefaultWindow is the operating window used when the catalog omits a unit's hours.
func DefaultWindow(cfg config.BookingConfig) calendar.Window {
	w, err := calendar.ParseWindow(cfg.DefaultOpenTime, cfg.DefaultCloseTime)
	if err != nil {
		return calendar.Window{Open: calendar.MustTimeOfDay("10:00"), Close: calendar.MustTimeOfDay("22:00")}
	}
	return w
}
