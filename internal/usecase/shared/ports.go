package shared

import (
	"context"

	"playroom-booking/internal/domain/availability"
	"playroom-booking/internal/domain/calendar"
	"playroom-booking/internal/domain/draft"
	"playroom-booking/internal/domain/promo"
	"playroom-booking/internal/domain/submission"
)

// AvailabilityAPI answers the three fact sets the resolver keeps per draft.
type AvailabilityAPI interface {
	DayAvailability(ctx context.Context, unitID string, start, end calendar.Date) ([]availability.Day, error)
	TimeAvailability(ctx context.Context, unitID string, date calendar.Date) ([]availability.Slot, error)
	Durations(ctx context.Context, unitID string, date calendar.Date, start calendar.TimeOfDay) ([]int, error)
}

// PromoAPI returns a NOT_FOUND upstream error for unknown codes.
type PromoAPI interface {
	ValidatePromo(ctx context.Context, code promo.Code) (*promo.Validation, error)
}

type RewardAPI interface {
	ApplyReward(ctx context.Context, userRewardID string) (*RewardGrant, error)
}

type CatalogAPI interface {
	Rooms(ctx context.Context, console string) ([]draft.Room, error)
	Units(ctx context.Context, roomID, console string) ([]draft.Unit, error)
	Fnbs(ctx context.Context) ([]draft.FoodItem, error)
}

type BookingAPI interface {
	SubmitNormal(ctx context.Context, req submission.NormalBooking) (*BookingReceipt, error)
	SubmitReward(ctx context.Context, req submission.RewardBooking) (*BookingReceipt, error)
	SubmitOTS(ctx context.Context, req submission.OTSBooking) (*BookingReceipt, error)
}

type RewardGrant struct {
	RedirectTarget string
	Reward         draft.RewardInfo
}

type BookingReceipt struct {
	InvoiceNumber string
	RedirectURL   string
}
