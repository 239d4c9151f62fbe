package components

import (
	"log/slog"

	"playroom-booking/internal/infra/bookingapi"
	"playroom-booking/internal/pkg/config"
	"playroom-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var UpstreamModule = fx.Module("upstream",
	fx.Provide(
		fx.Annotate(
			NewBookingClient,
			fx.As(new(shared.AvailabilityAPI)),
			fx.As(new(shared.PromoAPI)),
			fx.As(new(shared.RewardAPI)),
			fx.As(new(shared.CatalogAPI)),
			fx.As(new(shared.BookingAPI)),
		),
	),
)

func NewBookingClient(cfg config.Config, logger *slog.Logger) (*bookingapi.Client, error) {
	return bookingapi.NewClient(cfg.Upstream, logger.With(slog.String("component", "booking-api")))
}
