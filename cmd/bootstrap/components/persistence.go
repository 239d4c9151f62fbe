package components

import (
	"context"
	"log/slog"

	"playroom-booking/internal/infra/sessionstore"
	"playroom-booking/internal/pkg/config"
	"playroom-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		fx.Annotate(
			NewSessionStore,
			fx.As(new(shared.SessionStore)),
		),
	),
)

func NewSessionStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *sessionstore.MemoryStore {
	store := sessionstore.NewMemoryStore(cfg.Session, logger)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("Dropped in-memory booking sessions", slog.Int("sessions", store.Close()))
			return nil
		},
	})

	return store
}
