package commands

import (
	"context"
	"log/slog"

	"playroom-booking/internal/domain/draft"
	"playroom-booking/internal/domain/promo"
	"playroom-booking/internal/pkg/errs"
	"playroom-booking/internal/usecase/shared"
)

type PromoCommands interface {
	// ApplyPromo validates code upstream. An inactive code leaves the draft untouched
	// and reports OutcomeInactive; an unknown code or a failed lookup is ErrPromoNotFound.
	ApplyPromo(ctx context.Context, sessionID string, code string) (promo.Outcome, error)
	RemovePromo(ctx context.Context, sessionID string) (draft.Change, error)
}

type promoUseCaseImpl struct {
	ops sessionOps
	api shared.PromoAPI
}

func NewPromoUseCase(store shared.SessionStore, resolver Resolver, api shared.PromoAPI, logger *slog.Logger) PromoCommands {
	return &promoUseCaseImpl{
		ops: sessionOps{store: store, resolver: resolver, logger: logger},
		api: api,
	}
}

func (uc *promoUseCaseImpl) ApplyPromo(ctx context.Context, sessionID string, raw string) (promo.Outcome, error) {
	// fail fast on a locked draft before spending an upstream call
	if err := uc.ops.read(ctx, sessionID, writable); err != nil {
		return promo.OutcomeNotFound, err
	}

	code, err := promo.NewCode(raw)
	if err != nil {
		return promo.OutcomeNotFound, errs.Mark(err, ErrPromoNotFound)
	}

	v, err := uc.api.ValidatePromo(ctx, code)
	if err != nil {
		uc.ops.logger.Info("Promo lookup failed",
			slog.String("session_id", sessionID), slog.String("code", code.String()), slog.Any("error", err))
		return promo.OutcomeNotFound, errs.Mark(err, ErrPromoNotFound)
	}

	outcome, discount := promo.Evaluate(code, v)
	switch outcome {
	case promo.OutcomeNotFound:
		return outcome, ErrPromoNotFound
	case promo.OutcomeInactive:
		return outcome, nil
	}

	_, err = uc.ops.mutate(ctx, sessionID, func(s *shared.Session) (draft.Change, error) {
		return s.Draft.ApplyPromo(code, discount), nil
	})
	if err != nil {
		return promo.OutcomeNotFound, err
	}
	return outcome, nil
}

func (uc *promoUseCaseImpl) RemovePromo(ctx context.Context, sessionID string) (draft.Change, error) {
	return uc.ops.mutate(ctx, sessionID, func(s *shared.Session) (draft.Change, error) {
		return s.Draft.RemovePromo(), nil
	})
}
