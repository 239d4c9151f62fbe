package commands

import (
	"context"
	"log/slog"

	"playroom-booking/internal/domain/draft"
	"playroom-booking/internal/domain/submission"
	"playroom-booking/internal/usecase/shared"
)

// sessionOps is the mutation path every draft-writing usecase goes through: lock,
// mutate, collect the reported change, unlock, then let the resolver react.
type sessionOps struct {
	store    shared.SessionStore
	resolver Resolver
	logger   *slog.Logger
}

// read runs fn under the session lock without touching the draft.
func (o sessionOps) read(ctx context.Context, sessionID string, fn func(s *shared.Session) error) error {
	return o.store.Within(ctx, sessionID, fn)
}

func (o sessionOps) mutate(ctx context.Context, sessionID string, fn func(s *shared.Session) (draft.Change, error)) (draft.Change, error) {
	var changed, pending draft.Change
	err := o.store.Within(ctx, sessionID, func(s *shared.Session) error {
		if err := writable(s); err != nil {
			return err
		}
		c, err := fn(s)
		if err != nil {
			s.TakeChanges()
			return err
		}
		changed = c
		pending = s.TakeChanges()
		return nil
	})
	if err != nil {
		return 0, err
	}
	o.refresh(ctx, sessionID, pending)
	return changed, nil
}

func (o sessionOps) refresh(ctx context.Context, sessionID string, c draft.Change) {
	if err := o.resolver.Refresh(ctx, sessionID, c); err != nil {
		o.logger.Warn("Failed to refresh availability",
			slog.String("session_id", sessionID), slog.Any("error", err))
	}
}

// writable rejects draft edits while a payment redirect or submission is outstanding.
func writable(s *shared.Session) error {
	if s.Handshake.GuardArmed() {
		return ErrPaymentPending
	}
	if s.Submission.State() == submission.StateSubmitting {
		return ErrSubmissionPending
	}
	return nil
}
