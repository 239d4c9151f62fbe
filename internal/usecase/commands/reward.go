package commands

import (
	"context"
	"log/slog"
	"slices"

	"playroom-booking/internal/domain/calendar"
	"playroom-booking/internal/domain/draft"
	"playroom-booking/internal/pkg/config"
	"playroom-booking/internal/pkg/errs"
	"playroom-booking/internal/usecase/shared"
)

type RewardResult struct {
	RedirectTarget string
	// Merged stays false while the preset unit is missing from the catalog.
	Merged bool
}

type RewardCommands interface {
	// ApplyReward redeems a reward and replaces the current draft with one seeded
	// from its preset.
	ApplyReward(ctx context.Context, sessionID string, userRewardID string) (*RewardResult, error)
	// RefreshRewardCatalog retries the one-shot unit merge.
	RefreshRewardCatalog(ctx context.Context, sessionID string) (*RewardResult, error)
}

type rewardUseCaseImpl struct {
	ops     sessionOps
	rewards shared.RewardAPI
	catalog shared.CatalogAPI
	window  calendar.Window
}

func NewRewardUseCase(store shared.SessionStore, resolver Resolver, rewards shared.RewardAPI, catalog shared.CatalogAPI, cfg config.Config, logger *slog.Logger) RewardCommands {
	return &rewardUseCaseImpl{
		ops:     sessionOps{store: store, resolver: resolver, logger: logger},
		rewards: rewards,
		catalog: catalog,
		window:  DefaultWindow(cfg.Booking),
	}
}

func (uc *rewardUseCaseImpl) ApplyReward(ctx context.Context, sessionID string, userRewardID string) (*RewardResult, error) {
	if userRewardID == "" {
		return nil, ErrRewardNotApplicable
	}
	if err := uc.ops.read(ctx, sessionID, writable); err != nil {
		return nil, err
	}

	grant, err := uc.rewards.ApplyReward(ctx, userRewardID)
	if err != nil {
		if errs.Is(err, shared.ErrUpstreamNotFound) || errs.Is(err, shared.ErrUpstreamRejected) {
			return nil, errs.Mark(err, ErrRewardNotApplicable)
		}
		return nil, errs.Wrap(err, "failed to apply reward")
	}
	info := grant.Reward
	if info.UserRewardID == "" {
		info.UserRewardID = userRewardID
	}
	if info.PresetUnit.ID == "" || info.PresetConsole == "" {
		return nil, ErrRewardNotApplicable
	}

	_, err = uc.ops.mutate(ctx, sessionID, func(s *shared.Session) (draft.Change, error) {
		s.ResetDraft(draft.New(uc.window))
		s.DisplayMonth = calendar.Date{}
		s.LastOutcome = nil
		return s.Draft.SeedReward(info), nil
	})
	if err != nil {
		return nil, err
	}
	uc.ops.logger.Info("Reward applied to draft",
		slog.String("session_id", sessionID), slog.String("user_reward_id", userRewardID))

	merged, err := uc.mergeFromCatalog(ctx, sessionID, info.PresetRoom.ID, info.PresetConsole)
	if err != nil {
		// the seeded draft stays usable; the merge is retried on the next refresh
		uc.ops.logger.Warn("Reward unit catalog unavailable",
			slog.String("session_id", sessionID), slog.Any("error", err))
	}
	return &RewardResult{RedirectTarget: grant.RedirectTarget, Merged: merged}, nil
}

func (uc *rewardUseCaseImpl) RefreshRewardCatalog(ctx context.Context, sessionID string) (*RewardResult, error) {
	var roomID, console string
	var done bool
	err := uc.ops.read(ctx, sessionID, func(s *shared.Session) error {
		r := s.Draft.Reward()
		if r == nil {
			return ErrRewardNotApplicable
		}
		done = r.Merged()
		roomID, console = r.PresetRoom.ID, r.PresetConsole
		return nil
	})
	if err != nil {
		return nil, err
	}
	if done {
		return &RewardResult{Merged: true}, nil
	}

	merged, err := uc.mergeFromCatalog(ctx, sessionID, roomID, console)
	if err != nil {
		return nil, err
	}
	return &RewardResult{Merged: merged}, nil
}

func (uc *rewardUseCaseImpl) mergeFromCatalog(ctx context.Context, sessionID, roomID, console string) (bool, error) {
	units, err := uc.catalog.Units(ctx, roomID, console)
	if err != nil {
		return false, errs.Wrap(err, "failed to load units for reward")
	}

	var merged bool
	_, err = uc.ops.mutate(ctx, sessionID, func(s *shared.Session) (draft.Change, error) {
		r := s.Draft.Reward()
		if r == nil {
			return 0, ErrRewardNotApplicable
		}
		i := slices.IndexFunc(units, func(u draft.Unit) bool { return u.ID == r.PresetUnit.ID })
		if i < 0 {
			return 0, nil
		}
		c, ok := s.Draft.MergeRewardUnit(units[i])
		merged = ok || r.Merged()
		return c, nil
	})
	return merged, err
}
