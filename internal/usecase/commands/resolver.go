package commands

import (
	"context"
	"log/slog"
	"time"

	"playroom-booking/internal/domain/availability"
	"playroom-booking/internal/domain/calendar"
	"playroom-booking/internal/domain/draft"
	"playroom-booking/internal/pkg/clock"
	"playroom-booking/internal/pkg/config"
	"playroom-booking/internal/usecase/shared"

	"golang.org/x/sync/errgroup"
)

// Resolver keeps a session's availability facts in step with its draft. Fetches
// run without the session lock; results land only if still current.
type Resolver interface {
	Refresh(ctx context.Context, sessionID string, c draft.Change) error
	ShowMonth(ctx context.Context, sessionID string, month calendar.Date) error
	// Retry re-issues every fetch whose last attempt failed or whose result does
	// not match the draft's current key. Fetches already in flight are left alone.
	Retry(ctx context.Context, sessionID string) error
}

type resolverImpl struct {
	api    shared.AvailabilityAPI
	store  shared.SessionStore
	clock  clock.Clock
	loc    *time.Location
	logger *slog.Logger
}

func NewResolver(api shared.AvailabilityAPI, store shared.SessionStore, clk clock.Clock, cfg config.Config, logger *slog.Logger) Resolver {
	return &resolverImpl{
		api:    api,
		store:  store,
		clock:  clk,
		loc:    cfg.Booking.Location(),
		logger: logger,
	}
}

type dayJob struct {
	gen  uint64
	key  availability.DayKey
	days []availability.Day
	err  error
}

type slotJob struct {
	gen    uint64
	key    availability.SlotKey
	window calendar.Window
	slots  []availability.Slot
	err    error
}

type durationJob struct {
	gen   uint64
	key   availability.DurationKey
	hours []int
	err   error
}

type fetchPlan struct {
	days      *dayJob
	slots     *slotJob
	durations *durationJob
}

func (p fetchPlan) empty() bool {
	return p.days == nil && p.slots == nil && p.durations == nil
}

func (r *resolverImpl) Refresh(ctx context.Context, sessionID string, c draft.Change) error {
	if c.IsZero() {
		return nil
	}
	var plan fetchPlan
	err := r.store.Within(ctx, sessionID, func(s *shared.Session) error {
		plan = r.begin(s, c, false)
		return nil
	})
	if err != nil {
		return err
	}
	return r.run(ctx, sessionID, plan)
}

func (r *resolverImpl) ShowMonth(ctx context.Context, sessionID string, month calendar.Date) error {
	var plan fetchPlan
	err := r.store.Within(ctx, sessionID, func(s *shared.Session) error {
		s.DisplayMonth = month.MonthStart()
		plan = r.begin(s, 0, true)
		return nil
	})
	if err != nil {
		return err
	}
	return r.run(ctx, sessionID, plan)
}

func (r *resolverImpl) Retry(ctx context.Context, sessionID string) error {
	var plan fetchPlan
	err := r.store.Within(ctx, sessionID, func(s *shared.Session) error {
		plan = r.beginRetry(s)
		return nil
	})
	if err != nil {
		return err
	}
	return r.run(ctx, sessionID, plan)
}

func (r *resolverImpl) beginRetry(s *shared.Session) fetchPlan {
	var plan fetchPlan
	keys := s.FactKeys(r.today())

	if !keys.Day.IsZero() && needsRetry(&s.Facts.Days, keys.Day) {
		plan.days = &dayJob{key: keys.Day, gen: s.Facts.Days.Begin(keys.Day)}
	}
	if !keys.Slot.IsZero() && needsRetry(&s.Facts.Slots, keys.Slot) {
		plan.slots = &slotJob{key: keys.Slot, window: keys.Window, gen: s.Facts.Slots.Begin(keys.Slot)}
	}
	if keys.HasDuration {
		_, known := s.Draft.ValidDurations()
		if !known || needsRetry(&s.Facts.Durations, keys.Duration) {
			plan.durations = &durationJob{key: keys.Duration, gen: s.Facts.Durations.Begin(keys.Duration)}
		}
	}
	return plan
}

func needsRetry[K comparable, V any](f *availability.Fact[K, V], current K) bool {
	if f.Loading && f.Key == current {
		return false
	}
	return f.Err != nil || !f.Loaded || f.Key != current
}

// begin issues a generation for every fact kind the change invalidates.
func (r *resolverImpl) begin(s *shared.Session, c draft.Change, monthChanged bool) fetchPlan {
	var plan fetchPlan
	keys := s.FactKeys(r.today())

	monthMoved := !keys.Day.IsZero() && keys.Day != s.Facts.Days.Key
	if monthChanged || monthMoved || c.Has(draft.ChangeUnit|draft.ChangeReward) {
		if keys.Day.IsZero() {
			s.Facts.Days.Cancel()
		} else {
			s.DisplayMonth = keys.Day.Month
			plan.days = &dayJob{key: keys.Day, gen: s.Facts.Days.Begin(keys.Day)}
		}
	}

	if c.TriggersSlots() {
		if keys.Slot.IsZero() {
			s.Facts.Slots.Cancel()
		} else {
			plan.slots = &slotJob{key: keys.Slot, window: keys.Window, gen: s.Facts.Slots.Begin(keys.Slot)}
		}
	}

	if c.TriggersDurations() {
		if !keys.HasDuration {
			s.Facts.Durations.Cancel()
		} else {
			plan.durations = &durationJob{key: keys.Duration, gen: s.Facts.Durations.Begin(keys.Duration)}
		}
	}
	return plan
}

func (r *resolverImpl) run(ctx context.Context, sessionID string, plan fetchPlan) error {
	if plan.empty() {
		return nil
	}

	// each fetch records its own error; one failure must not cancel the others
	var g errgroup.Group
	if j := plan.days; j != nil {
		g.Go(func() error {
			start, end := j.key.Range()
			j.days, j.err = r.api.DayAvailability(ctx, j.key.UnitID, start, end)
			return nil
		})
	}
	if j := plan.slots; j != nil {
		g.Go(func() error {
			j.slots, j.err = r.api.TimeAvailability(ctx, j.key.UnitID, j.key.Date)
			return nil
		})
	}
	if j := plan.durations; j != nil {
		g.Go(func() error {
			j.hours, j.err = r.api.Durations(ctx, j.key.UnitID, j.key.Date, j.key.StartTime)
			return nil
		})
	}
	_ = g.Wait()

	return r.store.Within(context.WithoutCancel(ctx), sessionID, func(s *shared.Session) error {
		r.apply(s, plan)
		return nil
	})
}

func (r *resolverImpl) apply(s *shared.Session, plan fetchPlan) {
	keys := s.FactKeys(r.today())

	if j := plan.days; j != nil {
		var applied bool
		if j.err != nil {
			applied = s.Facts.Days.Fail(j.gen, keys.Day, j.err)
		} else {
			applied = s.Facts.Days.Resolve(j.gen, keys.Day, availability.FullyBooked(j.days))
		}
		r.logOutcome(s, "days", applied, j.err)
	}

	if j := plan.slots; j != nil {
		var applied bool
		if j.err != nil {
			applied = s.Facts.Slots.Fail(j.gen, keys.Slot, j.err)
		} else {
			merged := availability.MergeSlots(availability.SynthesizeSlots(j.window), j.slots)
			applied = s.Facts.Slots.Resolve(j.gen, keys.Slot, merged)
		}
		r.logOutcome(s, "slots", applied, j.err)
	}

	if j := plan.durations; j != nil {
		var applied bool
		if j.err != nil {
			applied = s.Facts.Durations.Fail(j.gen, keys.Duration, j.err)
		} else {
			applied = s.Facts.Durations.Resolve(j.gen, keys.Duration, availability.Normalize(j.hours))
			if applied {
				s.Draft.ReconcileDurations(j.hours)
			}
		}
		r.logOutcome(s, "durations", applied, j.err)
	}

	// reconciliation never re-triggers a fetch
	s.TakeChanges()
}

func (r *resolverImpl) logOutcome(s *shared.Session, kind string, applied bool, err error) {
	switch {
	case !applied:
		r.logger.Debug("Discarded stale availability result",
			slog.String("session_id", s.ID), slog.String("kind", kind))
	case err != nil:
		r.logger.Warn("Availability fetch failed",
			slog.String("session_id", s.ID), slog.String("kind", kind), slog.Any("error", err))
	}
}

func (r *resolverImpl) today() calendar.Date {
	return calendar.DateOf(r.clock.Now().In(r.loc))
}
