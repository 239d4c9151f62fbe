package commands

import (
	"context"
	"log/slog"
	"slices"

	"playroom-booking/internal/domain/calendar"
	"playroom-booking/internal/domain/draft"
	"playroom-booking/internal/domain/user"
	"playroom-booking/internal/pkg/clock"
	"playroom-booking/internal/pkg/config"
	"playroom-booking/internal/pkg/errs"
	"playroom-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type StartResult struct {
	SessionID string
}

// DraftCommands are the configuration setters of the active draft. Every setter
// returns the fields it touched; a zero change means the input was rejected.
type DraftCommands interface {
	Start(ctx context.Context, owner user.Identity) (*StartResult, error)
	Discard(ctx context.Context, sessionID string, confirm bool) error

	SetNumberOfPeople(ctx context.Context, sessionID string, n int) (draft.Change, error)
	SetConsole(ctx context.Context, sessionID string, console string) (draft.Change, error)
	SetRoom(ctx context.Context, sessionID string, roomID string) (draft.Change, error)
	SetUnit(ctx context.Context, sessionID string, unitID string) (draft.Change, error)
	SelectGame(ctx context.Context, sessionID string, game draft.Game) (draft.Change, error)
	SetDate(ctx context.Context, sessionID string, date calendar.Date) (draft.Change, error)
	SetStartTime(ctx context.Context, sessionID string, t calendar.TimeOfDay) (draft.Change, error)
	SetDuration(ctx context.Context, sessionID string, hours int) (draft.Change, error)
	SetNotes(ctx context.Context, sessionID string, notes string) (draft.Change, error)
	UpsertFood(ctx context.Context, sessionID string, itemID string, quantity int) (draft.Change, error)
	RemoveFood(ctx context.Context, sessionID string, itemID string) (draft.Change, error)
	GoToStep(ctx context.Context, sessionID string, step draft.Step) (draft.Change, error)
	ShowMonth(ctx context.Context, sessionID string, month calendar.Date) error
	// RetryAvailability re-fetches availability facts that failed or went stale.
	RetryAvailability(ctx context.Context, sessionID string) error
}

type draftUseCaseImpl struct {
	ops     sessionOps
	catalog shared.CatalogAPI
	clock   clock.Clock
	window  calendar.Window
}

func NewDraftUseCase(store shared.SessionStore, resolver Resolver, catalog shared.CatalogAPI, clk clock.Clock, cfg config.Config, logger *slog.Logger) DraftCommands {
	return &draftUseCaseImpl{
		ops:     sessionOps{store: store, resolver: resolver, logger: logger},
		catalog: catalog,
		clock:   clk,
		window:  DefaultWindow(cfg.Booking),
	}
}

func (uc *draftUseCaseImpl) Start(ctx context.Context, owner user.Identity) (*StartResult, error) {
	id := uuid.NewString()
	sess := shared.NewSession(id, owner, draft.New(uc.window), uc.clock.Now())
	if err := uc.ops.store.Create(ctx, sess); err != nil {
		return nil, errs.Wrap(err, "failed to create booking session")
	}
	uc.ops.logger.Info("Booking draft started", slog.String("session_id", id), slog.Bool("guest", owner.IsGuest()))
	return &StartResult{SessionID: id}, nil
}

// Discard drops the session. While a payment redirect is pending the caller must
// confirm; confirming disarms the guard and its timer.
func (uc *draftUseCaseImpl) Discard(ctx context.Context, sessionID string, confirm bool) error {
	err := uc.ops.read(ctx, sessionID, func(s *shared.Session) error {
		if s.Handshake.GuardArmed() {
			if !confirm {
				return ErrExitGuarded
			}
			s.Handshake.Disarm()
		}
		return nil
	})
	if err != nil {
		return err
	}
	return uc.ops.store.Delete(ctx, sessionID)
}

func (uc *draftUseCaseImpl) SetNumberOfPeople(ctx context.Context, sessionID string, n int) (draft.Change, error) {
	return uc.ops.mutate(ctx, sessionID, func(s *shared.Session) (draft.Change, error) {
		return s.Draft.SetNumberOfPeople(n), nil
	})
}

func (uc *draftUseCaseImpl) SetConsole(ctx context.Context, sessionID string, console string) (draft.Change, error) {
	return uc.ops.mutate(ctx, sessionID, func(s *shared.Session) (draft.Change, error) {
		return s.Draft.SetConsole(console), nil
	})
}

func (uc *draftUseCaseImpl) SetRoom(ctx context.Context, sessionID string, roomID string) (draft.Change, error) {
	var console string
	if err := uc.ops.read(ctx, sessionID, func(s *shared.Session) error {
		console = s.Draft.Console()
		return nil
	}); err != nil {
		return 0, err
	}

	rooms, err := uc.catalog.Rooms(ctx, console)
	if err != nil {
		return 0, errs.Wrap(err, "failed to load rooms")
	}
	i := slices.IndexFunc(rooms, func(r draft.Room) bool { return r.ID == roomID })
	if i < 0 {
		return 0, ErrRoomNotFound
	}

	return uc.ops.mutate(ctx, sessionID, func(s *shared.Session) (draft.Change, error) {
		return s.Draft.SetRoomType(rooms[i]), nil
	})
}

func (uc *draftUseCaseImpl) SetUnit(ctx context.Context, sessionID string, unitID string) (draft.Change, error) {
	var console, roomID string
	if err := uc.ops.read(ctx, sessionID, func(s *shared.Session) error {
		console = s.Draft.Console()
		if r := s.Draft.Room(); r != nil {
			roomID = r.ID
		}
		return nil
	}); err != nil {
		return 0, err
	}
	if roomID == "" {
		return 0, nil
	}

	units, err := uc.catalog.Units(ctx, roomID, console)
	if err != nil {
		return 0, errs.Wrap(err, "failed to load units")
	}
	i := slices.IndexFunc(units, func(u draft.Unit) bool { return u.ID == unitID })
	if i < 0 {
		return 0, ErrUnitNotFound
	}

	return uc.ops.mutate(ctx, sessionID, func(s *shared.Session) (draft.Change, error) {
		return s.Draft.SetUnit(units[i]), nil
	})
}

// SelectGame takes the catalog's name for the game when the unit lists it.
func (uc *draftUseCaseImpl) SelectGame(ctx context.Context, sessionID string, game draft.Game) (draft.Change, error) {
	return uc.ops.mutate(ctx, sessionID, func(s *shared.Session) (draft.Change, error) {
		if u := s.Draft.Unit(); u != nil {
			if i := slices.IndexFunc(u.Games, func(g draft.Game) bool { return g.ID == game.ID }); i >= 0 {
				game = u.Games[i]
			}
		}
		return s.Draft.SelectGame(game), nil
	})
}

func (uc *draftUseCaseImpl) SetDate(ctx context.Context, sessionID string, date calendar.Date) (draft.Change, error) {
	return uc.ops.mutate(ctx, sessionID, func(s *shared.Session) (draft.Change, error) {
		c := s.Draft.SetDate(date)
		if c.Has(draft.ChangeDate) {
			s.DisplayMonth = date.MonthStart()
		}
		return c, nil
	})
}

func (uc *draftUseCaseImpl) SetStartTime(ctx context.Context, sessionID string, t calendar.TimeOfDay) (draft.Change, error) {
	return uc.ops.mutate(ctx, sessionID, func(s *shared.Session) (draft.Change, error) {
		return s.Draft.SetStartTime(t), nil
	})
}

func (uc *draftUseCaseImpl) SetDuration(ctx context.Context, sessionID string, hours int) (draft.Change, error) {
	return uc.ops.mutate(ctx, sessionID, func(s *shared.Session) (draft.Change, error) {
		return s.Draft.SetDuration(hours), nil
	})
}

func (uc *draftUseCaseImpl) SetNotes(ctx context.Context, sessionID string, notes string) (draft.Change, error) {
	return uc.ops.mutate(ctx, sessionID, func(s *shared.Session) (draft.Change, error) {
		return s.Draft.SetNotes(notes), nil
	})
}

// UpsertFood prices the item from the current menu; a quantity of zero or less removes it.
func (uc *draftUseCaseImpl) UpsertFood(ctx context.Context, sessionID string, itemID string, quantity int) (draft.Change, error) {
	if quantity <= 0 {
		return uc.RemoveFood(ctx, sessionID, itemID)
	}

	menu, err := uc.catalog.Fnbs(ctx)
	if err != nil {
		return 0, errs.Wrap(err, "failed to load food and drinks")
	}
	i := slices.IndexFunc(menu, func(f draft.FoodItem) bool { return f.ItemID == itemID })
	if i < 0 {
		return 0, ErrFnbNotFound
	}

	return uc.ops.mutate(ctx, sessionID, func(s *shared.Session) (draft.Change, error) {
		return s.Draft.UpsertFood(menu[i], quantity), nil
	})
}

func (uc *draftUseCaseImpl) RemoveFood(ctx context.Context, sessionID string, itemID string) (draft.Change, error) {
	return uc.ops.mutate(ctx, sessionID, func(s *shared.Session) (draft.Change, error) {
		return s.Draft.RemoveFood(itemID), nil
	})
}

func (uc *draftUseCaseImpl) GoToStep(ctx context.Context, sessionID string, step draft.Step) (draft.Change, error) {
	return uc.ops.mutate(ctx, sessionID, func(s *shared.Session) (draft.Change, error) {
		return s.Draft.GoToStep(step), nil
	})
}

func (uc *draftUseCaseImpl) ShowMonth(ctx context.Context, sessionID string, month calendar.Date) error {
	return uc.ops.resolver.ShowMonth(ctx, sessionID, month)
}

func (uc *draftUseCaseImpl) RetryAvailability(ctx context.Context, sessionID string) error {
	return uc.ops.resolver.Retry(ctx, sessionID)
}
