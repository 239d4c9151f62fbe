package queries

import (
	"context"

	"playroom-booking/internal/domain/draft"
	"playroom-booking/internal/pkg/errs"
	"playroom-booking/internal/usecase/shared"
)

// CatalogQueries lists what the current draft can choose from next.
type CatalogQueries interface {
	// Rooms offering the draft's console that fit its party.
	Rooms(ctx context.Context, sessionID string) ([]draft.Room, error)
	Units(ctx context.Context, sessionID string) ([]draft.Unit, error)
	Fnbs(ctx context.Context) ([]draft.FoodItem, error)
}

type catalogQueriesImpl struct {
	store   shared.SessionStore
	catalog shared.CatalogAPI
}

func NewCatalogQueries(store shared.SessionStore, catalog shared.CatalogAPI) CatalogQueries {
	return &catalogQueriesImpl{store: store, catalog: catalog}
}

func (q *catalogQueriesImpl) Rooms(ctx context.Context, sessionID string) ([]draft.Room, error) {
	var console string
	if err := q.store.Within(ctx, sessionID, func(s *shared.Session) error {
		console = s.Draft.Console()
		return nil
	}); err != nil {
		return nil, err
	}
	if console == "" {
		return []draft.Room{}, nil
	}

	rooms, err := q.catalog.Rooms(ctx, console)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load rooms")
	}

	var out []draft.Room
	err = q.store.Within(ctx, sessionID, func(s *shared.Session) error {
		out = s.Draft.FilterRooms(rooms)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (q *catalogQueriesImpl) Units(ctx context.Context, sessionID string) ([]draft.Unit, error) {
	var console, roomID string
	if err := q.store.Within(ctx, sessionID, func(s *shared.Session) error {
		console = s.Draft.Console()
		if r := s.Draft.Room(); r != nil {
			roomID = r.ID
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if roomID == "" {
		return []draft.Unit{}, nil
	}

	units, err := q.catalog.Units(ctx, roomID, console)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load units")
	}
	return units, nil
}

func (q *catalogQueriesImpl) Fnbs(ctx context.Context) ([]draft.FoodItem, error) {
	items, err := q.catalog.Fnbs(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load food and drinks")
	}
	return items, nil
}
