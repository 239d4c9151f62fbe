//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"playroom-booking/internal/domain/draft"
	"playroom-booking/internal/domain/payment"
	"playroom-booking/internal/domain/user"
	"playroom-booking/internal/infra/sessionstore"
	"playroom-booking/internal/pkg/clock"
	"playroom-booking/internal/pkg/config"
	"playroom-booking/internal/pkg/errs"
	"playroom-booking/internal/usecase/commands"
	"playroom-booking/internal/usecase/shared"
	"playroom-booking/tests/common/builder"
	commandsmock "playroom-booking/tests/mock/commands"
	sharedmock "playroom-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DraftUseCaseTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockCatalog  *sharedmock.MockCatalogAPI
	mockResolver *commandsmock.MockResolver
	clock        *clock.MockClock
	store        *sessionstore.MemoryStore
	uc           commands.DraftCommands
}

func (s *DraftUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCatalog = sharedmock.NewMockCatalogAPI(s.mockCtrl)
	s.mockResolver = commandsmock.NewMockResolver(s.mockCtrl)
	s.clock = clock.NewMockClock(testNow)
	s.store = newStore()
	s.uc = commands.NewDraftUseCase(s.store, s.mockResolver, s.mockCatalog, s.clock, config.NewTestConfig(), discardLogger())
}

func (s *DraftUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDraftUseCaseSuite(t *testing.T) {
	suite.Run(t, new(DraftUseCaseTestSuite))
}

func (s *DraftUseCaseTestSuite) seed(b *builder.DraftBuilder) {
	seedSession(s.T(), s.store, user.Identity{}, b.Build())
}

// emptyDraft stops the builder before the first step.
func emptyDraft(b *builder.DraftBuilder) {
	*b = builder.DraftBuilder{Window: builder.DefaultWindow()}
}

func (s *DraftUseCaseTestSuite) expectRefresh(want draft.Change) {
	s.mockResolver.EXPECT().Refresh(gomock.Any(), testSessionID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, c draft.Change) error {
			s.True(c.Has(want), "refresh saw %v", c.Names())
			return nil
		})
}

func (s *DraftUseCaseTestSuite) TestStart() {
	owner := user.Identity{UserID: uuid.New(), Role: user.RoleCustomer}

	res, err := s.uc.Start(context.Background(), owner)

	s.Require().NoError(err)
	_, perr := uuid.Parse(res.SessionID)
	s.NoError(perr)
	s.Require().NoError(s.store.Within(context.Background(), res.SessionID, func(sess *shared.Session) error {
		s.Equal(owner, sess.Owner)
		s.Equal(draft.StepConsole, sess.Draft.ActiveStep())
		s.Equal(testNow, sess.CreatedAt)
		return nil
	}))
}

func (s *DraftUseCaseTestSuite) TestSetConsoleTriggersRefresh() {
	s.seed(builder.NewDraftBuilder().With(emptyDraft))
	s.expectRefresh(draft.ChangeConsole)

	c, err := s.uc.SetConsole(context.Background(), testSessionID, "PS5")

	s.Require().NoError(err)
	s.True(c.Has(draft.ChangeConsole))
}

func (s *DraftUseCaseTestSuite) TestRefreshFailureDoesNotFailMutation() {
	s.seed(builder.NewDraftBuilder())
	s.mockResolver.EXPECT().Refresh(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("boom"))

	c, err := s.uc.SetNotes(context.Background(), testSessionID, "birthday")

	s.Require().NoError(err)
	s.True(c.Has(draft.ChangeNotes))
}

func (s *DraftUseCaseTestSuite) TestSetRoom() {
	ctx := context.Background()
	s.seed(builder.NewDraftBuilder().With(func(b *builder.DraftBuilder) {
		*b = builder.DraftBuilder{People: 2, Console: "PS5", Window: builder.DefaultWindow()}
	}))
	room := builder.NewRoom()

	s.Run("known room is stored", func() {
		s.mockCatalog.EXPECT().Rooms(gomock.Any(), "PS5").Return([]draft.Room{room}, nil)
		s.expectRefresh(draft.ChangeRoom)

		c, err := s.uc.SetRoom(ctx, testSessionID, room.ID)

		s.Require().NoError(err)
		s.True(c.Has(draft.ChangeRoom | draft.ChangeUnit))
	})

	s.Run("unknown room", func() {
		s.mockCatalog.EXPECT().Rooms(gomock.Any(), "PS5").Return([]draft.Room{room}, nil)

		_, err := s.uc.SetRoom(ctx, testSessionID, "room-missing")
		s.True(errs.Is(err, commands.ErrRoomNotFound))
	})

	s.Run("catalog failure", func() {
		upstream := errs.Mark(errors.New("UNAVAILABLE"), shared.ErrUpstreamUnavailable)
		s.mockCatalog.EXPECT().Rooms(gomock.Any(), "PS5").Return(nil, upstream)

		_, err := s.uc.SetRoom(ctx, testSessionID, room.ID)
		s.True(errs.Is(err, shared.ErrUpstreamUnavailable))
	})
}

func (s *DraftUseCaseTestSuite) TestSetUnit() {
	ctx := context.Background()
	room := builder.NewRoom()
	unit := builder.NewUnit(room)

	s.Run("no room selected is a no-op", func() {
		s.seed(builder.NewDraftBuilder().With(emptyDraft))

		c, err := s.uc.SetUnit(ctx, testSessionID, unit.ID)
		s.Require().NoError(err)
		s.True(c.IsZero())
	})

	s.Run("unit from the room's catalog", func() {
		s.seed(builder.NewDraftBuilder().With(func(b *builder.DraftBuilder) {
			*b = builder.DraftBuilder{People: 2, Console: "PS5", Room: room, Window: builder.DefaultWindow()}
		}))
		s.mockCatalog.EXPECT().Units(gomock.Any(), room.ID, "PS5").Return([]draft.Unit{unit}, nil)
		s.expectRefresh(draft.ChangeUnit)

		c, err := s.uc.SetUnit(ctx, testSessionID, unit.ID)
		s.Require().NoError(err)
		s.True(c.Has(draft.ChangeUnit))
	})

	s.Run("unknown unit", func() {
		s.mockCatalog.EXPECT().Units(gomock.Any(), room.ID, "PS5").Return([]draft.Unit{unit}, nil)

		_, err := s.uc.SetUnit(ctx, testSessionID, "unit-missing")
		s.True(errs.Is(err, commands.ErrUnitNotFound))
	})
}

func (s *DraftUseCaseTestSuite) TestSelectGameUsesCatalogName() {
	s.seed(builder.NewDraftBuilder())
	s.expectRefresh(draft.ChangeGame)

	_, err := s.uc.SelectGame(context.Background(), testSessionID, draft.Game{ID: "game-tekken8", Name: "whatever"})

	s.Require().NoError(err)
	inspect(s.T(), s.store, func(sess *shared.Session) {
		s.Equal([]draft.Game{{ID: "game-tekken8", Name: "Tekken 8"}}, sess.Draft.Games())
	})
}

func (s *DraftUseCaseTestSuite) TestSetDateMovesDisplayMonth() {
	s.seed(builder.NewDraftBuilder())
	s.expectRefresh(draft.ChangeDate)

	c, err := s.uc.SetDate(context.Background(), testSessionID, builder.MustDate("2026-11-03"))

	s.Require().NoError(err)
	s.True(c.Has(draft.ChangeStartTime | draft.ChangeDuration))
	inspect(s.T(), s.store, func(sess *shared.Session) {
		s.Equal(builder.MustDate("2026-11-01"), sess.DisplayMonth)
	})
}

func (s *DraftUseCaseTestSuite) TestUpsertFood() {
	ctx := context.Background()
	s.seed(builder.NewDraftBuilder())
	menu := []draft.FoodItem{builder.NewFood("fnb-cola", 15000, 0), builder.NewFood("fnb-fries", 25000, 0)}

	s.Run("prices from the menu", func() {
		s.mockCatalog.EXPECT().Fnbs(gomock.Any()).Return(menu, nil)
		s.expectRefresh(draft.ChangeFood)

		_, err := s.uc.UpsertFood(ctx, testSessionID, "fnb-fries", 3)

		s.Require().NoError(err)
		inspect(s.T(), s.store, func(sess *shared.Session) {
			s.Equal([]draft.FoodItem{builder.NewFood("fnb-fries", 25000, 3)}, sess.Draft.Foods())
		})
	})

	s.Run("unknown item", func() {
		s.mockCatalog.EXPECT().Fnbs(gomock.Any()).Return(menu, nil)

		_, err := s.uc.UpsertFood(ctx, testSessionID, "fnb-missing", 1)
		s.True(errs.Is(err, commands.ErrFnbNotFound))
	})

	s.Run("zero quantity removes without a menu lookup", func() {
		s.expectRefresh(draft.ChangeFood)

		c, err := s.uc.UpsertFood(ctx, testSessionID, "fnb-fries", 0)

		s.Require().NoError(err)
		s.True(c.Has(draft.ChangeFood))
		inspect(s.T(), s.store, func(sess *shared.Session) {
			s.Empty(sess.Draft.Foods())
		})
	})
}

func (s *DraftUseCaseTestSuite) TestMutationsLockedDuringCheckout() {
	ctx := context.Background()

	s.Run("payment pending", func() {
		s.seed(builder.NewDraftBuilder())
		inspect(s.T(), s.store, func(sess *shared.Session) {
			sess.Handshake = payment.NewHandshake("INV-1", "https://app.sandbox.midtrans.com/x", s.clock.Now())
			sess.Handshake.StartTimer(s.clock, time.Minute, func() {})
		})

		_, err := s.uc.SetNotes(ctx, testSessionID, "late")
		s.True(errs.Is(err, commands.ErrPaymentPending))
	})

	s.Run("submission in flight", func() {
		s.seed(builder.NewDraftBuilder())
		inspect(s.T(), s.store, func(sess *shared.Session) {
			s.Require().NoError(sess.Submission.Begin())
		})

		_, err := s.uc.SetNumberOfPeople(ctx, testSessionID, 3)
		s.True(errs.Is(err, commands.ErrSubmissionPending))
	})
}

func (s *DraftUseCaseTestSuite) TestDiscard() {
	ctx := context.Background()

	s.Run("without a pending payment", func() {
		s.seed(builder.NewDraftBuilder())

		s.Require().NoError(s.uc.Discard(ctx, testSessionID, false))
		s.ErrorIs(s.store.Within(ctx, testSessionID, func(*shared.Session) error { return nil }), shared.ErrSessionNotFound)
	})

	s.Run("pending payment needs confirmation", func() {
		s.seed(builder.NewDraftBuilder())
		inspect(s.T(), s.store, func(sess *shared.Session) {
			sess.Handshake = payment.NewHandshake("INV-1", "https://app.sandbox.midtrans.com/x", s.clock.Now())
			sess.Handshake.StartTimer(s.clock, time.Minute, func() {})
		})
		s.Equal(1, s.clock.PendingTimers())

		err := s.uc.Discard(ctx, testSessionID, false)
		s.True(errs.Is(err, commands.ErrExitGuarded))

		s.Require().NoError(s.uc.Discard(ctx, testSessionID, true))
		s.Equal(0, s.clock.PendingTimers())
	})

	s.Run("unknown session", func() {
		s.ErrorIs(s.uc.Discard(ctx, "missing", true), shared.ErrSessionNotFound)
	})
}

func (s *DraftUseCaseTestSuite) TestShowMonthDelegatesToResolver() {
	month := builder.MustDate("2026-12-01")
	s.mockResolver.EXPECT().ShowMonth(gomock.Any(), testSessionID, month).Return(nil)

	s.NoError(s.uc.ShowMonth(context.Background(), testSessionID, month))
}
