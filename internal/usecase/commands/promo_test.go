//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"playroom-booking/internal/domain/draft"
	"playroom-booking/internal/domain/payment"
	"playroom-booking/internal/domain/promo"
	"playroom-booking/internal/domain/user"
	"playroom-booking/internal/infra/sessionstore"
	"playroom-booking/internal/pkg/errs"
	"playroom-booking/internal/usecase/commands"
	"playroom-booking/internal/usecase/shared"
	"playroom-booking/tests/common/builder"
	commandsmock "playroom-booking/tests/mock/commands"
	sharedmock "playroom-booking/tests/mock/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PromoUseCaseTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockAPI      *sharedmock.MockPromoAPI
	mockResolver *commandsmock.MockResolver
	store        *sessionstore.MemoryStore
	uc           commands.PromoCommands
}

func (s *PromoUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockAPI = sharedmock.NewMockPromoAPI(s.mockCtrl)
	s.mockResolver = commandsmock.NewMockResolver(s.mockCtrl)
	s.mockResolver.EXPECT().Refresh(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.store = newStore()
	s.uc = commands.NewPromoUseCase(s.store, s.mockResolver, s.mockAPI, discardLogger())

	seedSession(s.T(), s.store, user.Identity{}, builder.NewDraftBuilder().Build())
}

func (s *PromoUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPromoUseCaseSuite(t *testing.T) {
	suite.Run(t, new(PromoUseCaseTestSuite))
}

func (s *PromoUseCaseTestSuite) currentPromo() *draft.Promo {
	var p *draft.Promo
	inspect(s.T(), s.store, func(sess *shared.Session) { p = sess.Draft.Promo() })
	return p
}

func (s *PromoUseCaseTestSuite) TestApplyPromo() {
	ctx := context.Background()

	s.Run("active code is applied and normalized", func() {
		s.mockAPI.EXPECT().ValidatePromo(gomock.Any(), promo.Code("SAVE10")).
			Return(&promo.Validation{PromoCode: "save10", Percentage: 10, IsActive: true}, nil)

		outcome, err := s.uc.ApplyPromo(ctx, testSessionID, " save10 ")

		s.Require().NoError(err)
		s.Equal(promo.OutcomeApplied, outcome)
		p := s.currentPromo()
		s.Require().NotNil(p)
		s.Equal("SAVE10", p.Code)
		s.InDelta(10.0, p.Percentage, 0.0001)
	})

	s.Run("inactive code leaves the draft untouched", func() {
		s.mockAPI.EXPECT().ValidatePromo(gomock.Any(), promo.Code("OLD")).
			Return(&promo.Validation{PromoCode: "OLD", Percentage: 20, IsActive: false}, nil)

		outcome, err := s.uc.ApplyPromo(ctx, testSessionID, "OLD")

		s.Require().NoError(err)
		s.Equal(promo.OutcomeInactive, outcome)
		s.Equal("SAVE10", s.currentPromo().Code)
	})

	s.Run("validator echoing another code is not found", func() {
		s.mockAPI.EXPECT().ValidatePromo(gomock.Any(), promo.Code("ABC")).
			Return(&promo.Validation{PromoCode: "XYZ", Percentage: 5, IsActive: true}, nil)

		outcome, err := s.uc.ApplyPromo(ctx, testSessionID, "ABC")

		s.True(errs.Is(err, commands.ErrPromoNotFound))
		s.Equal(promo.OutcomeNotFound, outcome)
	})

	s.Run("upstream failure surfaces as not found", func() {
		s.mockAPI.EXPECT().ValidatePromo(gomock.Any(), promo.Code("NOPE")).
			Return(nil, errors.New("NOT_FOUND: promo lookup"))

		_, err := s.uc.ApplyPromo(ctx, testSessionID, "NOPE")

		s.True(errs.Is(err, commands.ErrPromoNotFound))
	})

	s.Run("malformed code never reaches upstream", func() {
		_, err := s.uc.ApplyPromo(ctx, testSessionID, "!")

		s.True(errs.Is(err, commands.ErrPromoNotFound))
		s.True(errs.Is(err, promo.ErrInvalidPromoCode))
	})
}

func (s *PromoUseCaseTestSuite) TestApplyPromoWhilePaymentPending() {
	inspect(s.T(), s.store, func(sess *shared.Session) {
		sess.Handshake = payment.NewHandshake("INV-1", "https://app.sandbox.midtrans.com/x", testNow)
	})

	_, err := s.uc.ApplyPromo(context.Background(), testSessionID, "SAVE10")

	s.True(errs.Is(err, commands.ErrPaymentPending))
}

func (s *PromoUseCaseTestSuite) TestRemovePromo() {
	ctx := context.Background()
	inspect(s.T(), s.store, func(sess *shared.Session) {
		d, _ := promo.NewPercentageDiscount(15)
		sess.Draft.ApplyPromo("SAVE15", d)
		sess.TakeChanges()
	})

	c, err := s.uc.RemovePromo(ctx, testSessionID)
	s.Require().NoError(err)
	s.True(c.Has(draft.ChangePromo))
	s.Nil(s.currentPromo())

	c, err = s.uc.RemovePromo(ctx, testSessionID)
	s.Require().NoError(err)
	s.True(c.IsZero())
}
