package commands

import (
	"context"
	"log/slog"
	"time"

	"playroom-booking/internal/domain/calendar"
	"playroom-booking/internal/domain/draft"
	"playroom-booking/internal/domain/payment"
	"playroom-booking/internal/domain/submission"
	"playroom-booking/internal/domain/user"
	"playroom-booking/internal/pkg/clock"
	"playroom-booking/internal/pkg/config"
	"playroom-booking/internal/pkg/errs"
	"playroom-booking/internal/usecase/shared"
)

const (
	OutcomeSuccess   = "success"
	OutcomeRedirect  = "redirect"
	OutcomeCancelled = "cancelled"
)

type SubmitInput struct {
	Actor user.Identity
	// Customer is required for guests and for over-the-counter bookings; logged-in
	// customers default to their token's profile.
	Customer *submission.Customer
}

type SubmitResult struct {
	Outcome       string
	Mode          submission.Mode
	InvoiceNumber string
	RedirectURL   string
	RedirectDelay time.Duration
}

type SignalResult struct {
	State         payment.State
	Outcome       string
	Applied       bool
	InvoiceNumber string
}

type CheckoutCommands interface {
	Submit(ctx context.Context, sessionID string, in SubmitInput) (*SubmitResult, error)
	// HandleSignal applies a gateway completion signal relayed by the client.
	HandleSignal(ctx context.Context, sessionID string, sig payment.Signal) (*SignalResult, error)
}

type checkoutUseCaseImpl struct {
	store    shared.SessionStore
	bookings shared.BookingAPI
	clock    clock.Clock
	loc      *time.Location
	window   calendar.Window
	booking  config.BookingConfig
	payment  config.PaymentConfig
	logger   *slog.Logger
}

func NewCheckoutUseCase(store shared.SessionStore, bookings shared.BookingAPI, clk clock.Clock, cfg config.Config, logger *slog.Logger) CheckoutCommands {
	return &checkoutUseCaseImpl{
		store:    store,
		bookings: bookings,
		clock:    clk,
		loc:      cfg.Booking.Location(),
		window:   DefaultWindow(cfg.Booking),
		booking:  cfg.Booking,
		payment:  cfg.Payment,
		logger:   logger,
	}
}

func (uc *checkoutUseCaseImpl) Submit(ctx context.Context, sessionID string, in SubmitInput) (*SubmitResult, error) {
	var req submission.Request
	err := uc.store.Within(ctx, sessionID, func(s *shared.Session) error {
		if s.Handshake.GuardArmed() {
			return ErrPaymentPending
		}
		// upstream already holds an invoice for this draft; never book it twice
		if s.Submission.State() == submission.StateFaulted {
			return ErrGatewayIntegration
		}
		snap := s.Draft.Snapshot()
		staff := in.Actor.Role.IsStaff()

		var aerr error
		req, aerr = submission.Assemble(submission.Input{
			Draft:          snap,
			Staff:          staff,
			Customer:       uc.customerFor(submission.SelectMode(snap, staff), in),
			Location:       uc.loc,
			Now:            uc.clock.Now(),
			RewardLeadTime: uc.booking.RewardLeadTime,
		})
		if aerr != nil {
			return aerr
		}
		return s.Submission.Begin()
	})
	if err != nil {
		return nil, err
	}

	receipt, callErr := uc.send(ctx, req)

	var result *SubmitResult
	err = uc.store.Within(context.WithoutCancel(ctx), sessionID, func(s *shared.Session) error {
		if callErr != nil {
			s.Submission.Fail(callErr)
			return nil
		}
		var ferr error
		result, ferr = uc.complete(s, req.Mode, receipt)
		return ferr
	})
	if callErr != nil {
		uc.logger.Warn("Booking submission failed",
			slog.String("session_id", sessionID), slog.String("mode", string(req.Mode)), slog.Any("error", callErr))
		return nil, errs.Wrap(callErr, "booking submission failed")
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *checkoutUseCaseImpl) customerFor(mode submission.Mode, in SubmitInput) *submission.Customer {
	if in.Customer != nil || mode == submission.ModeOTS || in.Actor.IsGuest() {
		return in.Customer
	}
	return &submission.Customer{Name: in.Actor.Name, Email: in.Actor.Email, Phone: in.Actor.Phone}
}

func (uc *checkoutUseCaseImpl) send(ctx context.Context, req submission.Request) (*shared.BookingReceipt, error) {
	switch req.Mode {
	case submission.ModeReward:
		return uc.bookings.SubmitReward(ctx, *req.Reward)
	case submission.ModeOTS:
		return uc.bookings.SubmitOTS(ctx, *req.OTS)
	default:
		return uc.bookings.SubmitNormal(ctx, *req.Normal)
	}
}

// complete records an accepted booking. Reward and counter bookings are final;
// a normal booking hands over to the payment gateway.
func (uc *checkoutUseCaseImpl) complete(s *shared.Session, mode submission.Mode, receipt *shared.BookingReceipt) (*SubmitResult, error) {
	now := uc.clock.Now()

	if mode != submission.ModeNormal {
		s.Submission.Succeed(receipt.InvoiceNumber)
		s.LastOutcome = &shared.Outcome{Kind: OutcomeSuccess, InvoiceNumber: receipt.InvoiceNumber, Mode: string(mode), At: now}
		s.ResetDraft(draft.New(uc.window))
		uc.logger.Info("Booking confirmed",
			slog.String("session_id", s.ID), slog.String("mode", string(mode)), slog.String("invoice", receipt.InvoiceNumber))
		return &SubmitResult{Outcome: OutcomeSuccess, Mode: mode, InvoiceNumber: receipt.InvoiceNumber}, nil
	}

	if !submission.IsGatewayURL(receipt.RedirectURL, uc.payment.GatewayHosts) {
		s.Submission.Fault(receipt.InvoiceNumber, ErrGatewayIntegration)
		uc.logger.Error("Booking accepted without a usable gateway url",
			slog.String("session_id", s.ID), slog.String("invoice", receipt.InvoiceNumber),
			slog.String("redirect_url", receipt.RedirectURL))
		return nil, ErrGatewayIntegration
	}

	s.Submission.Succeed(receipt.InvoiceNumber)
	h := payment.NewHandshake(receipt.InvoiceNumber, receipt.RedirectURL, uc.clock.Now())
	s.Handshake = h
	sessionID := s.ID
	h.StartTimer(uc.clock, uc.payment.Timeout, func() {
		uc.expire(sessionID, h)
	})
	uc.logger.Info("Payment handshake armed",
		slog.String("session_id", s.ID), slog.String("invoice", receipt.InvoiceNumber))

	return &SubmitResult{
		Outcome:       OutcomeRedirect,
		Mode:          mode,
		InvoiceNumber: receipt.InvoiceNumber,
		RedirectURL:   receipt.RedirectURL,
		RedirectDelay: uc.payment.RedirectDelay,
	}, nil
}

func (uc *checkoutUseCaseImpl) HandleSignal(ctx context.Context, sessionID string, sig payment.Signal) (*SignalResult, error) {
	var result *SignalResult
	err := uc.store.Within(ctx, sessionID, func(s *shared.Session) error {
		h := s.Handshake
		if h == nil {
			return ErrNoPendingPayment
		}
		state, applied := h.Receive(sig, uc.clock.Now())
		if applied {
			uc.finish(s, h)
		} else {
			uc.logger.Debug("Ignored gateway signal",
				slog.String("session_id", sessionID), slog.String("order_id", sig.OrderID),
				slog.String("source", string(sig.Source)), slog.String("state", string(state)))
		}
		result = &SignalResult{State: state, Outcome: state.Outcome(), Applied: applied, InvoiceNumber: h.Invoice()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// expire runs on the timer goroutine once the payment window lapses.
func (uc *checkoutUseCaseImpl) expire(sessionID string, h *payment.Handshake) {
	err := uc.store.Within(context.Background(), sessionID, func(s *shared.Session) error {
		if s.Handshake != h {
			return nil
		}
		if _, applied := h.Expire(uc.clock.Now()); applied {
			uc.finish(s, h)
		}
		return nil
	})
	if err != nil && !errs.Is(err, shared.ErrSessionNotFound) {
		uc.logger.Warn("Failed to expire payment handshake",
			slog.String("session_id", sessionID), slog.Any("error", err))
	}
}

// finish turns a resolved handshake into the outcome view and drops the draft.
func (uc *checkoutUseCaseImpl) finish(s *shared.Session, h *payment.Handshake) {
	state := h.State()
	s.LastOutcome = &shared.Outcome{
		Kind:          state.Outcome(),
		InvoiceNumber: h.Invoice(),
		Mode:          string(submission.ModeNormal),
		Status:        string(state),
		At:            h.ResolvedAt(),
	}
	s.ResetDraft(draft.New(uc.window))
	uc.logger.Info("Payment handshake resolved",
		slog.String("session_id", s.ID), slog.String("invoice", h.Invoice()),
		slog.String("state", string(state)), slog.String("source", string(h.ResolvedBy())))
}
