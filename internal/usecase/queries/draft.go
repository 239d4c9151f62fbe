package queries

import (
	"context"
	"time"

	"playroom-booking/internal/domain/availability"
	"playroom-booking/internal/domain/calendar"
	"playroom-booking/internal/domain/draft"
	"playroom-booking/internal/domain/payment"
	"playroom-booking/internal/domain/pricing"
	"playroom-booking/internal/domain/submission"
	"playroom-booking/internal/domain/user"
	"playroom-booking/internal/pkg/clock"
	"playroom-booking/internal/pkg/config"
	"playroom-booking/internal/pkg/ptr"
	"playroom-booking/internal/usecase/shared"
)

type StepView struct {
	Step       draft.Step `json:"step"`
	Accessible bool       `json:"accessible"`
	Complete   bool       `json:"complete"`
}

type SubmissionView struct {
	State     submission.State `json:"state"`
	Attempts  int              `json:"attempts"`
	LastError string           `json:"lastError,omitempty"`
	Invoice   string           `json:"invoiceNumber,omitempty"`
}

type PaymentView struct {
	State       payment.State `json:"state"`
	Outcome     string        `json:"outcome"`
	Invoice     string        `json:"invoiceNumber"`
	RedirectURL string        `json:"redirectUrl"`
	ArmedAt     time.Time     `json:"armedAt"`
	ExitGuarded bool          `json:"exitGuarded"`
}

// DraftView is everything a client needs to render the booking flow.
type DraftView struct {
	SessionID   string          `json:"sessionId"`
	Mode        submission.Mode `json:"mode"`
	Draft       draft.Snapshot  `json:"draft"`
	Steps       []StepView      `json:"steps"`
	Totals      pricing.Totals  `json:"totals"`
	Submission  SubmissionView  `json:"submission"`
	Payment     *PaymentView    `json:"payment,omitempty"`
	LastOutcome *shared.Outcome `json:"lastOutcome,omitempty"`
}

// FactStatus reports a fact's fetch state. Error is transient and never blocks input.
type FactStatus struct {
	Loading bool   `json:"loading"`
	Loaded  bool   `json:"loaded"`
	Error   string `json:"error,omitempty"`
}

type DaysView struct {
	UnitID      string          `json:"unitId,omitempty"`
	Month       string          `json:"month,omitempty"`
	FullyBooked map[string]bool `json:"fullyBooked"`
	FactStatus
}

type SlotsView struct {
	UnitID string              `json:"unitId,omitempty"`
	Date   string              `json:"date,omitempty"`
	Slots  []availability.Slot `json:"slots"`
	FactStatus
}

type DurationsView struct {
	Durations []int `json:"durations"`
	Selected  int   `json:"selected"`
	Locked    bool  `json:"locked"`
	FactStatus
}

type DraftQueries interface {
	GetDraft(ctx context.Context, sessionID string, actor user.Identity) (*DraftView, error)
	Days(ctx context.Context, sessionID string) (*DaysView, error)
	Slots(ctx context.Context, sessionID string) (*SlotsView, error)
	Durations(ctx context.Context, sessionID string) (*DurationsView, error)
}

type draftQueriesImpl struct {
	store   shared.SessionStore
	clock   clock.Clock
	loc     *time.Location
	taxRate float64
}

func NewDraftQueries(store shared.SessionStore, clk clock.Clock, cfg config.Config) DraftQueries {
	return &draftQueriesImpl{
		store:   store,
		clock:   clk,
		loc:     cfg.Booking.Location(),
		taxRate: cfg.Booking.TaxRate,
	}
}

func (q *draftQueriesImpl) GetDraft(ctx context.Context, sessionID string, actor user.Identity) (*DraftView, error) {
	var view *DraftView
	err := q.store.Within(ctx, sessionID, func(s *shared.Session) error {
		d := s.Draft
		snap := d.Snapshot()

		steps := make([]StepView, 0, int(draft.StepPayment))
		for st := draft.StepConsole; st <= draft.StepPayment; st++ {
			steps = append(steps, StepView{Step: st, Accessible: d.IsStepAccessible(st), Complete: d.IsStepComplete(st)})
		}

		view = &DraftView{
			SessionID: s.ID,
			Mode:      submission.SelectMode(snap, actor.Role.IsStaff()),
			Draft:     snap,
			Steps:     steps,
			Totals:    pricing.WithTax(d.Breakdown(), q.taxRate, d.ActiveStep() == draft.StepPayment),
			Submission: SubmissionView{
				State:     s.Submission.State(),
				Attempts:  s.Submission.Attempts(),
				LastError: s.Submission.LastError(),
				Invoice:   s.Submission.Invoice(),
			},
		}
		if h := s.Handshake; h != nil {
			view.Payment = &PaymentView{
				State:       h.State(),
				Outcome:     h.State().Outcome(),
				Invoice:     h.Invoice(),
				RedirectURL: h.RedirectURL(),
				ArmedAt:     h.ArmedAt(),
				ExitGuarded: h.GuardArmed(),
			}
		}
		if s.LastOutcome != nil {
			view.LastOutcome = ptr.Of(*s.LastOutcome)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *draftQueriesImpl) Days(ctx context.Context, sessionID string) (*DaysView, error) {
	var view *DaysView
	err := q.store.Within(ctx, sessionID, func(s *shared.Session) error {
		keys := s.FactKeys(q.today())
		view = &DaysView{FullyBooked: map[string]bool{}}
		if keys.Day.IsZero() {
			return nil
		}
		view.UnitID = keys.Day.UnitID
		view.Month = keys.Day.Month.String()[:7]

		f := s.Facts.Days
		view.FactStatus = status(f.Loading, f.Loaded, f.Err)
		if f.Loaded && f.Key == keys.Day {
			for k, v := range f.Value {
				view.FullyBooked[k] = v
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// Slots falls back to the synthesized grid until the server answered, and applies
// the past-time guard on every read.
func (q *draftQueriesImpl) Slots(ctx context.Context, sessionID string) (*SlotsView, error) {
	var view *SlotsView
	err := q.store.Within(ctx, sessionID, func(s *shared.Session) error {
		keys := s.FactKeys(q.today())
		view = &SlotsView{Slots: []availability.Slot{}}
		if keys.Slot.IsZero() {
			return nil
		}
		view.UnitID = keys.Slot.UnitID
		view.Date = keys.Slot.Date.String()

		f := s.Facts.Slots
		view.FactStatus = status(f.Loading, f.Loaded, f.Err)
		slots := availability.SynthesizeSlots(keys.Window)
		if f.Loaded && f.Key == keys.Slot {
			slots = f.Value
		}
		view.Slots = availability.ApplyPastGuard(slots, keys.Slot.Date, q.clock.Now().In(q.loc))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *draftQueriesImpl) Durations(ctx context.Context, sessionID string) (*DurationsView, error) {
	var view *DurationsView
	err := q.store.Within(ctx, sessionID, func(s *shared.Session) error {
		set, _ := s.Draft.ValidDurations()
		if set == nil {
			set = []int{}
		}
		f := s.Facts.Durations
		view = &DurationsView{
			Durations:  set,
			Selected:   s.Draft.Duration(),
			Locked:     s.Draft.IsRewardMode(),
			FactStatus: status(f.Loading, f.Loaded, f.Err),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *draftQueriesImpl) today() calendar.Date {
	return calendar.DateOf(q.clock.Now().In(q.loc))
}

func status(loading, loaded bool, err error) FactStatus {
	st := FactStatus{Loading: loading, Loaded: loaded}
	if err != nil {
		st.Error = "availability could not be refreshed"
	}
	return st
}
