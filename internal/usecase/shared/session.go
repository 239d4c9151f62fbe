package shared

import (
	"sync"
	"time"

	"playroom-booking/internal/domain/availability"
	"playroom-booking/internal/domain/calendar"
	"playroom-booking/internal/domain/draft"
	"playroom-booking/internal/domain/payment"
	"playroom-booking/internal/domain/submission"
	"playroom-booking/internal/domain/user"
)

// Outcome is the last terminal result of a session's flow, kept after the draft
// itself has been discarded so the client can render the result view.
type Outcome struct {
	Kind          string    `json:"kind"` // success | cancelled
	InvoiceNumber string    `json:"invoiceNumber"`
	Mode          string    `json:"mode"`
	Status        string    `json:"status,omitempty"`
	At            time.Time `json:"at"`
}

// Session owns one browser's active draft and everything derived from it.
// All fields are guarded by mu; use SessionStore.Within.
type Session struct {
	mu sync.Mutex

	ID        string
	Owner     user.Identity
	CreatedAt time.Time

	Draft        *draft.Draft
	Facts        availability.Facts
	DisplayMonth calendar.Date
	Submission   submission.Status
	Handshake    *payment.Handshake
	LastOutcome  *Outcome

	pending     draft.Change
	unsubscribe func()
}

func NewSession(id string, owner user.Identity, d *draft.Draft, now time.Time) *Session {
	s := &Session{ID: id, Owner: owner, CreatedAt: now}
	s.ResetDraft(d)
	return s
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// ResetDraft swaps in d, dropping facts, submission state and pending changes.
// A resolved handshake is kept so duplicate gateway signals can still be answered.
func (s *Session) ResetDraft(d *draft.Draft) {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
	s.Draft = d
	s.Facts = availability.Facts{}
	s.Submission = submission.Status{}
	s.pending = 0
	s.unsubscribe = d.Subscribe(func(c draft.Change) { s.pending |= c })
	if s.Handshake != nil && s.Handshake.GuardArmed() {
		s.Handshake.Disarm()
		s.Handshake = nil
	}
}

// TakeChanges returns everything the draft reported since the last call.
func (s *Session) TakeChanges() draft.Change {
	c := s.pending
	s.pending = 0
	return c
}

type FactKeys struct {
	Day         availability.DayKey
	Slot        availability.SlotKey
	Duration    availability.DurationKey
	HasDuration bool
	Window      calendar.Window
}

// FactKeys derives the fact keys the draft implies right now. today picks the
// month shown when neither a month nor a date was chosen yet.
func (s *Session) FactKeys(today calendar.Date) FactKeys {
	var k FactKeys
	d := s.Draft
	k.Window = d.DefaultWindow()

	unit := d.Unit()
	if unit == nil {
		return k
	}
	k.Window = unit.Window(d.DefaultWindow())

	date, hasDate := d.Date()
	month := s.DisplayMonth
	if month.IsZero() {
		month = today
		if hasDate {
			month = date
		}
	}
	k.Day = availability.NewDayKey(unit.ID, month)

	if !hasDate {
		return k
	}
	k.Slot = availability.SlotKey{UnitID: unit.ID, Date: date}

	if start, ok := d.StartTime(); ok {
		k.Duration = availability.DurationKey{UnitID: unit.ID, Date: date, StartTime: start}
		k.HasDuration = true
	}
	return k
}
