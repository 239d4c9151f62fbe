package payment

import (
	"slices"
	"strings"
	"time"

	"playroom-booking/internal/pkg/clock"
)

type State string

const (
	StateAwaitingGateway State = "awaiting_gateway"
	StateCompleted       State = "completed"
	StateCancelled       State = "cancelled"
	StateUnknown         State = "unknown"
)

var validTransitions = map[State][]State{
	StateAwaitingGateway: {StateCompleted, StateCancelled, StateUnknown},
	StateCompleted:       {},
	StateCancelled:       {},
	StateUnknown:         {},
}

func (s State) CanTransitionTo(target State) bool {
	return slices.Contains(validTransitions[s], target)
}

func (s State) IsTerminal() bool {
	allowed, ok := validTransitions[s]
	return !ok || len(allowed) == 0
}

// Outcome is what the customer is shown once the handshake resolves.
// Unknown is shown as a cancellation.
func (s State) Outcome() string {
	switch s {
	case StateCompleted:
		return "success"
	case StateAwaitingGateway:
		return "pending"
	default:
		return "cancelled"
	}
}

// ClassifyStatus maps a gateway transaction status onto a handshake state.
func ClassifyStatus(transactionStatus string) State {
	switch strings.ToLower(strings.TrimSpace(transactionStatus)) {
	case "settlement", "capture", "pending", "success":
		return StateCompleted
	case "cancel", "expire", "deny", "failure":
		return StateCancelled
	default:
		return StateUnknown
	}
}

type Source string

const (
	SourceRedirect     Source = "redirect"
	SourceNotification Source = "notification"
	SourceTimeout      Source = "timeout"
)

type Signal struct {
	OrderID           string
	TransactionStatus string
	Source            Source
}

// Handshake tracks one redirect to the payment gateway. It is armed on creation
// and resolves exactly once.
type Handshake struct {
	invoice     string
	redirectURL string
	state       State
	armedAt     time.Time
	resolvedAt  time.Time
	resolvedBy  Source
	timer       clock.Timer
}

// NewHandshake returns a handshake awaiting the gateway, with no timer yet.
func NewHandshake(invoice, redirectURL string, armedAt time.Time) *Handshake {
	return &Handshake{
		invoice:     invoice,
		redirectURL: redirectURL,
		state:       StateAwaitingGateway,
		armedAt:     armedAt,
	}
}

// StartTimer schedules onTimeout on the clock's goroutine after timeout, unless a
// terminal signal stops it first. The callback must lock its owner's state and
// call Expire. A resolved handshake or a non-positive timeout starts nothing.
func (h *Handshake) StartTimer(clk clock.Clock, timeout time.Duration, onTimeout func()) {
	if timeout <= 0 || onTimeout == nil || h.state != StateAwaitingGateway {
		return
	}
	h.Disarm()
	t := clk.AfterFunc(timeout, onTimeout)
	if h.state != StateAwaitingGateway {
		t.Stop()
		return
	}
	h.timer = t
}

func (h *Handshake) Invoice() string       { return h.invoice }
func (h *Handshake) RedirectURL() string   { return h.redirectURL }
func (h *Handshake) State() State          { return h.state }
func (h *Handshake) ArmedAt() time.Time    { return h.armedAt }
func (h *Handshake) ResolvedAt() time.Time { return h.resolvedAt }
func (h *Handshake) ResolvedBy() Source    { return h.resolvedBy }

// GuardArmed reports whether leaving the flow needs explicit confirmation.
func (h *Handshake) GuardArmed() bool {
	return h != nil && h.state == StateAwaitingGateway
}

// Receive applies a gateway signal. Signals for another order and signals after
// resolution are ignored; applied reports whether this call resolved the handshake.
func (h *Handshake) Receive(sig Signal, now time.Time) (State, bool) {
	if sig.OrderID != h.invoice {
		return h.state, false
	}
	return h.resolve(ClassifyStatus(sig.TransactionStatus), sig.Source, now)
}

// Expire resolves a still-pending handshake as Unknown.
func (h *Handshake) Expire(now time.Time) (State, bool) {
	return h.resolve(StateUnknown, SourceTimeout, now)
}

// Disarm stops the timer without resolving, used when the draft is discarded.
func (h *Handshake) Disarm() {
	if h.timer != nil {
		h.timer.Stop()
		h.timer = nil
	}
}

func (h *Handshake) resolve(target State, src Source, now time.Time) (State, bool) {
	if !h.state.CanTransitionTo(target) {
		return h.state, false
	}
	h.state = target
	h.resolvedAt = now
	h.resolvedBy = src
	h.Disarm()
	return h.state, true
}
