package submission

type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
	// StateFaulted: upstream accepted the booking but the handover to payment
	// cannot happen. Terminal for this draft.
	StateFaulted State = "faulted"
)

// Status tracks one draft's submission attempts. A failed attempt may be retried;
// a faulted one may not.
type Status struct {
	state     State
	attempts  int
	lastError string
	invoice   string
}

func (s *Status) State() State {
	if s.state == "" {
		return StateIdle
	}
	return s.state
}

func (s *Status) Attempts() int     { return s.attempts }
func (s *Status) LastError() string { return s.lastError }
func (s *Status) Invoice() string   { return s.invoice }

func (s *Status) Begin() error {
	switch s.State() {
	case StateSubmitting, StateSucceeded:
		return ErrAlreadySubmitting
	case StateFaulted:
		return ErrFaulted
	}
	s.state = StateSubmitting
	s.attempts++
	s.lastError = ""
	return nil
}

func (s *Status) Succeed(invoice string) {
	s.state = StateSucceeded
	s.invoice = invoice
}

func (s *Status) Fail(err error) {
	s.state = StateFailed
	if err != nil {
		s.lastError = err.Error()
	}
}

// Fault records an accepted booking whose follow-up failed. The invoice is kept
// so the booking can be traced upstream.
func (s *Status) Fault(invoice string, err error) {
	s.state = StateFaulted
	s.invoice = invoice
	if err != nil {
		s.lastError = err.Error()
	}
}
