//go:build unit

package payment_test

import (
	"testing"
	"time"

	"playroom-booking/internal/domain/payment"
	"playroom-booking/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyStatus(t *testing.T) {
	cases := map[string]payment.State{
		"settlement": payment.StateCompleted,
		"capture":    payment.StateCompleted,
		"pending":    payment.StateCompleted,
		"success":    payment.StateCompleted,
		" Success ":  payment.StateCompleted,
		"cancel":     payment.StateCancelled,
		"expire":     payment.StateCancelled,
		"deny":       payment.StateCancelled,
		"failure":    payment.StateCancelled,
		"refund":     payment.StateUnknown,
		"":           payment.StateUnknown,
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, payment.ClassifyStatus(in))
		})
	}
}

func TestHandshake(t *testing.T) {
	start := time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)

	arm := func(clk *clock.MockClock, fired *int) *payment.Handshake {
		h := payment.NewHandshake("INV-001", "https://app.sandbox.midtrans.com/snap/v2/vtweb/abc", clk.Now())
		h.StartTimer(clk, 30*time.Minute, func() {
			*fired++
			h.Expire(clk.Now())
		})
		return h
	}

	t.Run("expire resolves as cancelled and disarms the guard", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		fired := 0
		h := arm(clk, &fired)
		require.True(t, h.GuardArmed())

		state, applied := h.Receive(payment.Signal{OrderID: "INV-001", TransactionStatus: "expire", Source: payment.SourceRedirect}, clk.Now())

		assert.True(t, applied)
		assert.Equal(t, payment.StateCancelled, state)
		assert.Equal(t, "cancelled", state.Outcome())
		assert.False(t, h.GuardArmed())
		assert.Zero(t, clk.PendingTimers())

		clk.Add(time.Hour)
		assert.Zero(t, fired)
	})

	t.Run("duplicate signals are no-ops", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		fired := 0
		h := arm(clk, &fired)

		_, first := h.Receive(payment.Signal{OrderID: "INV-001", TransactionStatus: "settlement", Source: payment.SourceNotification}, clk.Now())
		state, second := h.Receive(payment.Signal{OrderID: "INV-001", TransactionStatus: "deny", Source: payment.SourceRedirect}, clk.Now())

		assert.True(t, first)
		assert.False(t, second)
		assert.Equal(t, payment.StateCompleted, state)
		assert.Equal(t, payment.SourceNotification, h.ResolvedBy())
	})

	t.Run("signal for another order is ignored", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		fired := 0
		h := arm(clk, &fired)

		_, applied := h.Receive(payment.Signal{OrderID: "INV-999", TransactionStatus: "settlement"}, clk.Now())

		assert.False(t, applied)
		assert.True(t, h.GuardArmed())
	})

	t.Run("unknown status is terminal", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		fired := 0
		h := arm(clk, &fired)

		state, applied := h.Receive(payment.Signal{OrderID: "INV-001", TransactionStatus: "chargeback"}, clk.Now())

		assert.True(t, applied)
		assert.Equal(t, payment.StateUnknown, state)
		assert.Equal(t, "cancelled", state.Outcome())
		assert.False(t, h.GuardArmed())
	})

	t.Run("timeout resolves as unknown", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		fired := 0
		h := arm(clk, &fired)

		clk.Add(29 * time.Minute)
		assert.True(t, h.GuardArmed())

		clk.Add(time.Minute)
		assert.Equal(t, 1, fired)
		assert.Equal(t, payment.StateUnknown, h.State())
		assert.Equal(t, payment.SourceTimeout, h.ResolvedBy())

		_, applied := h.Receive(payment.Signal{OrderID: "INV-001", TransactionStatus: "settlement"}, clk.Now())
		assert.False(t, applied)
	})

	t.Run("timer firing during start still expires the handshake", func(t *testing.T) {
		clk := immediateClock{now: start}
		h := payment.NewHandshake("INV-001", "https://app.sandbox.midtrans.com/snap/v2/vtweb/abc", start)

		h.StartTimer(clk, time.Nanosecond, func() { h.Expire(clk.Now()) })

		assert.Equal(t, payment.StateUnknown, h.State())
		assert.Equal(t, payment.SourceTimeout, h.ResolvedBy())
		assert.False(t, h.GuardArmed())
	})

	t.Run("resolved handshake starts no timer", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		h := payment.NewHandshake("INV-001", "https://app.sandbox.midtrans.com/snap/v2/vtweb/abc", start)
		h.Receive(payment.Signal{OrderID: "INV-001", TransactionStatus: "settlement"}, start)

		h.StartTimer(clk, time.Minute, func() { t.Fatal("timer must not start") })

		assert.Zero(t, clk.PendingTimers())
	})
}

// immediateClock runs timer callbacks inside AfterFunc.
type immediateClock struct{ now time.Time }

func (c immediateClock) Now() time.Time { return c.now }

func (c immediateClock) AfterFunc(_ time.Duration, f func()) clock.Timer {
	f()
	return stoppedTimer{}
}

type stoppedTimer struct{}

func (stoppedTimer) Stop() bool { return false }
