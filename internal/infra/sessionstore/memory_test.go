//go:build unit

package sessionstore_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"playroom-booking/internal/domain/draft"
	"playroom-booking/internal/domain/payment"
	"playroom-booking/internal/domain/user"
	"playroom-booking/internal/infra/sessionstore"
	"playroom-booking/internal/pkg/clock"
	"playroom-booking/internal/pkg/config"
	"playroom-booking/internal/usecase/shared"
	"playroom-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(ttl time.Duration) *sessionstore.MemoryStore {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return sessionstore.NewMemoryStore(config.SessionConfig{TTL: ttl, CleanupInterval: time.Hour}, logger)
}

func newSession(id string) *shared.Session {
	return shared.NewSession(id, user.Identity{}, draft.New(builder.DefaultWindow()), time.Now())
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("within sees the stored session", func(t *testing.T) {
		s := newStore(time.Hour)
		require.NoError(t, s.Create(ctx, newSession("s-1")))

		err := s.Within(ctx, "s-1", func(sess *shared.Session) error {
			sess.Draft.SetConsole("PS5")
			return nil
		})
		require.NoError(t, err)

		_ = s.Within(ctx, "s-1", func(sess *shared.Session) error {
			assert.Equal(t, "PS5", sess.Draft.Console())
			assert.True(t, sess.TakeChanges().Has(draft.ChangeConsole))
			return nil
		})
	})

	t.Run("errors from fn are returned", func(t *testing.T) {
		s := newStore(time.Hour)
		require.NoError(t, s.Create(ctx, newSession("s-1")))
		boom := errors.New("boom")

		assert.ErrorIs(t, s.Within(ctx, "s-1", func(*shared.Session) error { return boom }), boom)
	})

	t.Run("unknown and deleted sessions", func(t *testing.T) {
		s := newStore(time.Hour)
		require.NoError(t, s.Create(ctx, newSession("s-1")))
		require.NoError(t, s.Delete(ctx, "s-1"))

		assert.ErrorIs(t, s.Within(ctx, "s-1", func(*shared.Session) error { return nil }), shared.ErrSessionNotFound)
		assert.ErrorIs(t, s.Delete(ctx, "s-1"), shared.ErrSessionNotFound)
		assert.ErrorIs(t, s.Within(ctx, "", func(*shared.Session) error { return nil }), shared.ErrSessionNotFound)
	})

	t.Run("idle session expires", func(t *testing.T) {
		s := newStore(20 * time.Millisecond)
		require.NoError(t, s.Create(ctx, newSession("s-1")))

		time.Sleep(60 * time.Millisecond)

		assert.ErrorIs(t, s.Within(ctx, "s-1", func(*shared.Session) error { return nil }), shared.ErrSessionNotFound)
	})

	t.Run("access is serialized per session", func(t *testing.T) {
		s := newStore(time.Hour)
		require.NoError(t, s.Create(ctx, newSession("s-1")))

		var wg sync.WaitGroup
		for i := 1; i <= 20; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				_ = s.Within(ctx, "s-1", func(sess *shared.Session) error {
					sess.Draft.SetNotes(string(rune('a' + n)))
					return nil
				})
			}(i)
		}
		wg.Wait()
		assert.Equal(t, 1, s.Count())
	})

	t.Run("close stops pending payment timers", func(t *testing.T) {
		s := newStore(time.Hour)
		clk := clock.NewMockClock(time.Date(2026, time.October, 20, 14, 0, 0, 0, time.UTC))
		sess := newSession("s-1")
		fired := false
		sess.Handshake = payment.NewHandshake("INV-1", "https://app.sandbox.midtrans.com/snap", clk.Now())
		sess.Handshake.StartTimer(clk, 30*time.Minute, func() { fired = true })
		require.NoError(t, s.Create(ctx, sess))
		require.NoError(t, s.Create(ctx, newSession("s-2")))

		assert.Equal(t, 2, s.Close())
		assert.Zero(t, s.Count())
		assert.Zero(t, clk.PendingTimers())

		clk.Add(time.Hour)
		assert.False(t, fired)
	})
}
