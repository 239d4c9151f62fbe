//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"playroom-booking/internal/domain/draft"
	"playroom-booking/internal/domain/user"
	"playroom-booking/internal/infra/sessionstore"
	"playroom-booking/internal/pkg/config"
	"playroom-booking/internal/usecase/shared"

	"github.com/stretchr/testify/require"
)

const testSessionID = "sess-1"

var testNow = time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newStore() *sessionstore.MemoryStore {
	return sessionstore.NewMemoryStore(config.SessionConfig{TTL: time.Hour, CleanupInterval: time.Hour}, discardLogger())
}

func seedSession(t *testing.T, store shared.SessionStore, owner user.Identity, d *draft.Draft) {
	t.Helper()
	require.NoError(t, store.Create(context.Background(), shared.NewSession(testSessionID, owner, d, testNow)))
}

// inspect runs fn against the stored session under its lock.
func inspect(t *testing.T, store shared.SessionStore, fn func(s *shared.Session)) {
	t.Helper()
	require.NoError(t, store.Within(context.Background(), testSessionID, func(s *shared.Session) error {
		fn(s)
		return nil
	}))
}
