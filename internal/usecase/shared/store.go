package shared

import "context"

type SessionStore interface {
	// Create registers a new session; an existing session with the same id is replaced.
	Create(ctx context.Context, sess *Session) error
	// Within runs fn while holding the session lock and refreshes the session's expiry.
	Within(ctx context.Context, sessionID string, fn func(sess *Session) error) error
	// Delete drops the session and disarms any pending payment timer.
	Delete(ctx context.Context, sessionID string) error
}
