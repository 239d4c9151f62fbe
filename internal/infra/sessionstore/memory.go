package sessionstore

import (
	"context"
	"log/slog"

	"playroom-booking/internal/pkg/config"
	"playroom-booking/internal/usecase/shared"

	"github.com/patrickmn/go-cache"
)

// MemoryStore keeps sessions in process memory. An idle session expires after the
// configured TTL, which is how an abandoned draft goes away.
type MemoryStore struct {
	c      *cache.Cache
	logger *slog.Logger
}

func NewMemoryStore(cfg config.SessionConfig, logger *slog.Logger) *MemoryStore {
	s := &MemoryStore{
		c:      cache.New(cfg.TTL, cfg.CleanupInterval),
		logger: logger,
	}
	s.c.OnEvicted(func(id string, v any) {
		// eviction runs outside any session lock
		disarm(v)
		logger.Debug("Session evicted", slog.String("session_id", id))
	})
	return s
}

// Close stops every pending payment timer and drops all sessions.
func (s *MemoryStore) Close() int {
	items := s.c.Items()
	for _, it := range items {
		disarm(it.Object)
	}
	s.c.Flush()
	return len(items)
}

func disarm(v any) {
	sess, ok := v.(*shared.Session)
	if !ok {
		return
	}
	sess.Lock()
	if sess.Handshake != nil {
		sess.Handshake.Disarm()
	}
	sess.Unlock()
}

func (s *MemoryStore) Create(_ context.Context, sess *shared.Session) error {
	s.c.SetDefault(sess.ID, sess)
	return nil
}

// Within holds the session lock for the duration of fn; callers must not block on
// the network inside fn.
func (s *MemoryStore) Within(ctx context.Context, sessionID string, fn func(sess *shared.Session) error) error {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return err
	}

	sess.Lock()
	defer sess.Unlock()

	// deleted while we waited for the lock
	if current, err := s.lookup(sessionID); err != nil || current != sess {
		return shared.ErrSessionNotFound
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	err = fn(sess)
	if current, lerr := s.lookup(sessionID); lerr == nil && current == sess {
		s.c.SetDefault(sessionID, sess)
	}
	return err
}

// Delete must not be called from inside Within: eviction takes the session lock.
func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	if _, err := s.lookup(sessionID); err != nil {
		return err
	}
	s.c.Delete(sessionID)
	return nil
}

func (s *MemoryStore) Count() int {
	return s.c.ItemCount()
}

func (s *MemoryStore) lookup(sessionID string) (*shared.Session, error) {
	if sessionID == "" {
		return nil, shared.ErrSessionNotFound
	}
	v, ok := s.c.Get(sessionID)
	if !ok {
		return nil, shared.ErrSessionNotFound
	}
	sess, ok := v.(*shared.Session)
	if !ok {
		return nil, shared.ErrSessionNotFound
	}
	return sess, nil
}
