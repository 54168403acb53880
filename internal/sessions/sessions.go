package sessions

import (
	"context"
	"sync"
)

// Turn is one message in a session transcript, in the role/content shape
// the text-generation provider expects.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Store keeps bounded per-session transcripts so the stateless provider
// still sees prior turns for a session id.
type Store interface {
	History(ctx context.Context, sessionID string) ([]Turn, error)
	Append(ctx context.Context, sessionID string, turns ...Turn) error
}

// MemoryStore is the in-process fallback used when Redis is not configured.
type MemoryStore struct {
	mu    sync.Mutex
	byID  map[string][]Turn
	limit int
}

// NewMemoryStore creates an in-memory session store keeping at most limit
// turns per session.
func NewMemoryStore(limit int) *MemoryStore {
	return &MemoryStore{
		byID:  make(map[string][]Turn),
		limit: limit,
	}
}

func (m *MemoryStore) History(ctx context.Context, sessionID string) ([]Turn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	turns := m.byID[sessionID]
	out := make([]Turn, len(turns))
	copy(out, turns)
	return out, nil
}

func (m *MemoryStore) Append(ctx context.Context, sessionID string, turns ...Turn) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	history := append(m.byID[sessionID], turns...)
	if len(history) > m.limit {
		history = history[len(history)-m.limit:]
	}
	m.byID[sessionID] = history
	return nil
}
