package storage

import (
	"sort"
	"sync"
	"time"
)

// Memory is an in-process Gateway and score recorder. State is lost when
// the process exits; it backs tests and runs without a database.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
	scores []ScoreEntry
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get returns the value stored at key.
func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Set stores value at key.
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// All returns a copy of every stored pair.
func (m *Memory) All() (map[string]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]string, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out, nil
}

// SaveScore appends a finished session to the history.
func (m *Memory) SaveScore(e ScoreEntry) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e.ID = int64(len(m.scores) + 1)
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	m.scores = append(m.scores, e)
	return e.ID, nil
}

// TopScores returns the best recorded sessions for a game.
func (m *Memory) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	m.mu.RLock()
	var entries []ScoreEntry
	for _, e := range m.scores {
		if e.GameID == gameID {
			entries = append(entries, e)
		}
	}
	m.mu.RUnlock()

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Score > entries[j].Score })
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
