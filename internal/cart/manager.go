package cart

import (
	"context"
	"sync"
)

// Manager owns the stores, one per session, and hands them to consumers
// explicitly. Stores are created lazily and restored from their snapshot
// slot on first use.
type Manager struct {
	mu        sync.Mutex
	stores    map[string]*Store
	storage   SnapshotStorage
	keyPrefix string
	taxRate   float64
}

func NewManager(storage SnapshotStorage, keyPrefix string, taxRate float64) *Manager {
	return &Manager{
		stores:    make(map[string]*Store),
		storage:   storage,
		keyPrefix: keyPrefix,
		taxRate:   taxRate,
	}
}

func (m *Manager) Get(ctx context.Context, sessionID string) *Store {
	m.mu.Lock()
	store, ok := m.stores[sessionID]
	if !ok {
		store = NewStore(m.storage, m.keyPrefix+":"+sessionID, m.taxRate)
		m.stores[sessionID] = store
	}
	m.mu.Unlock()

	// Load gates itself internally, so concurrent callers for the same
	// session all wait until the snapshot restore has completed.
	store.Load(ctx)
	return store
}

// Flush waits for all stores' pending snapshot writes.
func (m *Manager) Flush() {
	m.mu.Lock()
	stores := make([]*Store, 0, len(m.stores))
	for _, s := range m.stores {
		stores = append(stores, s)
	}
	m.mu.Unlock()
	for _, s := range stores {
		s.Flush()
	}
}
