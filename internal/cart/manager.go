// internal/cart/manager.go
package cart

import (
	"context"
	"sync"
	"time"
)

// Manager hands out one Store per storefront session and evicts stores that
// have gone quiet. Eviction only drops in-process state; the remote cart id
// stays in durable storage and the next request rehydrates from it.
type Manager struct {
	mu       sync.Mutex
	stores   map[string]*managedStore
	gateway  Gateway
	sessions SessionStore
	idleTTL  time.Duration
}

type managedStore struct {
	store    *Store
	lastSeen time.Time
}

func NewManager(gateway Gateway, sessions SessionStore) *Manager {
	m := &Manager{
		stores:   make(map[string]*managedStore),
		gateway:  gateway,
		sessions: sessions,
		idleTTL:  30 * time.Minute,
	}

	go m.evictIdle()

	return m
}

// Get returns the session's store, creating and hydrating it on first use.
func (m *Manager) Get(ctx context.Context, sessionID string) *Store {
	m.mu.Lock()
	if ms, ok := m.stores[sessionID]; ok {
		ms.lastSeen = time.Now()
		m.mu.Unlock()
		return ms.store
	}

	store := NewStore(m.gateway, m.sessions, sessionID)
	m.stores[sessionID] = &managedStore{store: store, lastSeen: time.Now()}
	m.mu.Unlock()

	store.Hydrate(ctx)
	return store
}

func (m *Manager) evictIdle() {
	for {
		time.Sleep(time.Minute)
		m.mu.Lock()
		for id, ms := range m.stores {
			if time.Since(ms.lastSeen) > m.idleTTL {
				delete(m.stores, id)
			}
		}
		m.mu.Unlock()
	}
}
