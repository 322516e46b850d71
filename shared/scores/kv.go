// Package scores persists the leaderboard and player accounts in a keyed
// record store. On desktop the store is a gdata.Manager.
package scores

import (
	"fmt"
	"sync"

	"github.com/quasilyte/gdata"
)

// KV is the subset of gdata.Manager the stores need.
type KV interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

var _ KV = (*gdata.Manager)(nil)

// OpenGData opens the per-user data directory of appName.
func OpenGData(appName string) (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open %s data: %w", appName, err)
	}
	return m, nil
}

// MemoryKV keeps items in memory. It backs tests and runs where the data
// directory is unavailable.
type MemoryKV struct {
	mu    sync.Mutex
	items map[string][]byte
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{items: make(map[string][]byte)}
}

func (m *MemoryKV) LoadItem(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.items[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *MemoryKV) SaveItem(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	m.items[key] = cp
	return nil
}
