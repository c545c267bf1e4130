package pidstore

import (
	"embed"
	"fmt"
	"sync"
)

//go:embed pids/*.yaml
var pidFS embed.FS

// BaseStoreFile is the embedded store loaded by DefaultStore.
const BaseStoreFile = "pids/base.yaml"

var (
	defaultMu    sync.RWMutex
	defaultStore *RootPidStore
)

// DefaultStore returns the embedded store of common ESTA PIDs. The store is
// parsed once and shared.
func DefaultStore() (*RootPidStore, error) {
	defaultMu.RLock()
	if s := defaultStore; s != nil {
		defaultMu.RUnlock()
		return s, nil
	}
	defaultMu.RUnlock()

	data, err := pidFS.ReadFile(BaseStoreFile)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", BaseStoreFile, err)
	}
	s, err := ParsePidStore(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", BaseStoreFile, err)
	}

	defaultMu.Lock()
	if defaultStore == nil {
		defaultStore = s
	}
	s = defaultStore
	defaultMu.Unlock()

	return s, nil
}
