package serializer

import (
	"fmt"
	"sync"
)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Serializer)
)

func init() {
	Register(JSON{})
}

// Register adds a serializer to the registry under its Name. Registering a
// name twice replaces the earlier entry, so tests can swap implementations.
func Register(s Serializer) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[s.Name()] = s
}

// Lookup returns the serializer registered under name.
func Lookup(name string) (Serializer, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	s, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("serializer: no serializer registered under %q", name)
	}
	return s, nil
}
