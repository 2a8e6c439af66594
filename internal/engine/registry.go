package engine

import (
	"fmt"
	"sort"
)

// Factory creates a fresh, unprepared engine.
type Factory func() Engine

// Default is the engine used when none is requested.
const Default = BLAKE3

var factories = map[string]Factory{
	BLAKE3:  NewBLAKE3,
	CSHAKE:  NewCSHAKE,
	BLAKE2X: NewBLAKE2X,
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("unsupported engine: %q (supported: %v)", name, Names())
	}
	return f, nil
}

// Names returns the registered engine names in sorted order.
func Names() []string {
	names := make([]string, 0, len(factories))
	for n := range factories {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
