package rule

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

var registry = struct {
	sync.RWMutex
	byID   map[string]*Descriptor
	byName map[string]*Descriptor
}{
	byID:   make(map[string]*Descriptor),
	byName: make(map[string]*Descriptor),
}

// Register adds d to the process-wide registry. Rule packages register from
// package initialization through New; custom rules register once while the
// configuration is loaded. Registering a second descriptor with an ID or
// name already in use is an error.
func Register(d *Descriptor) error {
	if d == nil || d.ID == "" || d.Name == "" {
		return fmt.Errorf("rule descriptor needs an ID and a name: %+v", d)
	}

	registry.Lock()
	defer registry.Unlock()

	if prev, ok := registry.byID[d.ID]; ok && prev != d {
		return fmt.Errorf("rule ID %s already registered by %s", d.ID, prev.Name)
	}
	if prev, ok := registry.byName[d.Name]; ok && prev != d {
		return fmt.Errorf("rule name %s already registered by %s", d.Name, prev.ID)
	}
	registry.byID[d.ID] = d
	registry.byName[d.Name] = d
	return nil
}

// MustRegister is like Register but panics on conflicts.
func MustRegister(d *Descriptor) {
	if err := Register(d); err != nil {
		panic(err)
	}
}

// Lookup finds a descriptor by rule ID (case-insensitive) or analyzer name.
func Lookup(key string) (*Descriptor, bool) {
	registry.RLock()
	defer registry.RUnlock()

	if d, ok := registry.byName[key]; ok {
		return d, true
	}
	d, ok := registry.byID[strings.ToUpper(key)]
	return d, ok
}

// Descriptors returns every registered descriptor ordered by ID.
func Descriptors() []*Descriptor {
	registry.RLock()
	out := make([]*Descriptor, 0, len(registry.byID))
	for _, d := range registry.byID {
		out = append(out, d)
	}
	registry.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
