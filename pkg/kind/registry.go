package kind

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	// ErrUnknownKind is returned when a name has no registered
	// kind.
	ErrUnknownKind = errors.New("unknown kind")

	// ErrDuplicateKind is returned when registering a name that
	// is already taken.
	ErrDuplicateKind = errors.New("kind already registered")
)

// Registry maps names to kinds so that callers can refer to a
// kind by the name used in their test sources. It is safe for
// concurrent use.
type Registry struct {
	mu    sync.RWMutex
	kinds map[string]Kind
}

// NewRegistry creates a Registry with the built-in kinds
// pre-registered.
func NewRegistry() *Registry {
	r := &Registry{
		kinds: make(map[string]Kind),
	}
	r.registerDefaults()
	return r
}

// registerDefaults registers the built-in kinds.
func (r *Registry) registerDefaults() {
	r.kinds["error"] = Of[error]()
	r.kinds["string"] = Of[string]()
	r.kinds["bool"] = Of[bool]()
	r.kinds["int"] = Of[int]()
	r.kinds["int64"] = Of[int64]()
	r.kinds["float64"] = Of[float64]()
	r.kinds["any"] = Of[any]()
}

// Register adds k under name. Returns an error if the name is
// empty, the kind is zero, or the name is already registered.
func (r *Registry) Register(name string, k Kind) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("register kind: empty name")
	}
	if k.IsZero() {
		return fmt.Errorf("register kind %s: zero kind", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.kinds[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateKind, name)
	}

	r.kinds[name] = k
	return nil
}

// Lookup returns the kind registered under name.
func (r *Registry) Lookup(name string) (Kind, error) {
	r.mu.RLock()
	k, exists := r.kinds[strings.TrimSpace(name)]
	r.mu.RUnlock()

	if !exists {
		return Kind{}, fmt.Errorf("%w: %s", ErrUnknownKind, name)
	}
	return k, nil
}

// Has returns true if name has a registered kind.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.kinds[strings.TrimSpace(name)]
	return exists
}

// Names returns all registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.kinds))
	for name := range r.kinds {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}

// ParseKinds resolves a comma separated list of kind names.
// Blank entries are skipped.
//
// Examples:
//
//	"error"          -> [error]
//	"string, int"    -> [string int]
func (r *Registry) ParseKinds(s string) ([]Kind, error) {
	var kinds []Kind
	for _, part := range strings.Split(s, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		k, err := r.Lookup(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}
