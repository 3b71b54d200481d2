package venum

import (
	"fmt"
	"slices"
	"sort"
	"sync"

	"golang.org/x/exp/constraints"
)

// Entry is a snapshot of one registered definition.
type Entry struct {
	// ID is the definition identity.
	ID string
	// Underlying is the Go name of the underlying integral type.
	Underlying string
	// Size is the number of declared constants.
	Size int
}

// registered is the type-erased view of a *Definition[T] held by a Registry.
type registered interface {
	ID() string
	Size() int
	underlying() string
}

// Registry maps definition identities to their single shared definition.
// Generated code registers into the process-wide default registry from
// package-level variable initialization.
type Registry struct {
	mu   sync.RWMutex
	defs map[string]registered
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]registered)}
}

var defaultRegistry = NewRegistry()

// Register returns the definition registered under id in the process-wide
// registry, creating it on first use.
func Register[T constraints.Integer](id string, values []T, raw []string) (*Definition[T], error) {
	return RegisterIn(defaultRegistry, id, values, raw)
}

// MustRegister is like Register but panics if the definition is invalid.
func MustRegister[T constraints.Integer](id string, values []T, raw []string) *Definition[T] {
	d, err := Register(id, values, raw)
	if err != nil {
		panic(err)
	}
	return d
}

// Registered returns a snapshot of the process-wide registry.
func Registered() []Entry {
	return defaultRegistry.Entries()
}

// RegisterIn returns the definition registered under id in r, creating it on
// first use. Registering the same identity again with identical arrays
// returns the existing definition; anything else is a DefinitionError.
func RegisterIn[T constraints.Integer](r *Registry, id string, values []T, raw []string) (*Definition[T], error) {
	if id == "" {
		return nil, &DefinitionError{Message: "empty identity"}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.defs[id]; ok {
		d, ok := existing.(*Definition[T])
		if !ok {
			return nil, &DefinitionError{
				Enum:    id,
				Message: fmt.Sprintf("already registered with underlying type %s", existing.underlying()),
			}
		}
		if !slices.Equal(d.values, values) || !slices.Equal(d.raw, raw) {
			return nil, &DefinitionError{Enum: id, Message: "conflicting re-registration"}
		}
		return d, nil
	}
	d, err := NewDefinition(id, values, raw)
	if err != nil {
		return nil, err
	}
	r.defs[id] = d
	return d, nil
}

// Lookup returns the snapshot of the definition registered under id.
func (r *Registry) Lookup(id string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.defs[id]
	if !ok {
		return Entry{}, false
	}
	return entryOf(d), true
}

// Entries returns a snapshot of all registered definitions, sorted by ID.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	entries := make([]Entry, 0, len(r.defs))
	for _, d := range r.defs {
		entries = append(entries, entryOf(d))
	}
	r.mu.RUnlock()
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID < entries[j].ID
	})
	return entries
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.defs)
}

func entryOf(d registered) Entry {
	return Entry{ID: d.ID(), Underlying: d.underlying(), Size: d.Size()}
}
