package core

import (
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
)

// ErrInvalidMarkerName is returned when a marker name is empty.
var ErrInvalidMarkerName = errors.New("invalid marker name")

// Marker is a named tag attached to a log call. A marker may reference
// other markers; Contains follows those references transitively.
//
// References are published copy-on-write, so Contains never locks and
// never allocates. Add and Remove serialize on a per-marker mutex.
type Marker struct {
	name string
	mu   sync.Mutex
	refs atomic.Pointer[[]*Marker]
}

func newMarker(name string) *Marker {
	return &Marker{name: name}
}

// Name returns the marker name
func (m *Marker) Name() string {
	return m.name
}

// String implements fmt.Stringer. Referenced markers are listed in
// brackets: "parent [ child, other ]".
func (m *Marker) String() string {
	refs := m.references()
	if len(refs) == 0 {
		return m.name
	}
	s := m.name + " [ "
	for i, r := range refs {
		if i > 0 {
			s += ", "
		}
		s += r.String()
	}
	return s + " ]"
}

func (m *Marker) references() []*Marker {
	if p := m.refs.Load(); p != nil {
		return *p
	}
	return nil
}

// composeMu serializes Add across all markers so the cycle check and
// the store happen as one step.
var composeMu sync.Mutex

// Add makes ref a child of m. Adding a marker that already contains m
// would create a cycle and is ignored, as is adding a duplicate.
func (m *Marker) Add(ref *Marker) {
	if ref == nil {
		return
	}

	composeMu.Lock()
	defer composeMu.Unlock()
	if ref.Contains(m) {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	current := m.references()
	for _, r := range current {
		if r == ref || r.name == ref.name {
			return
		}
	}
	next := make([]*Marker, len(current), len(current)+1)
	copy(next, current)
	next = append(next, ref)
	m.refs.Store(&next)
}

// Remove drops ref from the direct children of m and reports whether it
// was present.
func (m *Marker) Remove(ref *Marker) bool {
	if ref == nil {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	current := m.references()
	for i, r := range current {
		if r.name != ref.name {
			continue
		}
		next := make([]*Marker, 0, len(current)-1)
		next = append(next, current[:i]...)
		next = append(next, current[i+1:]...)
		m.refs.Store(&next)
		return true
	}
	return false
}

// HasReferences reports whether m has any child markers
func (m *Marker) HasReferences() bool {
	return len(m.references()) > 0
}

// References returns a copy of the direct children of m
func (m *Marker) References() []*Marker {
	refs := m.references()
	out := make([]*Marker, len(refs))
	copy(out, refs)
	return out
}

// Contains reports whether m equals other or references it, directly or
// through any chain of child markers. Markers compare by name.
func (m *Marker) Contains(other *Marker) bool {
	if m == nil || other == nil {
		return false
	}
	return m.ContainsName(other.name)
}

// ContainsName is Contains by marker name.
func (m *Marker) ContainsName(name string) bool {
	if m == nil {
		return false
	}
	if m.name == name {
		return true
	}
	for _, r := range m.references() {
		if r.ContainsName(name) {
			return true
		}
	}
	return false
}

// MarkerRegistry interns markers by name so that every lookup of a name
// returns the same *Marker. Registries are independent of each other; a
// Factory owns one and tests may create their own.
type MarkerRegistry struct {
	mu      sync.RWMutex
	markers map[string]*Marker
}

// NewMarkerRegistry creates an empty registry
func NewMarkerRegistry() *MarkerRegistry {
	return &MarkerRegistry{markers: make(map[string]*Marker)}
}

// Get returns the marker registered under name, creating it on first use.
// It panics on an empty name; use Lookup for untrusted input.
func (r *MarkerRegistry) Get(name string) *Marker {
	m, err := r.Lookup(name)
	if err != nil {
		panic(err)
	}
	return m
}

// Lookup is like Get but returns ErrInvalidMarkerName for an empty name.
func (r *MarkerRegistry) Lookup(name string) (*Marker, error) {
	if name == "" {
		return nil, errors.WithStack(ErrInvalidMarkerName)
	}

	r.mu.RLock()
	m, ok := r.markers[name]
	r.mu.RUnlock()
	if ok {
		return m, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok = r.markers[name]; ok {
		return m, nil
	}
	m = newMarker(name)
	r.markers[name] = m
	return m, nil
}

// Exists reports whether a marker with this name has been registered
func (r *MarkerRegistry) Exists(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.markers[name]
	return ok
}

// Detach removes the marker from the registry. Markers already handed
// out stay valid; the next Get creates a fresh instance.
func (r *MarkerRegistry) Detach(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.markers[name]; !ok {
		return false
	}
	delete(r.markers, name)
	return true
}

// Detached returns a marker that is not interned in any registry
func Detached(name string) *Marker {
	return newMarker(name)
}
