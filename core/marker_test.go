package core

import (
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkerRegistry_Interns(t *testing.T) {
	r := NewMarkerRegistry()

	a := r.Get("important")
	b := r.Get("important")
	assert.Same(t, a, b)
	assert.True(t, r.Exists("important"))
	assert.False(t, r.Exists("other"))

	other := NewMarkerRegistry()
	assert.NotSame(t, a, other.Get("important"), "registries must be independent")
}

func TestMarkerRegistry_EmptyName(t *testing.T) {
	r := NewMarkerRegistry()

	_, err := r.Lookup("")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidMarkerName))
	assert.Panics(t, func() { r.Get("") })
}

func TestMarkerRegistry_Detach(t *testing.T) {
	r := NewMarkerRegistry()
	first := r.Get("m")

	assert.True(t, r.Detach("m"))
	assert.False(t, r.Detach("m"))
	assert.NotSame(t, first, r.Get("m"))
}

func TestMarker_ContainsTransitively(t *testing.T) {
	r := NewMarkerRegistry()
	audit := r.Get("audit")
	security := r.Get("security")
	important := r.Get("important")

	audit.Add(security)
	security.Add(important)

	assert.True(t, audit.Contains(audit))
	assert.True(t, audit.Contains(security))
	assert.True(t, audit.Contains(important))
	assert.True(t, security.Contains(important))
	assert.False(t, important.Contains(audit))
	assert.False(t, audit.Contains(nil))
	assert.True(t, audit.Contains(Detached("important")), "markers compare by name")
}

func TestMarker_AddIgnoresCyclesAndDuplicates(t *testing.T) {
	r := NewMarkerRegistry()
	a := r.Get("a")
	b := r.Get("b")

	a.Add(b)
	a.Add(b)
	b.Add(a)

	assert.Len(t, a.References(), 1)
	assert.False(t, b.HasReferences())
	assert.Equal(t, "a [ b ]", a.String())
}

func TestMarker_Remove(t *testing.T) {
	r := NewMarkerRegistry()
	a := r.Get("a")
	b := r.Get("b")
	a.Add(b)

	assert.True(t, a.Remove(b))
	assert.False(t, a.Remove(b))
	assert.False(t, a.Contains(b))
}

func TestMarker_ConcurrentAddAndContains(t *testing.T) {
	r := NewMarkerRegistry()
	root := r.Get("root")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			root.Add(r.Get(string(rune('a' + i))))
		}(i)
		go func() {
			defer wg.Done()
			_ = root.ContainsName("z")
		}()
	}
	wg.Wait()

	assert.Len(t, root.References(), 8)
}

func BenchmarkMarker_Contains(b *testing.B) {
	r := NewMarkerRegistry()
	a := r.Get("a")
	bb := r.Get("b")
	c := r.Get("c")
	a.Add(bb)
	bb.Add(c)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.Contains(c)
	}
}

func TestMarker_ConcurrentCrossAddNeverCycles(t *testing.T) {
	for i := 0; i < 500; i++ {
		a, b := Detached("a"), Detached("b")

		var wg sync.WaitGroup
		start := make(chan struct{})
		wg.Add(2)
		go func() {
			defer wg.Done()
			<-start
			a.Add(b)
		}()
		go func() {
			defer wg.Done()
			<-start
			b.Add(a)
		}()
		close(start)
		wg.Wait()

		require.False(t, a.HasReferences() && b.HasReferences(), "iteration %d", i)
		assert.False(t, a.ContainsName("z"))
	}
}
