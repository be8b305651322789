package logger

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/lambdalog/core"
	"github.com/philipp01105/lambdalog/level"
)

func TestBuilder_Validation(t *testing.T) {
	_, err := NewBuilder().WithRule(level.NewRule(core.InfoLevel)).Build()
	assert.True(t, errors.Is(err, ErrMissingName), "%v", err)

	_, err = NewBuilder().WithName("org.test").Build()
	assert.True(t, errors.Is(err, ErrNoLevelRules), "%v", err)

	cfg, err := NewBuilder().WithName("").WithRule(level.NewRule(core.InfoLevel)).Build()
	require.NoError(t, err, "the empty name is a valid name")
	assert.Equal(t, "", cfg.Name())
}

func TestBuilder_DisplayName(t *testing.T) {
	tests := []struct {
		name        string
		logger      string
		full, short bool
		want        string
	}{
		{"short", "abc.xyz.TestLog", false, true, "TestLog"},
		{"short wins over full", "abc.xyz.TestLog", true, true, "TestLog"},
		{"full", "abc.xyz.TestLog", true, false, "abc.xyz.TestLog"},
		{"hidden", "abc.xyz.TestLog", false, false, ""},
		{"short without dots", "TestLog", false, true, "TestLog"},
		{"trailing dot", "abc.", false, true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := NewBuilder().
				WithName(tt.logger).
				WithRule(level.NewRule(core.InfoLevel)).
				WithShowLogName(tt.full).
				WithShowShortLogName(tt.short).
				Build()
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.DisplayName())
			assert.Equal(t, tt.want, cfg.Presentation().LogName)
		})
	}
}

func TestBuilder_Immutable(t *testing.T) {
	b := NewBuilder().WithName("a").WithRule(level.NewRule(core.WarnLevel))
	cfg, err := b.Build()
	require.NoError(t, err)

	b.WithRule(level.NewRule(core.TraceLevel)).WithName("b")
	rules := cfg.Rules()
	rules[0] = level.NewRule(core.TraceLevel)

	assert.Equal(t, "a", cfg.Name())
	assert.Equal(t, "WARN", cfg.Rules().String())
}

func TestConfiguration_IsEnabled(t *testing.T) {
	registry := core.NewMarkerRegistry()
	important := registry.Get("important")

	cfg, err := NewBuilder().
		WithName("org.test").
		WithRule(level.NewRule(core.WarnLevel)).
		WithRule(level.NewRule(core.TraceLevel, important)).
		Build()
	require.NoError(t, err)

	assert.True(t, cfg.IsEnabled(core.WarnLevel, nil))
	assert.False(t, cfg.IsEnabled(core.TraceLevel, nil))
	assert.True(t, cfg.IsEnabled(core.TraceLevel, important))
	assert.True(t, cfg.IsEnabled(core.DebugLevel, important))
	assert.False(t, cfg.IsEnabled(core.DebugLevel, registry.Get("other")))

	assert.True(t, cfg.IsLevelEnabled(core.ErrorLevel))
	assert.False(t, cfg.IsLevelEnabled(core.InfoLevel))

	assert.True(t, cfg.AnyEnabled(core.TraceLevel))
	assert.Equal(t, "org.test=WARN,TRACE@important", cfg.String())
}

func TestConfiguration_MarkerComposition(t *testing.T) {
	registry := core.NewMarkerRegistry()
	m1 := registry.Get("m1")
	m2 := registry.Get("m2")
	m1.Add(m2)

	cfg, err := NewBuilder().
		WithName("x").
		WithRule(level.NewRule(core.DebugLevel, m2)).
		Build()
	require.NoError(t, err)

	assert.True(t, cfg.IsEnabled(core.DebugLevel, m1))
	assert.False(t, cfg.IsEnabled(core.DebugLevel, nil))
}

func BenchmarkConfiguration_IsEnabled(b *testing.B) {
	registry := core.NewMarkerRegistry()
	important := registry.Get("important")
	cfg, _ := NewBuilder().
		WithName("bench").
		WithRule(level.NewRule(core.WarnLevel)).
		WithRule(level.NewRule(core.TraceLevel, important)).
		Build()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = cfg.IsEnabled(core.DebugLevel, important)
	}
}
