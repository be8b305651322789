package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolver_GlobalPrecedence(t *testing.T) {
	tests := []struct {
		name  string
		env   MapEnvironment
		props Properties
		want  string
	}{
		{"default", nil, nil, "INFO"},
		{"properties", nil, Properties{"defaultLogLevel": "debug"}, "debug"},
		{"environment wins", MapEnvironment{"LOG_DEFAULT_LEVEL": "trace"}, Properties{"defaultLogLevel": "debug"}, "trace"},
		{"empty env value is set", MapEnvironment{"LOG_DEFAULT_LEVEL": ""}, Properties{"defaultLogLevel": "debug"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(tt.env, tt.props)
			got, ok := r.Global(DefaultLogLevel)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolver_GlobalWithoutDefault(t *testing.T) {
	r := NewResolver(MapEnvironment{}, nil)

	_, ok := r.Global(DateTimeFormat)
	assert.False(t, ok)
	assert.Empty(t, r.String(DateTimeFormat))
}

func TestResolver_Bool(t *testing.T) {
	r := NewResolver(MapEnvironment{
		"LOG_SHOW_DATE_TIME":    "TRUE",
		"LOG_SHOW_THREAD_ID":    "yes please",
		"LOG_LEVEL_IN_BRACKETS": " true ",
	}, Properties{"showThreadName": "true"})

	assert.True(t, r.Bool(ShowDateTime))
	assert.False(t, r.Bool(ShowThreadID), "unparsable booleans are false")
	assert.True(t, r.Bool(LevelInBrackets))
	assert.True(t, r.Bool(ShowThreadName))
	assert.True(t, r.Bool(ShowLogName), "compiled default")
	assert.False(t, r.Bool(ShowShortLogName))
}

func TestResolver_Sources(t *testing.T) {
	r := NewResolver(MapEnvironment{"LOG_DEFAULT_LEVEL": "qwerty"}, Properties{"defaultLogLevel": "warn"})

	var sources []Source
	var values []string
	for s, v := range r.Sources(DefaultLogLevel) {
		sources = append(sources, s)
		values = append(values, v)
	}

	assert.Equal(t, []Source{SourceEnvironment, SourceProperties}, sources)
	assert.Equal(t, []string{"qwerty", "warn"}, values)
}

func TestResolver_PerLogger(t *testing.T) {
	r := NewResolver(MapEnvironment{
		"LOG_ORG_TEST_CLASS": "trace",
		"LOG_COM_EXAMPLE":    "error",
	}, Properties{
		"log.org.test":        "warn",
		"log.com.example":     "debug",
		"log.with space.Name": "info",
	})

	tests := []struct {
		logger string
		want   string
		found  bool
	}{
		{"org.test.Class", "trace", true},
		{"org.test", "warn", true},
		{"org", "", false},
		{"com.example", "error", true},
		{"com..example", "error", true},
		{" com . example ", "error", true},
		{"with space.Name", "info", true},
	}

	for _, tt := range tests {
		t.Run(tt.logger, func(t *testing.T) {
			got, ok := r.PerLogger(LogLevel, tt.logger)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnvironmentSuffix(t *testing.T) {
	assert.Equal(t, "ORG_TEST_CLASS", EnvironmentSuffix("org.test.Class"))
	assert.Equal(t, "ORG_TEST", EnvironmentSuffix("org...test"))
	assert.Equal(t, "ABC_XYZ", EnvironmentSuffix(" abc .\txyz"))
}

func TestOSEnvironment(t *testing.T) {
	t.Setenv("LOG_SHOW_NAME", "false")

	r := NewResolver(nil, nil)
	assert.False(t, r.Bool(ShowLogName))
}

func TestSource_String(t *testing.T) {
	assert.Equal(t, "environment", SourceEnvironment.String())
	assert.Equal(t, "properties", SourceProperties.String())
	assert.Equal(t, "default", SourceDefault.String())
}
