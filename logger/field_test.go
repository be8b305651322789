package logger

import (
	"net/netip"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestFieldConstructors(t *testing.T) {
	stamp := time.Date(2026, 3, 1, 8, 30, 15, 0, time.UTC)
	var nilStringer *time.Location

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"string", String("k", "v").StringValue(), "v"},
		{"stringer", Stringer("addr", netip.MustParseAddr("10.0.0.1")).StringValue(), "10.0.0.1"},
		{"nil stringer", Stringer("addr", nil).StringValue(), "<nil>"},
		{"typed nil stringer", Stringer("loc", nilStringer).StringValue(), "UTC"},
		{"int", Int("n", -3).StringValue(), "-3"},
		{"int64", Int64("n", 1<<40).StringValue(), "1099511627776"},
		{"float", Float64("f", 0.25).StringValue(), "0.25"},
		{"true", Bool("b", true).StringValue(), "true"},
		{"false", Bool("b", false).StringValue(), "false"},
		{"time", Time("at", stamp).StringValue(), stamp.Local().Format(time.RFC3339)},
		{"duration", Duration("d", 1500*time.Millisecond).StringValue(), "1.5s"},
		{"error", Err(errors.New("boom")).StringValue(), "boom"},
		{"any", Any("a", []int{1, 2}).StringValue(), "[1 2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestNamedErr_Nil(t *testing.T) {
	f := NamedErr("cause", nil)

	assert.Equal(t, "cause", f.Key)
	assert.Empty(t, f.Str)
	assert.Nil(t, f.Any)
}
