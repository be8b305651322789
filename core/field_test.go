package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestField_StringValue(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		want  string
	}{
		{"String field", Field{Type: StringType, Str: "hello"}, "hello"},
		{"Int64 field", Field{Type: Int64Type, Int64: 1234567890}, "1234567890"},
		{"Bool field (true)", Field{Type: BoolType, Int64: 1}, "true"},
		{"Bool field (false)", Field{Type: BoolType, Int64: 0}, "false"},
		{"Float64 field", Field{Type: Float64Type, Float64: 3.14}, "3.14"},
		{"Duration field", Field{Type: DurationType, Int64: int64(5 * time.Second)}, "5s"},
		{"Error field", Field{Type: ErrorType, Str: "an error occurred"}, "an error occurred"},
		{"Any field", Field{Type: AnyType, Any: []int{1, 2}}, "[1 2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.field.StringValue())
		})
	}
}

func TestField_Value(t *testing.T) {
	assert.Equal(t, int64(7), Field{Type: Int64Type, Int64: 7}.Value())
	assert.Equal(t, true, Field{Type: BoolType, Int64: 1}.Value())
	assert.Equal(t, 2*time.Second, Field{Type: DurationType, Int64: int64(2 * time.Second)}.Value())
}

func BenchmarkFieldAppendValue(b *testing.B) {
	fields := []Field{
		{Type: StringType, Str: "test"},
		{Type: Int64Type, Int64: 42},
		{Type: BoolType, Int64: 1},
		{Type: Float64Type, Float64: 3.14},
	}
	buf := make([]byte, 0, 64)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, f := range fields {
			buf = f.AppendValue(buf[:0])
		}
	}
}
