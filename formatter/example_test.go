package formatter_test

import (
	"fmt"
	"time"

	"github.com/philipp01105/lambdalog/core"
	"github.com/philipp01105/lambdalog/formatter"
)

func ExampleNewTextFormatter() {
	f := formatter.NewTextFormatter(formatter.Config{})

	entry := &core.Entry{
		Time:      time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		Level:     core.InfoLevel,
		Message:   "hello world",
		RequestID: "6f1e2b",
		Presentation: &core.Presentation{
			LevelInBrackets: true,
			LogName:         "Handler",
		},
	}

	out, _ := f.Format(entry)
	fmt.Print(string(out))
	// Output:
	// 6f1e2b [INFO] Handler - hello world
}

func ExampleNewJSONFormatter() {
	f := formatter.NewJSONFormatter(formatter.Config{})

	entry := &core.Entry{
		Time:    time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		Level:   core.InfoLevel,
		Message: "request handled",
		Fields: []core.Field{
			{Key: "status", Int64: 200, Type: core.Int64Type},
		},
		Presentation: &core.Presentation{LogName: "Handler"},
	}

	out, _ := f.Format(entry)
	fmt.Print(string(out))
	// Output:
	// {"level":"INFO","logname":"Handler","message":"request handled","status":200}
}
