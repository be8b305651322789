package level

import (
	"iter"
	"strings"
)

// Ancestors yields name and then each prefix obtained by cutting at the
// last dot, most specific first: "org.test.Class", "org.test", "org".
// An empty name yields nothing.
func Ancestors(name string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for name != "" {
			if !yield(name) {
				return
			}
			i := strings.LastIndexByte(name, '.')
			if i < 0 {
				return
			}
			name = name[:i]
		}
	}
}
