package level

import (
	"strings"

	"github.com/philipp01105/lambdalog/core"
)

// Rule is one enablement condition: calls at Level or above are enabled,
// provided they carry one of Markers. A rule without markers applies to
// every call that meets the level threshold.
type Rule struct {
	Level   core.Level
	Markers []*core.Marker
}

// NewRule creates a rule. Markers is never nil.
func NewRule(level core.Level, markers ...*core.Marker) Rule {
	if markers == nil {
		markers = []*core.Marker{}
	}
	return Rule{Level: level, Markers: markers}
}

// Matches reports whether a call at level with the given marker (nil for
// none) satisfies the rule.
func (r Rule) Matches(level core.Level, marker *core.Marker) bool {
	if level < r.Level {
		return false
	}
	if len(r.Markers) == 0 {
		return true
	}
	if marker == nil {
		return false
	}
	for _, m := range r.Markers {
		if marker.Contains(m) {
			return true
		}
	}
	return false
}

// MarkerNames returns the names of the rule's markers in order
func (r Rule) MarkerNames() []string {
	names := make([]string, len(r.Markers))
	for i, m := range r.Markers {
		names[i] = m.Name()
	}
	return names
}

// String renders the rule in expression syntax with the default marker
// separator, e.g. "TRACE@important:notify-admin".
func (r Rule) String() string {
	if len(r.Markers) == 0 {
		return r.Level.String()
	}
	return r.Level.String() + "@" + strings.Join(r.MarkerNames(), ":")
}

// Rules is an ordered rule list evaluated with OR semantics.
type Rules []Rule

// Enabled reports whether any rule matches. It does not allocate.
func (rs Rules) Enabled(level core.Level, marker *core.Marker) bool {
	for i := range rs {
		if rs[i].Matches(level, marker) {
			return true
		}
	}
	return false
}

// MinLevel returns the lowest level any rule can enable
func (rs Rules) MinLevel() core.Level {
	lowest := core.ErrorLevel
	for _, r := range rs {
		if r.Level < lowest {
			lowest = r.Level
		}
	}
	return lowest
}

// String renders the rules in expression syntax with default separators
func (rs Rules) String() string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = r.String()
	}
	return strings.Join(parts, ",")
}
