package level

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/philipp01105/lambdalog/core"
)

const markerDelimiter = "@"

var (
	// DefaultLevelSeparator separates rules: "warn,info@audit".
	DefaultLevelSeparator = regexp.MustCompile(",")
	// DefaultMarkerSeparator separates markers: "trace@important:notify-admin".
	DefaultMarkerSeparator = regexp.MustCompile(":")
)

// Parser turns level expressions into rules. It is immutable and safe
// for concurrent use.
type Parser struct {
	levelSeparator  *regexp.Regexp
	markerSeparator *regexp.Regexp
	markers         *core.MarkerRegistry
}

// NewParser creates a parser. Nil separators mean the defaults.
func NewParser(levelSeparator, markerSeparator *regexp.Regexp, markers *core.MarkerRegistry) *Parser {
	if levelSeparator == nil {
		levelSeparator = DefaultLevelSeparator
	}
	if markerSeparator == nil {
		markerSeparator = DefaultMarkerSeparator
	}
	if markers == nil {
		markers = core.NewMarkerRegistry()
	}
	return &Parser{
		levelSeparator:  levelSeparator,
		markerSeparator: markerSeparator,
		markers:         markers,
	}
}

// Parse parses expr with the parser's separators and registry
func (p *Parser) Parse(expr string) (Rules, error) {
	return Parse(expr, p.levelSeparator, p.markerSeparator, p.markers)
}

// Parse splits expr on levelSeparator into rules. Each rule is a level
// name, optionally followed by "@" and marker names split on
// markerSeparator:
//
//	warn,info@iAmMarker,trace@important:notify-admin
//
// Level names are case-insensitive. An unknown or empty level name
// fails with core.ErrInvalidLevelName and an empty marker name with
// core.ErrInvalidMarkerName; no rules are returned in either case.
// Rules keep the order of the expression.
func Parse(expr string, levelSeparator, markerSeparator *regexp.Regexp, markers *core.MarkerRegistry) (Rules, error) {
	tokens := levelSeparator.Split(expr, -1)
	rules := make(Rules, 0, len(tokens))

	for _, token := range tokens {
		levelName, markerNames, hasMarkers := strings.Cut(token, markerDelimiter)

		level, err := core.ParseLevel(levelName)
		if err != nil {
			return nil, errors.Wrapf(err, "level expression %q", expr)
		}
		if !hasMarkers {
			rules = append(rules, NewRule(level))
			continue
		}

		names := markerSeparator.Split(markerNames, -1)
		ruleMarkers := make([]*core.Marker, 0, len(names))
		for _, name := range names {
			m, err := markers.Lookup(strings.TrimSpace(name))
			if err != nil {
				return nil, errors.Wrapf(err, "level expression %q", expr)
			}
			ruleMarkers = append(ruleMarkers, m)
		}
		rules = append(rules, NewRule(level, ruleMarkers...))
	}

	return rules, nil
}
