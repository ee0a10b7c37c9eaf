// Package matcher matches class and attribute names against glob or
// regular-expression patterns.
package matcher

import (
	"fmt"
	"path"
	"regexp"
	"strings"
)

// PatternType represents the type of pattern matching to use.
type PatternType int

const (
	// Glob uses shell-style glob patterns (*, ?, []).
	Glob PatternType = iota
	// Regex uses regular expressions.
	Regex
	// Auto attempts to detect the pattern type.
	Auto
)

// String returns a string representation of the PatternType.
func (pt PatternType) String() string {
	switch pt {
	case Glob:
		return "glob"
	case Regex:
		return "regex"
	case Auto:
		return "auto"
	default:
		return "unknown"
	}
}

// Matcher reports whether a name matches a single pattern.
type Matcher interface {
	// Match checks if the name matches the pattern
	Match(name string) bool
	// Pattern returns the original pattern string.
	Pattern() string
	// Type returns the pattern type being used.
	Type() PatternType
}

type matcher struct {
	pattern         string
	patternType     PatternType
	compiled        *regexp.Regexp
	caseInsensitive bool
}

// Options configures the matcher behavior.
type Options struct {
	// CaseInsensitive makes matching case-insensitive
	CaseInsensitive bool
}

// New creates a new Matcher with the specified pattern and type.
// Regular expressions are matched unanchored, globs against the whole name.
func New(patternType PatternType, pattern string, opts ...*Options) (Matcher, error) {
	m := &matcher{
		pattern:     pattern,
		patternType: patternType,
	}
	if len(opts) > 0 && opts[0] != nil {
		m.caseInsensitive = opts[0].CaseInsensitive
	}

	if patternType == Auto {
		m.patternType = detectPatternType(pattern)
	}

	switch m.patternType {
	case Glob:
		// Names never contain '/', so path.Match behaves as a plain glob.
		if _, err := path.Match(m.glob(), ""); err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
	case Regex:
		expr := pattern
		if m.caseInsensitive && !strings.HasPrefix(expr, "(?i)") {
			expr = "(?i)" + expr
		}
		compiled, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid regex pattern %q: %w", pattern, err)
		}
		m.compiled = compiled
	default:
		return nil, fmt.Errorf("unsupported pattern type: %v", patternType)
	}

	return m, nil
}

func (m *matcher) glob() string {
	if m.caseInsensitive {
		return strings.ToLower(m.pattern)
	}
	return m.pattern
}

// Match checks if the name matches the pattern.
func (m *matcher) Match(name string) bool {
	if m.patternType == Regex {
		return m.compiled.MatchString(name)
	}
	if m.caseInsensitive {
		name = strings.ToLower(name)
	}
	matched, _ := path.Match(m.glob(), name)
	return matched
}

// Pattern returns the original pattern string.
func (m *matcher) Pattern() string {
	return m.pattern
}

// Type returns the pattern type being used.
func (m *matcher) Type() PatternType {
	return m.patternType
}

// detectPatternType treats a pattern carrying regex-only syntax as a
// regular expression and everything else as a glob.
func detectPatternType(pattern string) PatternType {
	regexIndicators := []string{
		"^", "$", "\\d", "\\w", "\\s", "\\D", "\\W", "\\S",
		"(?:", "(?i)", ".*", ".+",
		"{", "}", "+", "|", "(", ")",
	}

	for _, indicator := range regexIndicators {
		if strings.Contains(pattern, indicator) {
			return Regex
		}
	}
	return Glob
}

// Set matches a name against several patterns; an empty Set matches everything.
type Set struct {
	matchers []Matcher
}

// NewSet compiles patterns with automatic type detection.
func NewSet(patterns []string, opts ...*Options) (*Set, error) {
	s := &Set{matchers: make([]Matcher, 0, len(patterns))}
	for _, pattern := range patterns {
		m, err := New(Auto, pattern, opts...)
		if err != nil {
			return nil, err
		}
		s.matchers = append(s.matchers, m)
	}
	return s, nil
}

// Empty reports whether the set holds no pattern.
func (s *Set) Empty() bool {
	return s == nil || len(s.matchers) == 0
}

// Match returns true if any pattern matches, or the set is empty.
func (s *Set) Match(name string) bool {
	if s.Empty() {
		return true
	}
	for _, m := range s.matchers {
		if m.Match(name) {
			return true
		}
	}
	return false
}

// Filter returns the names that match, preserving order.
func (s *Set) Filter(names ...string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if s.Match(name) {
			out = append(out, name)
		}
	}
	return out
}
