package naming

import (
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// ReservedWordSet is the set of names that must not be declared as bare
// variables in a particular script runtime. It holds exact words plus glob
// patterns (e.g. "_[A-Z]*"). The zero value is an empty set; the set is
// immutable, With and WithPatterns return extended copies.
type ReservedWordSet struct {
	words    map[string]struct{}
	patterns []string
}

// NewReservedWordSet creates a set from exact words.
func NewReservedWordSet(words ...string) ReservedWordSet {
	return ReservedWordSet{}.With(words...)
}

// With returns a copy of the set extended with words. Empty words are ignored.
func (s ReservedWordSet) With(words ...string) ReservedWordSet {
	out := ReservedWordSet{
		words:    make(map[string]struct{}, len(s.words)+len(words)),
		patterns: s.patterns,
	}
	for w := range s.words {
		out.words[w] = struct{}{}
	}
	for _, w := range words {
		if w != "" {
			out.words[w] = struct{}{}
		}
	}
	return out
}

// WithPatterns returns a copy of the set extended with glob patterns.
// Patterns that doublestar rejects are dropped.
func (s ReservedWordSet) WithPatterns(patterns ...string) ReservedWordSet {
	out := ReservedWordSet{
		words:    s.words,
		patterns: append([]string(nil), s.patterns...),
	}
	for _, p := range patterns {
		if p != "" && doublestar.ValidatePattern(p) {
			out.patterns = append(out.patterns, p)
		}
	}
	return out
}

// Contains reports whether name is reserved.
func (s ReservedWordSet) Contains(name string) bool {
	if _, ok := s.words[name]; ok {
		return true
	}
	for _, p := range s.patterns {
		if ok, _ := doublestar.Match(p, name); ok {
			return true
		}
	}
	return false
}

// Words returns the exact reserved words in sorted order.
func (s ReservedWordSet) Words() []string {
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Patterns returns the glob patterns in insertion order.
func (s ReservedWordSet) Patterns() []string {
	return append([]string(nil), s.patterns...)
}

// Len returns the number of exact words.
func (s ReservedWordSet) Len() int {
	return len(s.words)
}
