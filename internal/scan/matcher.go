package scan

import (
	"cmp"
	"fmt"
	"iter"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/dlclark/regexp2"
)

// matchTimeout bounds a single regexp run. Windows are small, so hitting it
// means a pathological input, not a slow one.
const matchTimeout = time.Second

// Match is one color literal found in a text.
type Match struct {
	Kind  Kind
	Start int // byte offset of the first byte
	End   int // byte offset just past the last byte
	Text  string
	// Parts holds the kind-specific captures: the hex digits for hex kinds,
	// one entry per component for functional kinds, and the lookup key for
	// table kinds.
	Parts []string
}

// Contains reports whether the byte offset falls inside the match.
func (m Match) Contains(offset int) bool {
	return offset >= m.Start && offset < m.End
}

// Matcher recognizes color literals. It is safe for concurrent use.
type Matcher struct {
	alts     [numKinds]string
	compiled sync.Map // KindSet -> *regexp2.Regexp (nil when nothing can match)
}

// NewMatcher builds a matcher whose named-color alternative matches names.
// The names are tried longest first regardless of their order here.
func NewMatcher(names []string) (*Matcher, error) {
	sorted := append([]string(nil), names...)
	sortLongestFirst(sorted)

	m := &Matcher{alts: alternatives(sorted)}
	if _, err := m.regexp(AllKinds); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Matcher) regexp(allowed KindSet) (*regexp2.Regexp, error) {
	allowed &= AllKinds
	if re, ok := m.compiled.Load(allowed); ok {
		return re.(*regexp2.Regexp), nil
	}

	var re *regexp2.Regexp
	if src := buildPattern(m.alts, allowed); src != "" {
		var err error
		re, err = regexp2.Compile(src, regexp2.IgnoreCase)
		if err != nil {
			return nil, fmt.Errorf("compiling color grammar for %v: %w", allowed.Strings(), err)
		}
		re.MatchTimeout = matchTimeout
	}
	actual, _ := m.compiled.LoadOrStore(allowed, re)
	return actual.(*regexp2.Regexp), nil
}

// All yields the matches in text in ascending, non-overlapping order,
// considering only the allowed kinds. A kind outside the set never shadows
// an allowed kind starting at the same position.
func (m *Matcher) All(text string, allowed KindSet) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		re, err := m.regexp(allowed)
		if err != nil {
			slog.Warn("color grammar unavailable", "error", err)
			return
		}
		if re == nil || text == "" {
			return
		}

		offsets := runeOffsets(text)
		rm, err := re.FindStringMatch(text)
		for rm != nil && err == nil {
			if match, ok := m.convert(rm, allowed, offsets, text); ok {
				if !yield(match) {
					return
				}
			}
			rm, err = re.FindNextMatch(rm)
		}
		if err != nil {
			slog.Warn("color scan stopped", "error", err, "length", len(text))
		}
	}
}

// FindAll collects All into a slice.
func (m *Matcher) FindAll(text string, allowed KindSet) []Match {
	var matches []Match
	for match := range m.All(text, allowed) {
		matches = append(matches, match)
	}
	return matches
}

func (m *Matcher) convert(rm *regexp2.Match, allowed KindSet, offsets []int, text string) (Match, bool) {
	for _, k := range allowed.Kinds() {
		g := rm.GroupByName(k.String())
		if g == nil || len(g.Captures) == 0 {
			continue
		}
		start, end := offsets[rm.Index], offsets[rm.Index+rm.Length]
		match := Match{
			Kind:  k,
			Start: start,
			End:   end,
			Text:  text[start:end],
		}
		if content := rm.GroupByName(k.String() + "_content"); content != nil && len(content.Captures) > 0 {
			match.Parts = splitParts(k, content.String())
		} else {
			match.Parts = []string{g.String()}
		}
		return match, true
	}
	return Match{}, false
}

// splitParts breaks a functional notation's content into components.
func splitParts(k Kind, content string) []string {
	switch k {
	case KindHexa, KindHex, KindHexaCompressed, KindHexCompressed, KindANSI:
		return []string{content}
	}
	return strings.FieldsFunc(content, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// runeOffsets maps rune indexes (what regexp2 reports) to byte offsets.
// The extra final entry is len(text).
func runeOffsets(text string) []int {
	offsets := make([]int, 0, len(text)+1)
	for i := range text {
		offsets = append(offsets, i)
	}
	return append(offsets, len(text))
}

func sortLongestFirst(names []string) {
	slices.SortFunc(names, func(a, b string) int {
		if len(a) != len(b) {
			return cmp.Compare(len(b), len(a))
		}
		return cmp.Compare(a, b)
	})
}
