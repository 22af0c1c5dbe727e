package board

import (
	"sort"
	"strings"
)

// Set is an unordered collection of texture values. The empty set is a
// wildcard when used in a Filter.
type Set[T comparable] map[T]struct{}

// NewSet returns a set holding vals.
func NewSet[T comparable](vals ...T) Set[T] {
	s := make(Set[T], len(vals))
	for _, v := range vals {
		s[v] = struct{}{}
	}
	return s
}

func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// matchAny applies the same rule to every filter dimension: an empty set
// accepts everything, otherwise at least one value must hold.
func matchAny[T comparable](s Set[T], holds func(T) bool) bool {
	if len(s) == 0 {
		return true
	}
	for v := range s {
		if holds(v) {
			return true
		}
	}
	return false
}

// Filter selects boards by texture. Values in one dimension are OR-ed, the
// four dimensions are AND-ed.
type Filter struct {
	Heights     Set[Height]
	Suits       Set[SuitPattern]
	Connections Set[Connection]
	Pairings    Set[Pairing]
}

// Matches reports whether b satisfies every non-empty dimension of f.
func (f Filter) Matches(b Board) bool {
	return matchAny(f.Heights, b.IsHeight) &&
		matchAny(f.Suits, b.IsSuitPattern) &&
		matchAny(f.Connections, b.HasConnection) &&
		matchAny(f.Pairings, b.IsPairing)
}

// ParseFilter builds a Filter from the short codes of each dimension.
// The first unknown code is returned as a *poker.ParseError.
func ParseFilter(heights, suits, connections, pairings []string) (Filter, error) {
	var f Filter
	var err error
	if f.Heights, err = parseSet(heights, ParseHeight); err != nil {
		return Filter{}, err
	}
	if f.Suits, err = parseSet(suits, ParseSuitPattern); err != nil {
		return Filter{}, err
	}
	if f.Connections, err = parseSet(connections, ParseConnection); err != nil {
		return Filter{}, err
	}
	if f.Pairings, err = parseSet(pairings, ParsePairing); err != nil {
		return Filter{}, err
	}
	return f, nil
}

func parseSet[T comparable](codes []string, parse func(string) (T, error)) (Set[T], error) {
	s := make(Set[T], len(codes))
	for _, code := range codes {
		v, err := parse(code)
		if err != nil {
			return nil, err
		}
		s[v] = struct{}{}
	}
	return s, nil
}

// String lists the constrained dimensions, e.g. "height=1BW,MID suit=M".
// An unconstrained filter prints as "any".
func (f Filter) String() string {
	var parts []string
	add := func(name string, codes []string) {
		if len(codes) == 0 {
			return
		}
		sort.Strings(codes)
		parts = append(parts, name+"="+strings.Join(codes, ","))
	}
	add("height", codesOf(f.Heights))
	add("suit", codesOf(f.Suits))
	add("connection", codesOf(f.Connections))
	add("pairing", codesOf(f.Pairings))
	if len(parts) == 0 {
		return "any"
	}
	return strings.Join(parts, " ")
}

func codesOf[T interface {
	comparable
	String() string
}](s Set[T]) []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v.String())
	}
	return out
}
