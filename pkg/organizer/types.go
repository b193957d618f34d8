package organizer

import "regexp"

// DefaultMarker is the well-known group identifier for the catch-all group
// that receives values no other pattern matches.
const DefaultMarker = "$DEFAULT"

// Sort selects how each group's values are ordered after classification.
type Sort string

const (
	// SortNone keeps each group's values in input order.
	SortNone Sort = ""
	// SortAsc orders values by locale-aware ascending comparison.
	SortAsc Sort = "asc"
	// SortDesc is the exact reverse of the SortAsc order, ties included.
	SortDesc Sort = "desc"
	// SortUnocss applies the fixed-priority heuristic bucketing for CSS
	// utility class tokens.
	SortUnocss Sort = "unocss"
)

// Query identifies one requested group: a preset key, a literal pattern
// source, the DefaultMarker, or a caller-compiled regexp.
type Query struct {
	raw string
	re  *regexp.Regexp
}

// Q builds a Query from a plain identifier. The resolver decides whether it
// names a preset, the default marker, or a literal pattern.
func Q(identifier string) Query {
	return Query{raw: identifier}
}

// QRegexp builds a Query from an already compiled pattern. Compiled queries
// bypass preset lookup and the IgnoreCase option; the caller controls flags.
func QRegexp(re *regexp.Regexp) Query {
	return Query{re: re}
}

// Queries builds a Query list from plain identifiers.
func Queries(identifiers ...string) []Query {
	qs := make([]Query, len(identifiers))
	for i, id := range identifiers {
		qs[i] = Q(id)
	}
	return qs
}

// String returns the original identifier for reporting: the raw string as
// given, or the source of a compiled pattern.
func (q Query) String() string {
	if q.re != nil && q.raw == "" {
		return q.re.String()
	}
	return q.raw
}

// Options configures a single Organize invocation.
type Options struct {
	// Groups is the ordered list of requested group identifiers. Required.
	Groups []Query

	// Presets maps preset names to pattern lists. Preset values are literal
	// patterns only; a preset cannot reference another preset, so alias
	// cycles cannot form.
	Presets map[string][]Query

	// Sort selects the optional per-group ordering pass.
	Sort Sort

	// IgnoreCase makes literal pattern matching case-insensitive.
	IgnoreCase bool
}

// Group is the external projection of one resolved rule: its originating
// query plus the final ordered values.
type Group[T any] struct {
	Query  string `json:"query"`
	Values []T    `json:"values"`
}

// Result is the output of one invocation: the ordered groups plus a single
// flattened sequence concatenating all groups' values in rule order.
type Result[T any] struct {
	Groups []Group[T] `json:"groups"`
	Flat   []T        `json:"flat"`
}
