package organizer

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Heuristic buckets in priority order. Values land in the first bucket
// whose predicate they satisfy; unmatched values fall to bucketRest.
const (
	bucketPriority = iota // :pseudo and @at-rule variants, input order
	bucketDisplay         // display and positioning utilities
	bucketSize            // w-*, h-*
	bucketSpacing         // m-*, p-*
	bucketText            // text*
	bucketBackground      // bg*
	bucketRest            // everything else, input order
	bucketCount
)

// Prefix sets for the heuristic buckets. These are deliberately plain
// prefix checks: a token named "flexible" buckets as display, matching the
// established behavior of the ordering.
var displayPrefixes = []string{
	"flex", "grid", "fc", "justify", "items",
	"relative", "absolute", "fixed", "sticky",
	"top", "left", "right", "bottom",
}

// sortRules applies the optional per-group ordering pass. Cross-group order
// is never touched.
func sortRules[T any](rules []*rule[T], mode Sort, key func(T) string) {
	if mode == SortNone {
		return
	}

	c := collate.New(language.Und)
	for _, r := range rules {
		switch mode {
		case SortAsc:
			sortAsc(c, r.values, key)
		case SortDesc:
			// Reverse of the ascending result, ties included, rather than
			// a descending comparator.
			sortAsc(c, r.values, key)
			reverse(r.values)
		case SortUnocss:
			sortHeuristic(c, r.values, key)
		}
	}
}

// sortAsc stable-sorts values by locale-aware comparison of their
// comparison strings.
func sortAsc[T any](c *collate.Collator, values []T, key func(T) string) {
	sort.SliceStable(values, func(i, j int) bool {
		return c.CompareString(key(values[i]), key(values[j])) < 0
	})
}

func reverse[T any](values []T) {
	for i, j := 0, len(values)-1; i < j; i, j = i+1, j-1 {
		values[i], values[j] = values[j], values[i]
	}
}

// sortHeuristic reorders one group with the fixed-priority bucketing for
// CSS utility class tokens: variants first, then display/position, size,
// spacing, text, background, then everything else. The priority and rest
// buckets keep their original relative order; the others sort
// lexicographically.
func sortHeuristic[T any](c *collate.Collator, values []T, key func(T) string) {
	buckets := make([][]T, bucketCount)
	for _, v := range values {
		b := heuristicBucket(key(v))
		buckets[b] = append(buckets[b], v)
	}

	for b := bucketDisplay; b <= bucketBackground; b++ {
		sortAsc(c, buckets[b], key)
	}

	out := values[:0]
	for _, b := range buckets {
		out = append(out, b...)
	}
}

// heuristicBucket places a comparison string in the first bucket whose
// predicate it satisfies, tested in priority order.
func heuristicBucket(k string) int {
	switch {
	case strings.HasPrefix(k, ":") || strings.HasPrefix(k, "@"):
		return bucketPriority
	case hasAnyPrefix(k, displayPrefixes):
		return bucketDisplay
	case strings.HasPrefix(k, "w-") || strings.HasPrefix(k, "h-"):
		return bucketSize
	case strings.HasPrefix(k, "m-") || strings.HasPrefix(k, "p-"):
		return bucketSpacing
	case strings.HasPrefix(k, "text"):
		return bucketText
	case strings.HasPrefix(k, "bg"):
		return bucketBackground
	default:
		return bucketRest
	}
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
