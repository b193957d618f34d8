package organizer

import (
	"regexp"

	"github.com/arthur-debert/classorg/pkg/errors"
	"github.com/arthur-debert/classorg/pkg/logging"
)

// rule is one resolved match rule. The catch-all rule has no pattern and
// unknown set; every other rule carries a compiled pattern.
type rule[T any] struct {
	query   Query
	re      *regexp.Regexp
	unknown bool
	values  []T
}

// resolveRules expands the requested group list into the ordered rule list.
// Preset keys expand in place, one rule per preset pattern. After expansion
// a catch-all rule is appended unless the caller already positioned one via
// the DefaultMarker.
func resolveRules[T any](opts Options) ([]*rule[T], error) {
	logger := logging.GetLogger("organizer.resolver")

	var rules []*rule[T]
	for _, q := range opts.Groups {
		expanded, err := expandQuery[T](q, opts)
		if err != nil {
			return nil, err
		}
		rules = append(rules, expanded...)
	}

	hasFallback := false
	for _, r := range rules {
		if r.unknown {
			hasFallback = true
			break
		}
	}
	if !hasFallback {
		rules = append(rules, &rule[T]{query: Q(DefaultMarker), unknown: true})
	}

	logger.Debug().
		Int("requested", len(opts.Groups)).
		Int("ruleCount", len(rules)).
		Msg("Resolved group rules")

	return rules, nil
}

// expandQuery resolves a single requested identifier: the default marker
// becomes the catch-all rule, a preset key expands to one rule per preset
// pattern, and anything else compiles to a single-pattern rule. Preset
// values are patterns only and never looked up as presets again, so alias
// chains cannot recurse.
func expandQuery[T any](q Query, opts Options) ([]*rule[T], error) {
	if q.re == nil {
		if q.raw == DefaultMarker {
			return []*rule[T]{{query: q, unknown: true}}, nil
		}
		if preset, ok := opts.Presets[q.raw]; ok {
			rules := make([]*rule[T], 0, len(preset))
			for _, pq := range preset {
				r, err := compileRule[T](pq, opts.IgnoreCase)
				if err != nil {
					return nil, err
				}
				rules = append(rules, r)
			}
			return rules, nil
		}
	}

	r, err := compileRule[T](q, opts.IgnoreCase)
	if err != nil {
		return nil, err
	}
	return []*rule[T]{r}, nil
}

// compileRule turns a pattern query into a rule, compiling literal sources
// with the configured case sensitivity. Caller-compiled patterns are used
// as-is.
func compileRule[T any](q Query, ignoreCase bool) (*rule[T], error) {
	re := q.re
	if re == nil {
		src := q.raw
		if ignoreCase {
			src = "(?i)" + src
		}
		var err error
		re, err = regexp.Compile(src)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidPattern,
				"cannot compile group pattern %q", q.raw)
		}
	}
	return &rule[T]{query: q, re: re}, nil
}
