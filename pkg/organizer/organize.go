package organizer

import (
	"strings"

	"github.com/arthur-debert/classorg/pkg/errors"
	"github.com/arthur-debert/classorg/pkg/logging"
)

// Organize classifies string values into the configured groups. This is the
// plain-string mode; the values themselves are the comparison strings.
func Organize(values []string, opts Options) (*Result[string], error) {
	return OrganizeBy(values, func(s string) string { return s }, opts)
}

// OrganizeBy classifies arbitrary values into the configured groups, using
// key to project each value to its comparison string. The projection is used
// consistently for pattern matching and for every sort mode.
func OrganizeBy[T any](values []T, key func(T) string, opts Options) (*Result[T], error) {
	logger := logging.GetLogger("organizer")

	if key == nil {
		var zero T
		return nil, errors.Newf(errors.ErrMissingProjection,
			"no string projection available for values of type %T", zero)
	}
	if err := validateSort(opts.Sort); err != nil {
		return nil, err
	}

	rules, err := resolveRules[T](opts)
	if err != nil {
		return nil, err
	}

	classify(rules, values, key)
	sortRules(rules, opts.Sort, key)

	result := &Result[T]{Groups: make([]Group[T], 0, len(rules))}
	for _, r := range rules {
		result.Groups = append(result.Groups, Group[T]{
			Query:  r.query.String(),
			Values: r.values,
		})
		result.Flat = append(result.Flat, r.values...)
	}

	logger.Debug().
		Int("values", len(values)).
		Int("groups", len(result.Groups)).
		Str("sort", string(opts.Sort)).
		Msg("Organized values")

	return result, nil
}

// ParseSort maps a user-supplied sort value to a Sort mode. Boolean strings
// are accepted for compatibility with truthy sort flags: "true" means
// ascending, "false" and the empty string mean no sorting.
func ParseSort(s string) (Sort, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "false", "none":
		return SortNone, nil
	case "true", "asc":
		return SortAsc, nil
	case "desc":
		return SortDesc, nil
	case "unocss":
		return SortUnocss, nil
	default:
		return SortNone, errors.Newf(errors.ErrSortInvalid, "unknown sort mode %q", s)
	}
}

func validateSort(mode Sort) error {
	switch mode {
	case SortNone, SortAsc, SortDesc, SortUnocss:
		return nil
	default:
		return errors.Newf(errors.ErrSortInvalid, "unknown sort mode %q", string(mode))
	}
}
