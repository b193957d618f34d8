// pkg/organizer/resolver_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test query construction and rule resolution edge cases

package organizer_test

import (
	"regexp"
	"testing"

	"github.com/arthur-debert/classorg/pkg/errors"
	"github.com/arthur-debert/classorg/pkg/organizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompiledQueries(t *testing.T) {
	t.Run("caller_compiled_pattern", func(t *testing.T) {
		re := regexp.MustCompile(`^(?i)btn`)
		result, err := organizer.Organize(
			[]string{"BTN-primary", "link"},
			organizer.Options{Groups: []organizer.Query{organizer.QRegexp(re)}},
		)
		require.NoError(t, err)

		assert.Equal(t, re.String(), result.Groups[0].Query)
		assert.Equal(t, []string{"BTN-primary"}, result.Groups[0].Values)
		assert.Equal(t, []string{"link"}, result.Groups[1].Values)
	})

	t.Run("compiled_pattern_in_preset", func(t *testing.T) {
		result, err := organizer.Organize(
			[]string{"w-2", "x"},
			organizer.Options{
				Groups: organizer.Queries("size"),
				Presets: map[string][]organizer.Query{
					"size": {organizer.QRegexp(regexp.MustCompile(`^w-`))},
				},
			},
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"w-2"}, result.Groups[0].Values)
	})
}

func TestResolutionEdgeCases(t *testing.T) {
	t.Run("preset_values_are_patterns_not_preset_names", func(t *testing.T) {
		// A preset entry matching another preset's name compiles as a
		// pattern; preset lookup never recurses, so aliases cannot cycle.
		result, err := organizer.Organize(
			[]string{"inner", "zzz"},
			organizer.Options{
				Groups: organizer.Queries("outer"),
				Presets: map[string][]organizer.Query{
					"outer": organizer.Queries("inner"),
					"inner": organizer.Queries("never-matches"),
				},
			},
		)
		require.NoError(t, err)

		require.Len(t, result.Groups, 2)
		assert.Equal(t, "inner", result.Groups[0].Query)
		assert.Equal(t, []string{"inner"}, result.Groups[0].Values)
	})

	t.Run("invalid_preset_pattern_propagates", func(t *testing.T) {
		_, err := organizer.Organize(
			[]string{"x"},
			organizer.Options{
				Groups: organizer.Queries("broken"),
				Presets: map[string][]organizer.Query{
					"broken": organizer.Queries("(unclosed"),
				},
			},
		)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidPattern))
	})

	t.Run("no_groups_yields_only_fallback", func(t *testing.T) {
		result, err := organizer.Organize([]string{"a", "b"}, organizer.Options{})
		require.NoError(t, err)

		require.Len(t, result.Groups, 1)
		assert.Equal(t, organizer.DefaultMarker, result.Groups[0].Query)
		assert.Equal(t, []string{"a", "b"}, result.Groups[0].Values)
	})
}
