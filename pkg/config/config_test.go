// pkg/config/config_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Filesystem (temp dirs)
// PURPOSE: Test configuration layering and conversion to organizer options

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/classorg/pkg/config"
	"github.com/arthur-debert/classorg/pkg/errors"
	"github.com/arthur-debert/classorg/pkg/organizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "classorg.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("embedded_defaults", func(t *testing.T) {
		cfg, err := config.Load("")
		require.NoError(t, err)

		assert.Equal(t, []string{organizer.DefaultMarker}, cfg.Groups)
		assert.Contains(t, cfg.Presets, "spacing")
		assert.Contains(t, cfg.Presets, "layout")
		assert.Equal(t, "", cfg.Sort)
		assert.False(t, cfg.IgnoreCase)
	})

	t.Run("explicit_file_overrides_defaults", func(t *testing.T) {
		path := writeConfig(t, `
groups = ["spacing", "$DEFAULT"]
sort = "unocss"
ignore_case = true

[presets]
spacing = ["^m-", "^p-"]
`)
		cfg, err := config.Load(path)
		require.NoError(t, err)

		assert.Equal(t, []string{"spacing", "$DEFAULT"}, cfg.Groups)
		assert.Equal(t, "unocss", cfg.Sort)
		assert.True(t, cfg.IgnoreCase)
		assert.Equal(t, []string{"^m-", "^p-"}, cfg.Presets["spacing"])
		// Presets not overridden keep their embedded defaults.
		assert.Contains(t, cfg.Presets, "layout")
	})

	t.Run("env_overrides_file", func(t *testing.T) {
		path := writeConfig(t, `sort = "asc"`)
		t.Setenv("CLASSORG_SORT", "desc")

		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "desc", cfg.Sort)
	})

	t.Run("missing_explicit_file_fails", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("malformed_toml_fails", func(t *testing.T) {
		path := writeConfig(t, `groups = [unterminated`)
		_, err := config.Load(path)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})
}

func TestOptions(t *testing.T) {
	t.Run("converts_to_organizer_options", func(t *testing.T) {
		cfg := &config.Config{
			Groups:     []string{"spacing", organizer.DefaultMarker},
			Presets:    map[string][]string{"spacing": {"^m-", "^p-"}},
			Sort:       "unocss",
			IgnoreCase: true,
		}

		opts, err := cfg.Options()
		require.NoError(t, err)

		assert.Len(t, opts.Groups, 2)
		assert.Len(t, opts.Presets["spacing"], 2)
		assert.Equal(t, organizer.SortUnocss, opts.Sort)
		assert.True(t, opts.IgnoreCase)
	})

	t.Run("truthy_sort_is_asc", func(t *testing.T) {
		cfg := &config.Config{Sort: "true"}
		opts, err := cfg.Options()
		require.NoError(t, err)
		assert.Equal(t, organizer.SortAsc, opts.Sort)
	})

	t.Run("invalid_sort_rejected", func(t *testing.T) {
		cfg := &config.Config{Sort: "sideways"}
		_, err := cfg.Options()
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrSortInvalid))
	})
}
