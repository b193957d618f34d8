package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/classorg/pkg/errors"
	"github.com/arthur-debert/classorg/pkg/logging"
	"github.com/arthur-debert/classorg/pkg/organizer"
)

// Local config filenames, checked in order; the first one found wins.
var localConfigNames = []string{".classorg.toml", "classorg.toml"}

// Config is the user-facing configuration shape.
type Config struct {
	Groups     []string            `koanf:"groups"`
	Presets    map[string][]string `koanf:"presets"`
	Sort       string              `koanf:"sort"`
	IgnoreCase bool                `koanf:"ignore_case"`
}

// Load builds the effective configuration from the layered sources. When
// explicitPath is non-empty it replaces the user and project-local layers.
func Load(explicitPath string) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load default configuration")
	}

	if explicitPath != "" {
		if err := k.Load(file.Provider(explicitPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad,
				"failed to load config from %s", explicitPath)
		}
	} else {
		// 2. User config
		userPath := filepath.Join(xdg.ConfigHome, "classorg", "config.toml")
		if _, err := os.Stat(userPath); err == nil {
			if err := k.Load(file.Provider(userPath), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad,
					"failed to load user config from %s", userPath)
			}
		}

		// 3. Project-local config
		for _, name := range localConfigNames {
			if _, err := os.Stat(name); err == nil {
				if err := k.Load(file.Provider(name), toml.Parser()); err != nil {
					return nil, errors.Wrapf(err, errors.ErrConfigLoad,
						"failed to load local config from %s", name)
				}
				break
			}
		}
	}

	// 4. Environment overrides: CLASSORG_SORT, CLASSORG_IGNORE_CASE, ...
	if err := k.Load(env.Provider("CLASSORG_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "CLASSORG_")), "_", ".")
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	logger.Debug().
		Strs("groups", cfg.Groups).
		Int("presets", len(cfg.Presets)).
		Str("sort", cfg.Sort).
		Msg("Configuration loaded")

	return &cfg, nil
}

// Options converts the configuration into organizer options.
func (c *Config) Options() (organizer.Options, error) {
	sortMode, err := organizer.ParseSort(c.Sort)
	if err != nil {
		return organizer.Options{}, err
	}

	presets := make(map[string][]organizer.Query, len(c.Presets))
	for name, patterns := range c.Presets {
		presets[name] = organizer.Queries(patterns...)
	}

	return organizer.Options{
		Groups:     organizer.Queries(c.Groups...),
		Presets:    presets,
		Sort:       sortMode,
		IgnoreCase: c.IgnoreCase,
	}, nil
}
