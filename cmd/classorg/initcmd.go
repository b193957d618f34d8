package classorg

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/classorg/pkg/config"
	"github.com/arthur-debert/classorg/pkg/errors"
)

const initConfigName = "classorg.toml"

// starterConfig is the on-disk shape written by the init command.
type starterConfig struct {
	Groups     []string            `toml:"groups"`
	Sort       string              `toml:"sort"`
	IgnoreCase bool                `toml:"ignore_case"`
	Presets    map[string][]string `toml:"presets"`
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: MsgInitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(initConfigName); err == nil {
				return errors.Newf(errors.ErrInvalidInput, MsgConfigExistsError, initConfigName)
			}

			// Seed the starter file with the effective defaults so users
			// edit a complete, working configuration.
			cfg, err := config.Load("")
			if err != nil {
				return err
			}

			data, err := toml.Marshal(starterConfig{
				Groups:     cfg.Groups,
				Sort:       cfg.Sort,
				IgnoreCase: cfg.IgnoreCase,
				Presets:    cfg.Presets,
			})
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to marshal starter config")
			}

			if err := os.WriteFile(initConfigName, data, 0644); err != nil {
				return errors.Wrapf(err, errors.ErrConfigLoad, "failed to write %s", initConfigName)
			}

			fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, initConfigName)
			return nil
		},
	}
}
