// Package classorg wires the command tree for the classorg CLI.
package classorg

import (
	"bufio"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/classorg/internal/version"
	"github.com/arthur-debert/classorg/pkg/config"
	"github.com/arthur-debert/classorg/pkg/errors"
	"github.com/arthur-debert/classorg/pkg/extract"
	"github.com/arthur-debert/classorg/pkg/logging"
	"github.com/arthur-debert/classorg/pkg/organizer"
	"github.com/arthur-debert/classorg/pkg/ui/output"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity  int
		configPath string
		groups     []string
		sortMode   string
		ignoreCase bool
		format     string
		inputPath  string
	)

	rootCmd := &cobra.Command{
		Use:     "classorg [classes...]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := collectValues(args, inputPath)
			if err != nil {
				return err
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			// Flags override the layered configuration.
			if cmd.Flags().Changed("groups") {
				cfg.Groups = groups
			}
			if cmd.Flags().Changed("sort") {
				cfg.Sort = sortMode
			}
			if cmd.Flags().Changed("ignore-case") {
				cfg.IgnoreCase = ignoreCase
			}

			opts, err := cfg.Options()
			if err != nil {
				return err
			}

			result, err := organizer.Organize(values, opts)
			if err != nil {
				return err
			}

			outFormat, err := output.ParseFormat(format)
			if err != nil {
				return err
			}
			return output.NewRenderer(cmd.OutOrStdout()).Render(result, outFormat)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", MsgFlagConfig)

	// Organize flags
	rootCmd.Flags().StringSliceVarP(&groups, "groups", "g", nil, MsgFlagGroups)
	rootCmd.Flags().StringVarP(&sortMode, "sort", "s", "", MsgFlagSort)
	rootCmd.Flags().BoolVar(&ignoreCase, "ignore-case", false, MsgFlagIgnoreCase)
	rootCmd.Flags().StringVarP(&format, "format", "f", "text", MsgFlagFormat)
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", MsgFlagInput)

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newDocsCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// collectValues gathers the class names to organize: an input file wins,
// then arguments, then piped stdin.
func collectValues(args []string, inputPath string) ([]string, error) {
	if inputPath != "" {
		return extract.ClassesFromFile(inputPath)
	}
	if len(args) > 0 {
		return args, nil
	}

	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return nil, errors.New(errors.ErrInvalidInput, MsgNoValues)
	}

	var values []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		values = append(values, strings.Fields(scanner.Text())...)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrInputRead, "failed to read stdin")
	}
	return values, nil
}
