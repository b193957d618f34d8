package classorg

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/classorg/pkg/errors"
)

//go:embed docs.md
var docsMarkdown string

func newDocsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "docs",
		Short: MsgDocsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(100),
			)
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to create documentation renderer")
			}
			rendered, err := renderer.Render(docsMarkdown)
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to render documentation")
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
}
