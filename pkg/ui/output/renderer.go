// Package output renders organizer results for the terminal: a styled text
// view, machine-readable JSON, and a table view.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"

	"github.com/arthur-debert/classorg/pkg/errors"
	"github.com/arthur-debert/classorg/pkg/organizer"
	"github.com/arthur-debert/classorg/pkg/ui/styles"
)

// Format selects the output representation.
type Format string

const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatTable Format = "table"
)

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "table":
		return FormatTable, nil
	default:
		return FormatText, errors.Newf(errors.ErrInvalidInput, "unknown output format %q", s)
	}
}

// Renderer writes organizer results to a writer.
type Renderer struct {
	w io.Writer
}

// NewRenderer creates a renderer for the given writer. When the writer is
// not a terminal, styling is disabled so piped output stays plain.
func NewRenderer(w io.Writer) *Renderer {
	if f, ok := w.(*os.File); ok {
		if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
	}
	return &Renderer{w: w}
}

// Render writes the result in the requested format.
func (r *Renderer) Render(result *organizer.Result[string], format Format) error {
	switch format {
	case FormatJSON:
		return r.renderJSON(result)
	case FormatTable:
		return r.renderTable(result)
	default:
		return r.renderText(result)
	}
}

func (r *Renderer) renderText(result *organizer.Result[string]) error {
	headerStyle := styles.GetStyle("GroupHeader")
	countStyle := styles.GetStyle("GroupCount")
	valueStyle := styles.GetStyle("Value")

	for _, group := range result.Groups {
		header := headerStyle.Render(group.Query)
		count := countStyle.Render(fmt.Sprintf("(%d)", len(group.Values)))
		if _, err := fmt.Fprintf(r.w, "%s %s\n", header, count); err != nil {
			return err
		}
		for _, v := range group.Values {
			if _, err := fmt.Fprintln(r.w, valueStyle.Render(v)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Renderer) renderJSON(result *organizer.Result[string]) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func (r *Renderer) renderTable(result *organizer.Result[string]) error {
	data := pterm.TableData{{"GROUP", "COUNT", "VALUES"}}
	for _, group := range result.Groups {
		data = append(data, []string{
			group.Query,
			fmt.Sprintf("%d", len(group.Values)),
			strings.Join(group.Values, " "),
		})
	}
	return pterm.DefaultTable.
		WithHasHeader().
		WithData(data).
		WithWriter(r.w).
		Render()
}
