package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/ecotracks/ecotracks/internal/diagram"
	"github.com/ecotracks/ecotracks/internal/logging"
	"github.com/ecotracks/ecotracks/internal/tui"
)

// Diagram formats.
const (
	diagramFormatTree = "tree"
	diagramFormatText = "text"
	diagramFormatDOT  = "dot"
)

// ErrUnsupportedDiagramFormat is returned for unknown --format values.
var ErrUnsupportedDiagramFormat = errors.New("unsupported diagram format")

// NewDiagramCmd creates the command that prints the scope decision tree.
func NewDiagramCmd() *cobra.Command {
	var (
		format string
		plain  bool
	)

	cmd := &cobra.Command{
		Use:   "diagram",
		Short: "Print the scope classification decision tree",
		Long: `Prints the decision tree operators follow to classify fuel records.

Formats: tree draws it in the terminal (falling back to a text summary if
drawing fails), text prints the numbered flow, dot prints Graphviz source.`,
		Example: `  ecotracks diagram
  ecotracks diagram --format dot > tree.dot`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := diagram.DecisionTree()
			w := cmd.OutOrStdout()

			switch format {
			case diagramFormatDOT:
				_, err := io.WriteString(w, diagram.DOT(g))
				return err
			case diagramFormatText:
				return writeDiagramResult(w, diagram.Textual{}.Render(g), true)
			case diagramFormatTree:
				l := logging.ComponentLogger(*logging.FromContext(cmd.Context()), "diagram")
				res := diagram.NewGraphical(l).Render(g)
				return writeDiagramResult(w, res, tui.DetectOutputMode(plain) == tui.OutputModePlain)
			default:
				return fmt.Errorf("%w: %q (use tree, text or dot)", ErrUnsupportedDiagramFormat, format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", diagramFormatTree, "output format: tree, text or dot")
	cmd.Flags().BoolVar(&plain, "plain", false, "disable colours and styling")
	return cmd
}

func writeDiagramResult(w io.Writer, res diagram.Result, plain bool) error {
	var out string
	if res.Outcome == diagram.Ok {
		out = res.Diagram + "\n"
	} else {
		out = "Warning: " + res.Notice + "\n" + res.Summary + "\n"
		if res.Flow != "" {
			out += "\n" + res.Flow + "\n"
		}
	}
	if plain {
		out = ansi.Strip(out)
	}
	_, err := io.WriteString(w, out)
	return err
}
