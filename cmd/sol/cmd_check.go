package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/dhamidi/sol/workspace"
)

var (
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	caretStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	gutterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

func newCheckCmd() *cobra.Command {
	var jobs int
	var color bool

	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Report syntax errors in Solidity files and directories",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}

			w := workspace.New(".", workspace.WithJobs(jobs))
			docs, err := w.Load(cmd.Context(), args...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			errs, broken := 0, 0
			for _, doc := range docs {
				reports := doc.Output.ErrorReports()
				if len(reports) > 0 {
					broken++
				}
				for _, report := range reports {
					errs++
					writeReport(out, report, color)
				}
			}

			if errs > 0 {
				return fmt.Errorf("%d errors in %d of %d files", errs, broken, len(docs))
			}
			summary := fmt.Sprintf("checked %d files", len(docs))
			if color {
				summary = okStyle.Render(summary)
			}
			fmt.Fprintln(out, summary)
			return nil
		},
	}

	cmd.Flags().IntVar(&jobs, "jobs", 0, "files to parse in parallel (0 means one per CPU)")
	cmd.Flags().BoolVar(&color, "color", stdoutIsTerminal(), "colour the error reports")

	return cmd
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// writeReport prints one error report, colouring the headline, the gutter
// and the caret when color is set.
func writeReport(w io.Writer, report string, color bool) {
	lines := strings.Split(strings.TrimSuffix(report, "\n"), "\n")
	if !color {
		fmt.Fprintln(w, strings.Join(lines, "\n"))
		return
	}

	for i, line := range lines {
		switch {
		case i == 0 && strings.HasPrefix(line, "error:"):
			line = errorStyle.Render("error:") + strings.TrimPrefix(line, "error:")
		case i == len(lines)-1:
			gutter, caret, ok := strings.Cut(line, "|")
			if ok {
				line = gutterStyle.Render(gutter+"|") + caretStyle.Render(caret)
			}
		default:
			if gutter, rest, ok := strings.Cut(line, "|"); ok {
				line = gutterStyle.Render(gutter+"|") + rest
			} else if strings.Contains(line, "-->") {
				line = gutterStyle.Render(line)
			}
		}
		fmt.Fprintln(w, line)
	}
}
