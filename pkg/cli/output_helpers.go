package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// getOutputFormat returns the effective output format from the root command's persistent flags.
func getOutputFormat(cmd *cobra.Command) string {
	v, _ := cmd.Root().PersistentFlags().GetString("output")
	return v
}

func validateOutputFormat(output string) error {
	if output != "" && output != "table" && output != "json" {
		return fmt.Errorf("unsupported output format %q: use 'table' or 'json'", output)
	}
	return nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int
}

// printKeyValues renders two-column rows. Colour and borders are only used
// when w is a terminal so piped output stays plain.
func printKeyValues(w io.Writer, rows [][2]string) error {
	if !isTerminal(w) {
		for _, r := range rows {
			if _, err := fmt.Fprintf(w, "%-14s %s\n", r[0]+":", r[1]); err != nil {
				return err
			}
		}
		return nil
	}

	gold := lipgloss.Color("#ffd700")
	brass := lipgloss.Color("#d4af37")
	keyStyle := lipgloss.NewStyle().Foreground(brass).Bold(true).Padding(0, 1)
	valueStyle := lipgloss.NewStyle().Foreground(gold).Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(brass)).
		StyleFunc(func(_, col int) lipgloss.Style {
			if col == 0 {
				return keyStyle
			}
			return valueStyle
		})
	for _, r := range rows {
		t.Row(r[0], r[1])
	}
	_, err := fmt.Fprintln(w, t.String())
	return err
}
