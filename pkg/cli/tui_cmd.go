package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"titanic-dash/internal/tui"
)

var errNotTerminal = errors.New("the terminal dashboard needs an interactive terminal")

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Explore survival interactively in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(cmd.OutOrStdout()) {
				return errNotTerminal
			}
			svc, err := opts.loadService(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cmd.Context(), svc, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
