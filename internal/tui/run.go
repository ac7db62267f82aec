package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"titanic-dash/internal/service/survival"
)

// Run starts the terminal dashboard and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, svc *survival.Service, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(New(svc),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("run terminal dashboard: %w", err)
	}
	return nil
}
