package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/hibi-cli/hibi/internal/hibi"
)

// Run starts the interactive frontend and blocks until the user quits.
func Run(svc *hibi.Service, log zerolog.Logger) error {
	p := tea.NewProgram(New(svc, log), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
