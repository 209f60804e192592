// Package styles provides shared lipgloss styles for CLI and TUI output.
package styles

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Surface    lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

// themes holds the built-in named palettes.
var themes = map[string]Palette{
	"tokyo-night": {
		Primary:    lipgloss.Color("#7aa2f7"),
		Secondary:  lipgloss.Color("#7dcfff"),
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Surface:    lipgloss.Color("#3b4261"),
		Success:    lipgloss.Color("#9ece6a"),
		Warning:    lipgloss.Color("#e0af68"),
		Error:      lipgloss.Color("#f7768e"),
	},
	"gruvbox": {
		Primary:    lipgloss.Color("#83a598"),
		Secondary:  lipgloss.Color("#8ec07c"),
		Foreground: lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#665c54"),
		Surface:    lipgloss.Color("#3c3836"),
		Success:    lipgloss.Color("#b8bb26"),
		Warning:    lipgloss.Color("#fabd2f"),
		Error:      lipgloss.Color("#fb4934"),
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Shared style exports, rebuilt by SetTheme.
var (
	TitleStyle    lipgloss.Style
	MutedStyle    lipgloss.Style
	SuccessStyle  lipgloss.Style
	WarningStyle  lipgloss.Style
	ErrorStyle    lipgloss.Style
	TimerStyle    lipgloss.Style
	SelectedStyle lipgloss.Style

	TabActiveStyle   lipgloss.Style
	TabInactiveStyle lipgloss.Style

	StatusPendingStyle    lipgloss.Style
	StatusInProgressStyle lipgloss.Style
	StatusPausedStyle     lipgloss.Style
	StatusCompletedStyle  lipgloss.Style

	BarStyle       lipgloss.Style
	TableHeadStyle lipgloss.Style
)

// SetTheme activates a palette and rebuilds all exported styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	TitleStyle = lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
	MutedStyle = lipgloss.NewStyle().Foreground(p.Muted)
	SuccessStyle = lipgloss.NewStyle().Foreground(p.Success)
	WarningStyle = lipgloss.NewStyle().Foreground(p.Warning)
	ErrorStyle = lipgloss.NewStyle().Foreground(p.Error)
	TimerStyle = lipgloss.NewStyle().Foreground(p.Secondary).Bold(true)
	SelectedStyle = lipgloss.NewStyle().Foreground(p.Foreground).Background(p.Surface).Bold(true)

	TabActiveStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true).
		Padding(0, 2).
		Border(lipgloss.RoundedBorder(), false, false, true, false).
		BorderForeground(p.Primary)
	TabInactiveStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Padding(0, 2)

	StatusPendingStyle = lipgloss.NewStyle().Foreground(p.Muted)
	StatusInProgressStyle = lipgloss.NewStyle().Foreground(p.Success).Bold(true)
	StatusPausedStyle = lipgloss.NewStyle().Foreground(p.Warning)
	StatusCompletedStyle = lipgloss.NewStyle().Foreground(p.Secondary).Strikethrough(true)

	BarStyle = lipgloss.NewStyle().Foreground(p.Primary)
	TableHeadStyle = lipgloss.NewStyle().Foreground(p.Secondary).Bold(true)
}

func init() {
	SetTheme(themes[DefaultTheme])
}
