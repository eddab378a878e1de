package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// --- Styling Definitions ---

var (
	voidColor = lipgloss.Color("233")

	// No internal padding so the grid lines up with the rendered rows.
	mapViewStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 0)

	statusPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("8")).
				Padding(1, 2)

	voidStyle  = lipgloss.NewStyle().Background(voidColor)
	headStyle  = lipgloss.NewStyle().Background(voidColor).Foreground(lipgloss.Color("87")).Bold(true)
	bodyStyle  = lipgloss.NewStyle().Background(voidColor).Foreground(lipgloss.Color("35"))
	appleStyle = lipgloss.NewStyle().Background(voidColor).Foreground(lipgloss.Color("196")).Bold(true)

	titleStyle = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// gameKeyMap binds one key press to one tick.
type gameKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Wait      key.Binding
	Autopilot key.Binding
	Reset     key.Binding
	Quit      key.Binding
}

var gameKeys = gameKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "w"),
		key.WithHelp("↑/w", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "s"),
		key.WithHelp("↓/s", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "a"),
		key.WithHelp("←/a", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "d"),
		key.WithHelp("→/d", "right"),
	),
	Wait: key.NewBinding(
		key.WithKeys(" ", "."),
		key.WithHelp("space", "tick"),
	),
	Autopilot: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "autopilot tick"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "restart"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k gameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Wait, k.Autopilot, k.Quit}
}

func (k gameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Wait, k.Autopilot, k.Reset, k.Quit},
	}
}
