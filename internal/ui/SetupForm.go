package ui

import (
	"strings"

	"github.com/Mshel/gridsnake/internal/fixture"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	focusedColor = lipgloss.Color("205")
	focusedStyle = lipgloss.NewStyle().Foreground(focusedColor)
	blurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	helpStyle    = blurredStyle
)

// FixtureLoadFailedMsg reports a fixture name that could not be loaded.
type FixtureLoadFailedMsg struct {
	Err error
}

// SetupModel asks for the name of a stored fixture to start from.
type SetupModel struct {
	nameInput textinput.Model
	store     *fixture.Store
	names     []string
	err       error
	width     int
	height    int
}

func NewInitialSetupModel(store *fixture.Store, w, h int) SetupModel {
	ti := textinput.New()
	ti.Placeholder = "fixture name"
	ti.Focus()
	ti.CharLimit = 64
	ti.PromptStyle = focusedStyle
	ti.TextStyle = focusedStyle

	setupModel := SetupModel{
		nameInput: ti,
		store:     store,
		width:     w,
		height:    h,
	}

	return setupModel.refreshNames()
}

func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

// refreshNames reloads the fixture names shown under the input.
func (m SetupModel) refreshNames() SetupModel {
	if m.store == nil {
		return m
	}
	fixtures, err := m.store.List()
	if err != nil {
		log.Error("Could not list fixtures", "error", err)
		m.err = err
		return m
	}
	m.names = nil
	for _, f := range fixtures {
		m.names = append(m.names, f.Name)
	}
	return m
}

func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case FixtureLoadFailedMsg:
		m.err = msg.Err
		return m.refreshNames(), nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return QuitGameMsg{} }
		case "tab":
			// complete to the first fixture with the typed prefix
			m = m.refreshNames()
			typed := m.nameInput.Value()
			for _, name := range m.names {
				if strings.HasPrefix(name, typed) {
					m.nameInput.SetValue(name)
					m.nameInput.CursorEnd()
					break
				}
			}
			return m, nil
		case "enter":
			name := strings.TrimSpace(m.nameInput.Value())
			if name == "" {
				return m, nil
			}
			m.err = nil
			return m, func() tea.Msg { return SetupSubmitMsg{Name: name} }
		}
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m SetupModel) View() string {
	center := func(s string) string {
		return lipgloss.NewStyle().Width(m.width).Align(lipgloss.Center).Render(s)
	}

	var b strings.Builder

	b.WriteString(center(titleStyle.Render("Load a fixture")))
	b.WriteString("\n\n")
	b.WriteString(center(m.nameInput.View()))
	b.WriteString("\n\n")

	if len(m.names) > 0 {
		b.WriteString(center(blurredStyle.Render("stored: " + strings.Join(m.names, ", "))))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(center(errorStyle.Render(m.err.Error())))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(center(helpStyle.Render("(tab to complete, enter to load, esc to go back, ctrl+c to quit)")))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}
