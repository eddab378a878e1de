package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// IntroModel holds the state for the main menu.
type IntroModel struct {
	selected int // 0: New Game, 1: Load Fixture
	canLoad  bool
	width    int
	height   int
}

func NewIntroModel(w, h int, canLoad bool) IntroModel {
	return IntroModel{selected: 0, canLoad: canLoad, width: w, height: h}
}

func (m IntroModel) Init() tea.Cmd { return nil }

func (m IntroModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h", "right", "l", "tab":
			if m.canLoad {
				m.selected = 1 - m.selected
			}
		case "q":
			return m, tea.Quit
		case "enter":
			return m, func() tea.Msg { return IntroSubmitMsg(m.selected) }
		}
	}
	return m, nil
}

var snakeTitle = `
  + + + + + →          *
  +
  + + +   G R I D   S N A K E
`

var (
	asciiStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("87"))

	introButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("7")).
				Padding(0, 3).
				Margin(1, 2).
				Border(lipgloss.RoundedBorder())

	introSelectedButtonStyle = introButtonStyle.
					Background(lipgloss.Color("87")).
					Foreground(lipgloss.Color("0"))

	introDisabledButtonStyle = introButtonStyle.
					Faint(true)
)

func (m IntroModel) View() string {
	newGame := introButtonStyle.Render("New Game")
	loadFixture := introButtonStyle.Render("Load Fixture")

	if m.selected == 0 {
		newGame = introSelectedButtonStyle.Render("New Game")
	} else {
		loadFixture = introSelectedButtonStyle.Render("Load Fixture")
	}
	if !m.canLoad {
		loadFixture = introDisabledButtonStyle.Render("Load Fixture")
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center, newGame, loadFixture)
	content := lipgloss.JoinVertical(lipgloss.Center,
		asciiStyle.Render(snakeTitle),
		buttons,
		faintStyle.Render("one key press = one tick"),
	)

	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
}
