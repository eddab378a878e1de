package ui

import (
	"fmt"
	"strings"

	"github.com/Mshel/gridsnake/internal/game"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// --- Internal Game States for GameViewModel ---

type GameState int

const (
	StatePlaying GameState = iota
	StateGameOver
)

// QuitGameMsg asks the controller to go back to the intro screen.
type QuitGameMsg struct{}

// GameViewModel is turn based: every tick comes from exactly one key press.
type GameViewModel struct {
	ScreenWidth  int
	ScreenHeight int
	gameManager  *game.GameManager
	strategy     game.Strategy
	help         help.Model
	lastInput    game.Direction
	lastError    error

	gameState     GameState
	gameOverState GameOverState
}

func NewGameModel(gm *game.GameManager, strategy game.Strategy, screenWidth int, screenHeight int) GameViewModel {
	return GameViewModel{
		gameManager:  gm,
		strategy:     strategy,
		help:         help.New(),
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		gameState:    StatePlaying,
		gameOverState: GameOverState{
			ScreenWidth:  screenWidth,
			ScreenHeight: screenHeight,
		},
	}
}

func (m GameViewModel) Init() tea.Cmd {
	return nil
}

func (m GameViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
		m.gameOverState.ScreenWidth = msg.Width
		m.gameOverState.ScreenHeight = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.gameState == StateGameOver {
			return m.updateGameOver(msg)
		}

		switch {
		case key.Matches(msg, gameKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, gameKeys.Reset):
			m.gameManager.Restart()
			m.lastInput = game.NoDirection
			m.lastError = nil
			return m, nil
		case key.Matches(msg, gameKeys.Up):
			return m.step(game.Up), nil
		case key.Matches(msg, gameKeys.Down):
			return m.step(game.Down), nil
		case key.Matches(msg, gameKeys.Left):
			return m.step(game.Left), nil
		case key.Matches(msg, gameKeys.Right):
			return m.step(game.Right), nil
		case key.Matches(msg, gameKeys.Wait):
			return m.step(game.NoDirection), nil
		case key.Matches(msg, gameKeys.Autopilot):
			return m.autopilotStep(), nil
		}
	}

	return m, nil
}

func (m GameViewModel) autopilotStep() GameViewModel {
	if m.strategy == nil {
		return m.step(game.NoDirection)
	}

	dir, err := m.strategy.NextDirection(m.gameManager.Frame())
	if err != nil {
		log.Error("Autopilot failed", "error", err)
		m.lastError = err
		dir = game.NoDirection
	} else {
		m.lastError = nil
	}
	return m.step(dir)
}

func (m GameViewModel) step(input game.Direction) GameViewModel {
	result := m.gameManager.Step(input)
	m.lastInput = input

	if result.Over() {
		m.gameState = StateGameOver
		m.gameOverState.Outcome = result.Outcome
		m.gameOverState.Ticks = m.gameManager.Ticks()
		m.gameOverState.Length = result.Frame.Length()
		m.gameOverState.SelectedButton = 0
	}
	return m
}

func (m GameViewModel) updateGameOver(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		m.gameOverState.SelectedButton = max(0, m.gameOverState.SelectedButton-1)
	case "right", "l":
		m.gameOverState.SelectedButton = min(2, m.gameOverState.SelectedButton+1)
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter":
		switch m.gameOverState.SelectedButton {
		case 0:
			m.gameManager.Restart()
			m.gameState = StatePlaying
			m.lastInput = game.NoDirection
		case 1:
			return m, func() tea.Msg { return QuitGameMsg{} }
		default:
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m GameViewModel) View() string {
	if m.gameState == StateGameOver {
		return m.gameOverState.RenderGameOverScreen()
	}

	frame := m.gameManager.Frame()

	mapContent, err := renderMap(frame)
	if err != nil {
		return lipgloss.Place(m.ScreenWidth, m.ScreenHeight, lipgloss.Center, lipgloss.Center,
			errorStyle.Render(fmt.Sprintf("cannot draw frame: %v", err)))
	}

	board := lipgloss.JoinHorizontal(lipgloss.Top,
		mapViewStyle.Render(mapContent),
		statusPanelStyle.Render(m.renderStatusPanel(frame)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, board, m.help.View(gameKeys))
}

// renderMap colours the codec output cell by cell.
func renderMap(frame game.Frame) (string, error) {
	rows, err := game.Render(frame)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i, row := range rows {
		for _, glyph := range row {
			cell := string(glyph)
			switch glyph {
			case game.GlyphEmpty:
				sb.WriteString(voidStyle.Render(cell))
			case game.GlyphBody:
				sb.WriteString(bodyStyle.Render(cell))
			case game.GlyphApple:
				sb.WriteString(appleStyle.Render(cell))
			default:
				sb.WriteString(headStyle.Render(cell))
			}
		}
		if i < len(rows)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String(), nil
}

func (m GameViewModel) renderStatusPanel(frame game.Frame) string {
	var statusContent strings.Builder

	statusContent.WriteString(titleStyle.Render("--- Snake ---") + "\n")
	statusContent.WriteString(fmt.Sprintf("Tick: %d\n", m.gameManager.Ticks()))
	statusContent.WriteString(fmt.Sprintf("Facing: %s\n", frame.Head.Facing))
	statusContent.WriteString(fmt.Sprintf("Head: (%d,%d)\n", frame.Head.X, frame.Head.Y))
	statusContent.WriteString(fmt.Sprintf("Length: %d\n", frame.Length()))
	if frame.Apple != nil {
		statusContent.WriteString(fmt.Sprintf("Apple: (%d,%d)\n", frame.Apple.X, frame.Apple.Y))
	}
	statusContent.WriteString(fmt.Sprintf("Last input: %s\n", m.lastInput))

	if m.lastError != nil {
		statusContent.WriteString("\n" + errorStyle.Render(m.lastError.Error()) + "\n")
	}

	statusContent.WriteString("\n" + faintStyle.Render(fmt.Sprintf("Grid %dx%d", frame.Width, frame.Height)))

	return statusContent.String()
}
