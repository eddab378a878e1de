package ui

import (
	"github.com/Mshel/gridsnake/internal/fixture"
	"github.com/Mshel/gridsnake/internal/game"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
)

type Screen int

const (
	IntroScreen Screen = iota
	SetupScreen
	GameScreen
)

// Messages for state transitions
type IntroSubmitMsg int // 0 for New Game, 1 for Load Fixture
type SetupSubmitMsg struct {
	Name string
}

type ControllerModel struct {
	CurrentScreen Screen
	GameManager   *game.GameManager
	Store         *fixture.Store
	Strategy      game.Strategy

	IntroModel tea.Model
	SetupModel tea.Model
	GameModel  tea.Model

	// nil when running in a local terminal
	CurrentUserSession ssh.Session
	ScreenWidth        int
	ScreenHeight       int
}

// NewControllerModel wires one game to one terminal. store may be nil, in
// which case loading fixtures is disabled.
func NewControllerModel(gameManager *game.GameManager, store *fixture.Store, strategy game.Strategy, userSession ssh.Session, screenWidth int, screenHeight int) ControllerModel {
	return ControllerModel{
		GameManager:   gameManager,
		Store:         store,
		Strategy:      strategy,
		CurrentScreen: IntroScreen,

		IntroModel: NewIntroModel(screenWidth, screenHeight, store != nil),

		CurrentUserSession: userSession,
		ScreenWidth:        screenWidth,
		ScreenHeight:       screenHeight,
	}
}

func (m ControllerModel) Init() tea.Cmd {
	return m.IntroModel.Init()
}

func (m ControllerModel) View() string {
	switch m.CurrentScreen {
	case IntroScreen:
		return m.IntroModel.View()
	case SetupScreen:
		if m.SetupModel != nil {
			return m.SetupModel.View()
		}
		return "Loading..."
	case GameScreen:
		if m.GameModel != nil {
			return m.GameModel.View()
		}
		return "Game Loading..."
	default:
		return "Unknown Screen"
	}
}

func (m ControllerModel) startGame() (ControllerModel, tea.Cmd) {
	m.CurrentScreen = GameScreen
	m.GameModel = NewGameModel(m.GameManager, m.Strategy, m.ScreenWidth, m.ScreenHeight)
	return m, m.GameModel.Init()
}

func (m ControllerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height

	case IntroSubmitMsg:
		if msg == 0 {
			m.GameManager.Restart()
			return m.startGame()
		}
		if m.Store != nil {
			m.CurrentScreen = SetupScreen
			m.SetupModel = NewInitialSetupModel(m.Store, m.ScreenWidth, m.ScreenHeight)
			return m, m.SetupModel.Init()
		}
		return m, nil

	case SetupSubmitMsg:
		frame, err := m.Store.Load(msg.Name)
		if err != nil {
			log.Warn("Fixture load failed", "name", msg.Name, "error", err)
			return m, func() tea.Msg { return FixtureLoadFailedMsg{Err: err} }
		}
		log.Info("Fixture loaded", "name", msg.Name, "width", frame.Width, "height", frame.Height)
		m.GameManager.Reset(frame)
		return m.startGame()

	case QuitGameMsg:
		m.CurrentScreen = IntroScreen
		m.IntroModel = NewIntroModel(m.ScreenWidth, m.ScreenHeight, m.Store != nil)
		return m, m.IntroModel.Init()
	}

	switch m.CurrentScreen {
	case IntroScreen:
		m.IntroModel, cmd = m.IntroModel.Update(msg)
	case SetupScreen:
		if m.SetupModel != nil {
			m.SetupModel, cmd = m.SetupModel.Update(msg)
		}
	case GameScreen:
		if m.GameModel != nil {
			m.GameModel, cmd = m.GameModel.Update(msg)
		}
	}

	return m, cmd
}
