package ui

import (
	"fmt"

	"github.com/Mshel/gridsnake/internal/game"
	"github.com/charmbracelet/lipgloss"
)

// GameOverState holds the data and local state for rendering the game over screen.
type GameOverState struct {
	Outcome        game.Outcome
	Ticks          int
	Length         int
	SelectedButton int
	ScreenWidth    int
	ScreenHeight   int
}

var (
	gameOverButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("7")).
				Padding(0, 3).
				Margin(1, 1).
				Bold(true)

	selectedButtonStyle = gameOverButtonStyle.
				Background(lipgloss.Color("4")).
				Foreground(lipgloss.Color("15"))
)

var gameOverButtons = []string{"RESTART", "MENU", "EXIT"}

func causeText(outcome game.Outcome) string {
	switch outcome {
	case game.HitEdgeOfScreen:
		return "You ran into the edge of the screen."
	case game.BitOwnTail:
		return "You bit your own tail."
	case game.BoardFilled:
		return "The snake fills the whole board."
	}
	return outcome.String()
}

// RenderGameOverScreen draws the terminal outcome and the buttons.
func (g *GameOverState) RenderGameOverScreen() string {
	titleText := "G A M E   O V E R"
	titleColor := lipgloss.Color("9")
	if g.Outcome == game.BoardFilled {
		titleText = "Y O U   W I N"
		titleColor = lipgloss.Color("10")
	}

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(titleColor).
		Padding(1, 5).
		Align(lipgloss.Center).
		Render(titleText)

	stats := fmt.Sprintf("\n%s\nTicks survived: %d\nFinal length: %d\n", causeText(g.Outcome), g.Ticks, g.Length)

	buttons := make([]string, 0, len(gameOverButtons))
	for i, label := range gameOverButtons {
		if i == g.SelectedButton {
			buttons = append(buttons, selectedButtonStyle.Render(label))
		} else {
			buttons = append(buttons, gameOverButtonStyle.Render(label))
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		stats,
		lipgloss.JoinHorizontal(lipgloss.Center, buttons...),
	)

	return lipgloss.Place(g.ScreenWidth, g.ScreenHeight,
		lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Render(content),
	)
}
