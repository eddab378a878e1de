package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/Mshel/gridsnake/internal/fixture"
	"github.com/Mshel/gridsnake/internal/game"
	"github.com/Mshel/gridsnake/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

func main() {
	play := flag.Bool("play", false, "Play in this terminal, one key press per tick")
	autoplay := flag.Int("autoplay", 0, "Run this many headless ticks driven by the strategy")
	strategyName := flag.String("strategy", "default", "Autopilot strategy: "+strings.Join(game.StrategyNames(), ", "))
	strategyFile := flag.String("strategy-file", "", "Lua file defining getNextDirection(state); overrides -strategy")
	seed := flag.Int64("seed", game.DefaultSeed, "Seed for apple respawn")
	fixturePath := flag.String("fixture", "", "Start from a rendered grid file")
	dbPath := flag.String("db", "", "Fixture database; enables loading fixtures by name")
	saveName := flag.String("save", "", "Store the starting frame in -db under this name")
	debug := flag.Bool("debug", false, "Log every tick")
	flag.Parse()

	log.SetLevel(log.InfoLevel)
	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	frame := game.BoringFrame()
	if *fixturePath != "" {
		loaded, err := fixture.LoadFile(*fixturePath)
		if err != nil {
			log.Fatal("Could not load fixture", "path", *fixturePath, "error", err)
		}
		frame = loaded
	}

	var store *fixture.Store
	if *dbPath != "" {
		s, err := fixture.NewStore(*dbPath)
		if err != nil {
			log.Fatal("Could not open fixture store", "db", *dbPath, "error", err)
		}
		defer s.Close()
		store = s
	}

	if *saveName != "" {
		if store == nil {
			log.Fatal("-save needs -db")
		}
		if err := store.Save(*saveName, frame); err != nil {
			log.Fatal("Could not save fixture", "name", *saveName, "error", err)
		}
		log.Info("Fixture saved", "name", *saveName, "db", *dbPath)
	}

	strategy, err := loadStrategy(*strategyName, *strategyFile)
	if err != nil {
		log.Fatal("Could not load strategy", "error", err)
	}

	rng := rand.New(rand.NewSource(*seed))
	gameManager := game.NewGameManager(frame, rng)

	switch {
	case *play:
		p := tea.NewProgram(ui.NewControllerModel(gameManager, store, strategy, nil, 0, 0), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Printf("error %v", err)
			os.Exit(1)
		}
	case *autoplay > 0:
		runHeadless(gameManager, strategy, *autoplay)
	default:
		printDemo(frame)
	}
}

func loadStrategy(name, path string) (game.Strategy, error) {
	if path != "" {
		strategy, err := game.NewLuaStrategyFromFile(path)
		if err != nil {
			return nil, err
		}
		return strategy, nil
	}
	return game.GetStrategy(name)
}

// printDemo prints the frame and what the codec reads back from it.
func printDemo(frame game.Frame) {
	rows, err := game.Render(frame)
	if err != nil {
		log.Fatal("Could not render frame", "error", err)
	}
	fmt.Println(strings.Join(rows, "\n"))

	parsed, err := game.Parse(strings.Join(rows, "\n"))
	if err != nil {
		log.Fatal("Could not parse rendered frame", "error", err)
	}
	fmt.Printf("%+v\n", parsed)
}

func runHeadless(gameManager *game.GameManager, strategy game.Strategy, ticks int) {
	for i := 0; i < ticks; i++ {
		input, err := strategy.NextDirection(gameManager.Frame())
		if err != nil {
			log.Error("Strategy failed, ticking without input", "tick", i+1, "error", err)
			input = game.NoDirection
		}

		result := gameManager.Step(input)
		if result.Over() {
			break
		}
	}

	final := gameManager.Frame()
	rows, err := game.Render(final)
	if err != nil {
		log.Fatal("Could not render final frame", "error", err)
	}
	fmt.Println(strings.Join(rows, "\n"))
	log.Info("Autoplay finished", "ticks", gameManager.Ticks(), "outcome", gameManager.Outcome(), "length", final.Length())
}
