package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/Mshel/gridsnake/internal/fixture"
	"github.com/Mshel/gridsnake/internal/game"
	"github.com/Mshel/gridsnake/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"
)

const (
	defaultAddress = "0.0.0.0:6996"

	maxConnectionsPerIP = 2
)

var (
	ipCounter = make(map[string]int)
	ipMutex   sync.Mutex

	fixtureStore *fixture.Store
)

func getIP(s ssh.Session) string {
	if addr, ok := s.RemoteAddr().(*net.TCPAddr); ok {
		return addr.IP.String()
	}
	return s.RemoteAddr().String()
}

func incrementIP(ip string) {
	ipMutex.Lock()
	defer ipMutex.Unlock()
	ipCounter[ip]++
}

func decrementIP(ip string) {
	ipMutex.Lock()
	defer ipMutex.Unlock()
	ipCounter[ip]--
	if ipCounter[ip] <= 0 {
		delete(ipCounter, ip)
	}
}

func getCount(ip string) int {
	ipMutex.Lock()
	defer ipMutex.Unlock()
	return ipCounter[ip]
}

func connectionLimiterMiddleware(next ssh.Handler) ssh.Handler {
	return func(s ssh.Session) {
		ip := getIP(s)
		currentCount := getCount(ip)

		if currentCount >= maxConnectionsPerIP {
			log.Warn("Connection denied: IP limit exceeded", "ip", ip, "attempted_count", currentCount+1, "current_limit", maxConnectionsPerIP)
			errorMessage := fmt.Sprintf("Too many active connections from your IP (%d/%d). Please try again later.\r\n", currentCount+1, maxConnectionsPerIP)
			s.Write([]byte(errorMessage))
			s.Close()
			return
		}

		incrementIP(ip)
		log.Info("Connection accepted", "ip", ip, "current_count", getCount(ip), "limit", maxConnectionsPerIP)
		next(s)
		decrementIP(ip)
		log.Info("Connection closed", "ip", ip, "count_after", getCount(ip))
	}
}

func getEnv(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

func main() {
	log.SetLevel(log.InfoLevel)
	if os.Getenv("GRIDSNAKE_DEBUG") != "" {
		log.SetLevel(log.DebugLevel)
	}

	address := getEnv("GRIDSNAKE_ADDR", defaultAddress)
	sshPKeyPath := getEnv("GRIDSNAKE_PRIVATE_KEY_PATH", ".ssh/id_ed25519")
	dbPath := getEnv("GRIDSNAKE_DB", fixture.DefaultDBPath)

	store, err := fixture.NewStore(dbPath)
	if err != nil {
		log.Error("Fixture store unavailable, loading disabled", "db", dbPath, "error", err)
	} else {
		fixtureStore = store
		defer store.Close()
	}

	sshServer, serverCreateErr := wish.NewServer(
		wish.WithAddress(address),
		wish.WithHostKeyPath(sshPKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(viewHandler),
			activeterm.Middleware(),
			logging.Middleware(),
			connectionLimiterMiddleware,
		),
	)
	if serverCreateErr != nil {
		log.Fatal("Failed to create ssh server", "error", serverCreateErr)
	}

	serverDoneChannel := make(chan os.Signal, 1)
	signal.Notify(serverDoneChannel, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	log.Info("Starting SSH server", "address", address)
	go func() {
		if err := sshServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Error("Could not start server", "error", err)
			serverDoneChannel <- nil
		}
	}()

	<-serverDoneChannel

	log.Info("Stopping SSH server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := sshServer.Shutdown(ctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		log.Error("Could not stop server", "error", err)
	}
}

// viewHandler gives every session its own game and random source.
func viewHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sshSession.Pty()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	gameManager := game.NewGameManager(game.BoringFrame(), rng)
	strategy := &game.DefaultStrategy{}

	controllerModel := ui.NewControllerModel(gameManager, fixtureStore, strategy, sshSession, pty.Window.Width, pty.Window.Height)

	return controllerModel, []tea.ProgramOption{tea.WithAltScreen()}
}
