// Package fixture stores named starting frames, either in a sqlite database
// or as plain text files in the rendered grid format.
package fixture

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Mshel/gridsnake/internal/game"
	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
)

const DefaultDBPath = "fixtures.db"
const tableName = "fixtures"

var ErrFixtureNotFound = errors.New("fixture not found")

type Store struct {
	db *sql.DB
}

type Fixture struct {
	Name      string
	Grid      string
	CreatedAt time.Time
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening database %s: %w", dsn, err)
	}
	// one connection so ":memory:" databases are shared by every query
	db.SetMaxOpenConns(1)

	store := &Store{db: db}
	if err := store.createTable(); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

func (store *Store) createTable() error {
	const createTableSQL = `
	CREATE TABLE IF NOT EXISTS ` + tableName + ` (
		name TEXT PRIMARY KEY,
		grid TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`

	_, err := store.db.Exec(createTableSQL)
	if err != nil {
		return fmt.Errorf("failed to execute CREATE TABLE: %w", err)
	}
	log.Debug("Fixtures table ensured.")
	return nil
}

// Save renders frame and stores it under name, replacing any previous grid.
func (store *Store) Save(name string, frame game.Frame) error {
	grid, err := game.RenderText(frame)
	if err != nil {
		return fmt.Errorf("failed to render fixture %s: %w", name, err)
	}

	const upsertSQL = `
	INSERT INTO ` + tableName + ` (name, grid) VALUES (?, ?)
	ON CONFLICT(name) DO UPDATE SET grid = excluded.grid;`

	if _, err := store.db.Exec(upsertSQL, name, grid); err != nil {
		return fmt.Errorf("failed to save fixture %s: %w", name, err)
	}

	return nil
}

func (store *Store) Load(name string) (game.Frame, error) {
	const selectSQL = `SELECT grid FROM ` + tableName + ` WHERE name = ?;`

	var grid string
	err := store.db.QueryRow(selectSQL, name).Scan(&grid)
	if errors.Is(err, sql.ErrNoRows) {
		return game.Frame{}, fmt.Errorf("%w: %s", ErrFixtureNotFound, name)
	}
	if err != nil {
		return game.Frame{}, fmt.Errorf("failed to load fixture %s: %w", name, err)
	}

	frame, err := game.Parse(grid)
	if err != nil {
		return game.Frame{}, fmt.Errorf("fixture %s: %w", name, err)
	}
	return frame, nil
}

// List returns every stored fixture ordered by name.
func (store *Store) List() ([]Fixture, error) {
	const selectSQL = `SELECT name, grid, created_at FROM ` + tableName + ` ORDER BY name;`

	rows, err := store.db.Query(selectSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to query fixtures: %w", err)
	}
	defer rows.Close()

	var fixtures []Fixture
	for rows.Next() {
		var fixture Fixture
		if err := rows.Scan(&fixture.Name, &fixture.Grid, &fixture.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		fixtures = append(fixtures, fixture)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating rows: %w", err)
	}

	return fixtures, nil
}

func (store *Store) Close() error {
	return store.db.Close()
}

// LoadFile parses a fixture file holding a rendered grid.
func LoadFile(path string) (game.Frame, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return game.Frame{}, fmt.Errorf("failed to read fixture file %s: %w", path, err)
	}

	frame, err := game.Parse(string(content))
	if err != nil {
		return game.Frame{}, fmt.Errorf("fixture file %s: %w", path, err)
	}
	return frame, nil
}

// SaveFile writes frame in the rendered grid format.
func SaveFile(path string, frame game.Frame) error {
	grid, err := game.RenderText(frame)
	if err != nil {
		return fmt.Errorf("failed to render fixture file %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(grid+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write fixture file %s: %w", path, err)
	}
	return nil
}
