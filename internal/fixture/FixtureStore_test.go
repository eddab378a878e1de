package fixture

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/Mshel/gridsnake/internal/game"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "fixtures.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func curledFrame() game.Frame {
	apple := game.Position{X: 5, Y: 0}
	return game.Frame{
		Head:   game.Head{Position: game.Position{X: 1, Y: 2}, Facing: game.Right},
		Body:   []game.Position{{X: 0, Y: 2}, {X: 0, Y: 1}, {X: 1, Y: 1}},
		Apple:  &apple,
		Width:  6,
		Height: 3,
	}
}

func TestStore_SaveLoad(t *testing.T) {
	store := newTestStore(t)
	frame := curledFrame()

	if err := store.Save("curl", frame); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load("curl")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Head != frame.Head {
		t.Fatalf("head=%+v want=%+v", loaded.Head, frame.Head)
	}
	if loaded.Width != frame.Width || loaded.Height != frame.Height {
		t.Fatalf("size=%dx%d want=%dx%d", loaded.Width, loaded.Height, frame.Width, frame.Height)
	}
	if loaded.Apple == nil || *loaded.Apple != *frame.Apple {
		t.Fatalf("apple=%v want=%v", loaded.Apple, *frame.Apple)
	}
	if len(loaded.Body) != len(frame.Body) {
		t.Fatalf("body=%v want the same cells as %v", loaded.Body, frame.Body)
	}
	for _, segment := range frame.Body {
		if !slices.Contains(loaded.Body, segment) {
			t.Fatalf("body=%v missing %v", loaded.Body, segment)
		}
	}
}

func TestStore_SaveReplaces(t *testing.T) {
	store := newTestStore(t)

	if err := store.Save("start", game.BoringFrame()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Save("start", curledFrame()); err != nil {
		t.Fatalf("Save again: %v", err)
	}

	loaded, err := store.Load("start")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Width != 6 {
		t.Fatalf("width=%d, second save should win", loaded.Width)
	}

	fixtures, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(fixtures) != 1 {
		t.Fatalf("fixtures=%d want=1", len(fixtures))
	}
}

func TestStore_List(t *testing.T) {
	store := newTestStore(t)

	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := store.Save(name, game.BoringFrame()); err != nil {
			t.Fatalf("Save(%s): %v", name, err)
		}
	}

	fixtures, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	var names []string
	for _, f := range fixtures {
		names = append(names, f.Name)
		if f.CreatedAt.IsZero() {
			t.Errorf("fixture %s has no created_at", f.Name)
		}
	}
	if want := []string{"alpha", "mid", "zeta"}; !slices.Equal(names, want) {
		t.Fatalf("names=%v want=%v", names, want)
	}
}

func TestStore_LoadMissing(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Load("ghost"); !errors.Is(err, ErrFixtureNotFound) {
		t.Fatalf("err=%v want %v", err, ErrFixtureNotFound)
	}
}

func TestStore_SaveRejectsBadFrame(t *testing.T) {
	store := newTestStore(t)

	bad := game.NewFrame(2, 2, game.Head{Facing: game.NoDirection})
	if err := store.Save("bad", bad); !errors.Is(err, game.ErrIllegalGlyph) {
		t.Fatalf("err=%v want %v", err, game.ErrIllegalGlyph)
	}
}

func TestFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rendered_frame.txt")

	if err := SaveFile(path, game.BoringFrame()); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	frame, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	want := game.BoringFrame()
	if frame.Head != want.Head || *frame.Apple != *want.Apple || frame.Width != want.Width || frame.Height != want.Height {
		t.Fatalf("frame=%+v want=%+v", frame, want)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFile(filepath.Join(dir, "missing.txt")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file err=%v", err)
	}

	headless := filepath.Join(dir, "headless.txt")
	if err := os.WriteFile(headless, []byte("  \n *\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(headless); !errors.Is(err, game.ErrNoHeadFound) {
		t.Fatalf("headless err=%v want %v", err, game.ErrNoHeadFound)
	}
}

func TestLoadFile_RepoFixtures(t *testing.T) {
	for _, name := range []string{"rendered_frame.txt", "curl.txt"} {
		frame, err := LoadFile(filepath.Join("..", "..", "fixtures", name))
		if err != nil {
			t.Fatalf("LoadFile(%s): %v", name, err)
		}
		if frame.Apple == nil {
			t.Errorf("%s: expected an apple", name)
		}
	}
}
