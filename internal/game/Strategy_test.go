package game

import (
	"errors"
	"testing"
)

func TestDefaultStrategy(t *testing.T) {
	apple := Position{X: 4, Y: 2}
	tests := []struct {
		name  string
		frame Frame
		want  Direction
	}{
		{
			name:  "turns toward apple",
			frame: Frame{Head: Head{Position: Position{X: 2, Y: 2}, Facing: Up}, Apple: &apple, Width: 5, Height: 5},
			want:  Right,
		},
		{
			name:  "keeps straight on ties",
			frame: Frame{Head: Head{Position: Position{X: 3, Y: 1}, Facing: Up}, Apple: &apple, Width: 5, Height: 5},
			want:  Up,
		},
		{
			name:  "avoids the wall without an apple",
			frame: headOnly(0, 4, Up, 5, 5),
			want:  Right,
		},
		{
			name: "avoids the body",
			frame: Frame{
				Head:   Head{Position: Position{X: 2, Y: 2}, Facing: Up},
				Body:   []Position{{X: 2, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 2}, {X: 3, Y: 3}, {X: 2, Y: 3}, {X: 1, Y: 3}},
				Apple:  &apple,
				Width:  5,
				Height: 5,
			},
			want: Left,
		},
		{
			name: "tail cell is free",
			frame: Frame{
				Head:   Head{Position: Position{X: 0, Y: 1}, Facing: Up},
				Body:   []Position{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}},
				Width:  2,
				Height: 2,
			},
			want: Right,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := (&DefaultStrategy{}).NextDirection(tt.frame)
			if err != nil {
				t.Fatalf("NextDirection: %v", err)
			}
			if got != tt.want {
				t.Fatalf("direction=%v want=%v\n%s", got, tt.want, dumpFrame(tt.frame))
			}
		})
	}
}

func TestLuaStrategy_Chaser(t *testing.T) {
	strategy, err := GetStrategy("chaser")
	if err != nil {
		t.Fatalf("GetStrategy: %v", err)
	}

	apple := Position{X: 1, Y: 4}
	tests := []struct {
		head Position
		want Direction
	}{
		{Position{X: 0, Y: 0}, Right},
		{Position{X: 3, Y: 0}, Left},
		{Position{X: 1, Y: 0}, Up},
		{Position{X: 1, Y: 5}, Down},
	}
	for _, tt := range tests {
		frame := Frame{Head: Head{Position: tt.head, Facing: Up}, Apple: &apple, Width: 6, Height: 6}
		got, err := strategy.NextDirection(frame)
		if err != nil {
			t.Fatalf("NextDirection: %v", err)
		}
		if got != tt.want {
			t.Errorf("head %v: direction=%v want=%v", tt.head, got, tt.want)
		}
	}

	got, err := strategy.NextDirection(headOnly(0, 0, Up, 3, 3))
	if err != nil || got != NoDirection {
		t.Fatalf("without apple got=%v err=%v, want no direction", got, err)
	}
}

func TestLuaStrategy_SeesFrame(t *testing.T) {
	strategy := &LuaStrategy{Name: "inspect", Definition: `
function getNextDirection(state)
	if state.width == 7 and state.height == 3 and #state.body == 2
		and state.body[2].x == 4 and state.head.facing == "left"
		and state.apple.distance == 3 then
		return "down"
	end
	return "up"
end
`}
	apple := Position{X: 0, Y: 1}
	frame := Frame{
		Head:   Head{Position: Position{X: 2, Y: 2}, Facing: Left},
		Body:   []Position{{X: 3, Y: 2}, {X: 4, Y: 2}},
		Apple:  &apple,
		Width:  7,
		Height: 3,
	}

	got, err := strategy.NextDirection(frame)
	if err != nil {
		t.Fatalf("NextDirection: %v", err)
	}
	if got != Down {
		t.Fatalf("direction=%v want=down, lua saw a different frame", got)
	}
}

func TestLuaStrategy_Errors(t *testing.T) {
	tests := []struct {
		name       string
		definition string
		unknownDir bool
	}{
		{"syntax", `function getNextDirection(state`, false},
		{"missing entry point", `function other() return "up" end`, false},
		{"runtime error", `function getNextDirection(state) return state.nope.x end`, false},
		{"wrong type", `function getNextDirection(state) return 4 end`, true},
		{"unknown name", `function getNextDirection(state) return "north" end`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strategy := &LuaStrategy{Name: tt.name, Definition: tt.definition}
			_, err := strategy.NextDirection(headOnly(1, 1, Up, 3, 3))
			if err == nil {
				t.Fatalf("expected an error")
			}
			if errors.Is(err, ErrUnknownDirection) != tt.unknownDir {
				t.Fatalf("err=%v, ErrUnknownDirection match want %v", err, tt.unknownDir)
			}
		})
	}
}

func TestGetStrategy(t *testing.T) {
	for _, name := range StrategyNames() {
		if _, err := GetStrategy(name); err != nil {
			t.Errorf("GetStrategy(%q): %v", name, err)
		}
	}
	if _, err := GetStrategy("nope"); err == nil {
		t.Fatalf("expected unknown strategy error")
	}

	idle, _ := GetStrategy("idle")
	if got, err := idle.NextDirection(headOnly(1, 1, Up, 3, 3)); err != nil || got != NoDirection {
		t.Fatalf("idle got=%v err=%v", got, err)
	}
}
