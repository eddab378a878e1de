package game

import (
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"
)

const luaEntryPoint = "getNextDirection"

// LuaStrategy runs a script that defines getNextDirection(state) and returns
// "up", "down", "left", "right", "" or nil.
type LuaStrategy struct {
	Name       string
	Definition string
}

const appleChaserScript = `
function getNextDirection(state)
	local head = state.head
	local apple = state.apple
	if apple == nil then
		return ""
	end
	if apple.x > head.x then
		return "right"
	elseif apple.x < head.x then
		return "left"
	elseif apple.y > head.y then
		return "up"
	elseif apple.y < head.y then
		return "down"
	end
	return ""
end
`

const idleScript = `
function getNextDirection(state)
	return nil
end
`

func NewLuaStrategyFromFile(path string) (*LuaStrategy, error) {
	definition, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lua strategy %s: %w", path, err)
	}
	return &LuaStrategy{Name: path, Definition: string(definition)}, nil
}

func (s *LuaStrategy) NextDirection(frame Frame) (Direction, error) {
	luaState := lua.NewState()
	defer luaState.Close()

	if err := luaState.DoString(s.Definition); err != nil {
		return NoDirection, fmt.Errorf("could not parse lua strategy %q: %w", s.Name, err)
	}

	err := luaState.CallByParam(lua.P{
		Fn:      luaState.GetGlobal(luaEntryPoint),
		NRet:    1,
		Protect: true,
	}, frameToLuaTable(luaState, frame))
	if err != nil {
		return NoDirection, fmt.Errorf("could not execute lua strategy %q: %w", s.Name, err)
	}

	luaReturn := luaState.Get(-1)
	luaState.Pop(1)

	switch value := luaReturn.(type) {
	case *lua.LNilType:
		return NoDirection, nil
	case lua.LString:
		return ParseDirection(string(value))
	default:
		return NoDirection, fmt.Errorf("%w: lua strategy %q returned %s, expected string", ErrUnknownDirection, s.Name, luaReturn.Type().String())
	}
}

func frameToLuaTable(luaState *lua.LState, frame Frame) *lua.LTable {
	state := luaState.NewTable()

	head := positionToLuaTable(luaState, frame.Head.Position)
	head.RawSetString("facing", lua.LString(frame.Head.Facing.String()))
	state.RawSetString("head", head)

	body := luaState.NewTable()
	for _, segment := range frame.Body {
		body.Append(positionToLuaTable(luaState, segment))
	}
	state.RawSetString("body", body)

	if frame.Apple != nil {
		apple := positionToLuaTable(luaState, *frame.Apple)
		apple.RawSetString("distance", lua.LNumber(GetManhattanDistance(frame.Head.Position, *frame.Apple)))
		state.RawSetString("apple", apple)
	}

	state.RawSetString("width", lua.LNumber(frame.Width))
	state.RawSetString("height", lua.LNumber(frame.Height))
	return state
}

func positionToLuaTable(luaState *lua.LState, p Position) *lua.LTable {
	tbl := luaState.NewTable()
	tbl.RawSetString("x", lua.LNumber(p.X))
	tbl.RawSetString("y", lua.LNumber(p.Y))
	return tbl
}
