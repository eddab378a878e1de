package game

import (
	"fmt"
	"sort"
)

// Strategy picks the player input for the next tick. Strategies only feed
// Advance, they never change a frame themselves.
type Strategy interface {
	NextDirection(frame Frame) (Direction, error)
}

var strategies = map[string]func() Strategy{
	"default": func() Strategy { return &DefaultStrategy{} },
	"chaser":  func() Strategy { return &LuaStrategy{Name: "chaser", Definition: appleChaserScript} },
	"idle":    func() Strategy { return &LuaStrategy{Name: "idle", Definition: idleScript} },
}

func GetStrategy(name string) (Strategy, error) {
	newStrategy, ok := strategies[name]
	if !ok {
		return nil, fmt.Errorf("strategy %q not found", name)
	}
	return newStrategy(), nil
}

func StrategyNames() []string {
	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
