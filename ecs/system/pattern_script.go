package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
	"github.com/mbellows/notestrike/prefabs"
)

// PatternScript is a tengo-scripted boss movement pattern. The script
// defines `pick_target(bx, by, px, py, tick)` returning a {x, y} map, and
// may set a global `interval` (ticks between target refreshes).
type PatternScript struct {
	path     string
	compiled *tengo.Compiled
	interval int
}

const patternDispatchScript = `
__out = pick_target(__boss_x, __boss_y, __player_x, __player_y, __tick)
`

// LoadPatternScript compiles a movement-pattern script from
// prefabs/scripts/.
func LoadPatternScript(name string) (*PatternScript, error) {
	scriptBytes, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, err
	}

	src := string(scriptBytes) + "\n" + patternDispatchScript
	script := tengo.NewScript([]byte(src))
	_ = script.Add("__boss_x", 0.0)
	_ = script.Add("__boss_y", 0.0)
	_ = script.Add("__player_x", 0.0)
	_ = script.Add("__player_y", 0.0)
	_ = script.Add("__tick", int64(0))
	_ = script.Add("__out", map[string]any{})

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("pattern script %s: %w", name, err)
	}

	ps := &PatternScript{path: name, compiled: compiled, interval: 15}

	// One dry run resolves the optional `interval` global and surfaces
	// script errors at load time instead of mid-fight.
	if err := compiled.Run(); err != nil {
		return nil, fmt.Errorf("pattern script %s: %w", name, err)
	}
	if compiled.IsDefined("interval") {
		if n, ok := toFloat(compiled.Get("interval").Value()); ok && n >= 1 {
			ps.interval = int(n)
		}
	}

	return ps, nil
}

// Interval returns how many ticks to hold a picked target.
func (ps *PatternScript) Interval() int {
	if ps == nil || ps.interval < 1 {
		return 15
	}
	return ps.interval
}

// PickTarget asks the script for the boss's next destination.
func (ps *PatternScript) PickTarget(bossPos, playerPos cp.Vector, tick uint64) (cp.Vector, error) {
	if ps == nil || ps.compiled == nil {
		return cp.Vector{}, fmt.Errorf("nil pattern script")
	}
	if err := ps.compiled.Set("__boss_x", bossPos.X); err != nil {
		return cp.Vector{}, err
	}
	if err := ps.compiled.Set("__boss_y", bossPos.Y); err != nil {
		return cp.Vector{}, err
	}
	if err := ps.compiled.Set("__player_x", playerPos.X); err != nil {
		return cp.Vector{}, err
	}
	if err := ps.compiled.Set("__player_y", playerPos.Y); err != nil {
		return cp.Vector{}, err
	}
	if err := ps.compiled.Set("__tick", int64(tick)); err != nil {
		return cp.Vector{}, err
	}
	if err := ps.compiled.Run(); err != nil {
		return cp.Vector{}, err
	}

	out := ps.compiled.Get("__out")
	if out == nil || out.IsUndefined() {
		return cp.Vector{}, fmt.Errorf("pattern script %s: pick_target returned nothing", ps.path)
	}
	m, ok := out.Value().(map[string]any)
	if !ok {
		return cp.Vector{}, fmt.Errorf("pattern script %s: pick_target must return a map", ps.path)
	}
	x, okX := toFloat(m["x"])
	y, okY := toFloat(m["y"])
	if !okX || !okY {
		return cp.Vector{}, fmt.Errorf("pattern script %s: pick_target map needs numeric x and y", ps.path)
	}
	return cp.Vector{X: x, Y: y}, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
