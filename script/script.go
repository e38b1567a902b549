// Package script drives player intent from a tengo program, for headless
// runs and reproducible demos.
//
// The program runs once per frame. Before each run the globals frame
// (1-based), left, right, jump and spawns are reset; the program assigns the
// ones it wants. spawns is an array of [x, y] pairs in physics space.
package script

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/controller"
	"github.com/milk9111/platformer/prefabs"
)

// Source is a system.IntentSource and system.SpawnSource backed by a
// compiled script.
type Source struct {
	name     string
	compiled *tengo.Compiled
	frame    int64
	spawns   []cp.Vector
	err      error
}

// Compile prepares src for per-frame execution.
func Compile(name string, src []byte) (*Source, error) {
	s := tengo.NewScript(src)
	_ = s.Add("frame", int64(0))
	_ = s.Add("left", false)
	_ = s.Add("right", false)
	_ = s.Add("jump", false)
	_ = s.Add("spawns", []interface{}{})
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile %s: %w", name, err)
	}
	return &Source{name: name, compiled: compiled}, nil
}

// Load compiles a script from the prefab scripts directory.
func Load(name string) (*Source, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("script: load %s: %w", name, err)
	}
	return Compile(name, src)
}

// Intent runs the script for the next frame. After the first failure the
// source stops running and reports a zero intent; see Err.
func (s *Source) Intent() controller.Intent {
	if s == nil || s.compiled == nil || s.err != nil {
		return controller.Intent{}
	}
	s.frame++
	s.spawns = nil

	if err := s.reset(); err != nil {
		s.err = err
		return controller.Intent{}
	}
	if err := s.run(); err != nil {
		s.err = err
		return controller.Intent{}
	}

	spawns, err := readSpawns(s.compiled.Get("spawns"))
	if err != nil {
		s.err = fmt.Errorf("script: %s frame %d: %w", s.name, s.frame, err)
		return controller.Intent{}
	}
	s.spawns = spawns

	return controller.Intent{
		Left:  s.compiled.Get("left").Bool(),
		Right: s.compiled.Get("right").Bool(),
		Jump:  s.compiled.Get("jump").Bool(),
	}
}

// Spawns returns the box requests made by the last run.
func (s *Source) Spawns() []cp.Vector {
	if s == nil {
		return nil
	}
	out := s.spawns
	s.spawns = nil
	return out
}

// Frame returns the number of runs so far.
func (s *Source) Frame() int64 {
	if s == nil {
		return 0
	}
	return s.frame
}

// Err returns the first run failure.
func (s *Source) Err() error {
	if s == nil {
		return nil
	}
	return s.err
}

// run executes one frame. tengo panics on some runtime faults, such as
// integer division by zero; those come back as errors.
func (s *Source) run() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("script: run %s frame %d: panic: %v", s.name, s.frame, r)
		}
	}()
	if err := s.compiled.Run(); err != nil {
		return fmt.Errorf("script: run %s frame %d: %w", s.name, s.frame, err)
	}
	return nil
}

func (s *Source) reset() error {
	values := map[string]interface{}{
		"frame":  s.frame,
		"left":   false,
		"right":  false,
		"jump":   false,
		"spawns": []interface{}{},
	}
	for name, v := range values {
		if err := s.compiled.Set(name, v); err != nil {
			return fmt.Errorf("script: set %s: %w", name, err)
		}
	}
	return nil
}

func readSpawns(v *tengo.Variable) ([]cp.Vector, error) {
	if v == nil || v.IsUndefined() {
		return nil, nil
	}
	raw, ok := v.Value().([]interface{})
	if !ok {
		return nil, fmt.Errorf("spawns must be an array, got %s", v.ValueType())
	}
	out := make([]cp.Vector, 0, len(raw))
	for i, item := range raw {
		pair, ok := item.([]interface{})
		if !ok || len(pair) != 2 {
			return nil, fmt.Errorf("spawns[%d] must be [x, y]", i)
		}
		x, okX := toFloat(pair[0])
		y, okY := toFloat(pair[1])
		if !okX || !okY {
			return nil, fmt.Errorf("spawns[%d] must hold numbers", i)
		}
		out = append(out, cp.Vector{X: x, Y: y})
	}
	return out, nil
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}
