package controller

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/physics"
)

func probeOnly() GroundTuning {
	t := DefaultGroundTuning()
	t.GroundTolerance = 0
	return t
}

func TestOnGroundRisingShortCircuits(t *testing.T) {
	tests := []struct {
		name string
		vy   float64
		want bool
	}{
		{"rising_fast", 10.5, false},
		{"at_threshold", 10, true},
		{"falling", -200, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q := &fakeQuerier{hit: true}
			g := NewGroundResolver(q, DefaultGroundTuning())
			body := newFakeBody(cp.Vector{X: 0, Y: 75}, cp.Vector{X: 0, Y: tc.vy})
			if got := g.OnGround(body, nil); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			if !tc.want && q.calls != 0 {
				t.Fatalf("rising body must not query the world, got %d calls", q.calls)
			}
		})
	}
}

func TestOnGroundProbeGeometry(t *testing.T) {
	q := &fakeQuerier{}
	g := NewGroundResolver(q, probeOnly())
	body := newFakeBody(cp.Vector{X: 40, Y: 300}, cp.Vector{})
	if g.OnGround(body, nil) {
		t.Fatalf("expected not grounded on empty query")
	}
	if q.start != (cp.Vector{X: 40, Y: 275}) || q.end != (cp.Vector{X: 40, Y: 265}) {
		t.Fatalf("unexpected probe %v -> %v", q.start, q.end)
	}

	q.hit = true
	if !g.OnGround(body, nil) {
		t.Fatalf("expected grounded when probe hits")
	}
}

func TestOnGroundReferenceFallback(t *testing.T) {
	tests := []struct {
		name string
		y    float64
		want bool
	}{
		{"resting", 75, true},
		{"within_tolerance", 79.9, true},
		{"sunk_below", 60, true},
		{"above_tolerance", 81, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGroundResolver(&fakeQuerier{}, DefaultGroundTuning())
			body := newFakeBody(cp.Vector{X: 0, Y: tc.y}, cp.Vector{})
			if got := g.OnGround(body, nil); got != tc.want {
				t.Fatalf("expected %v at y=%v, got %v", tc.want, tc.y, got)
			}
		})
	}
}

func TestOnGroundAgainstSpace(t *testing.T) {
	pw := physics.NewWorld(physics.Config{Gravity: cp.Vector{Y: -980}})
	pw.AddGround(cp.Vector{X: 0, Y: 50}, cp.Vector{X: 800, Y: 50}, 0, 0.3)

	def := physics.BoxDef{Width: 50, Height: 50, Mass: 1, Friction: 0.4}

	def.Position = cp.Vector{X: 100, Y: 78}
	nearGround, nearShape, err := pw.AddBox(def)
	if err != nil {
		t.Fatalf("AddBox: %v", err)
	}
	def.Position = cp.Vector{X: 400, Y: 400}
	airborne, airShape, err := pw.AddBox(def)
	if err != nil {
		t.Fatalf("AddBox: %v", err)
	}
	def.Position = cp.Vector{X: 600, Y: 78}
	_, _, err = pw.AddBox(def)
	if err != nil {
		t.Fatalf("AddBox: %v", err)
	}
	def.Position = cp.Vector{X: 600, Y: 131}
	stacked, stackedShape, err := pw.AddBox(def)
	if err != nil {
		t.Fatalf("AddBox: %v", err)
	}

	g := NewGroundResolver(pw, probeOnly())
	if !g.OnGround(nearGround, nearShape) {
		t.Fatalf("expected box just above ground to be grounded")
	}
	if g.OnGround(airborne, airShape) {
		t.Fatalf("expected airborne box not grounded; own shape must be ignored")
	}
	if !g.OnGround(stacked, stackedShape) {
		t.Fatalf("expected box resting on another box to be grounded")
	}
}
