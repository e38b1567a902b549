package anim

import (
	"errors"
	"image"
	"math"
	"testing"
)

func frames(n int) []Frame {
	out := make([]Frame, n)
	for i := range out {
		out[i] = image.Rect(i*32, 32, i*32+32, 64)
	}
	return out
}

func testClips() ClipSet {
	return ClipSet{
		Idle: {Name: "idle", Frames: frames(1), FrameDuration: 1.0, Loop: true},
		Walk: {Name: "walk", Frames: frames(4), FrameDuration: 0.15, Loop: true},
		Jump: {Name: "jump", Frames: frames(3), FrameDuration: 0.1, Loop: false},
	}
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name     string
		grounded bool
		vx       float64
		want     State
	}{
		{"airborne_fast", false, 300, Jump},
		{"airborne_still", false, 0, Jump},
		{"walk_right", true, 15, Walk},
		{"walk_left", true, -15, Walk},
		{"idle_slow", true, 2, Idle},
		{"idle_at_threshold", true, 10, Idle},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Select(tc.grounded, tc.vx, 10); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestParseState(t *testing.T) {
	for _, s := range States {
		got, ok := ParseState(s.String())
		if !ok || got != s {
			t.Fatalf("round trip failed for %s", s)
		}
	}
	if _, ok := ParseState("run"); ok {
		t.Fatalf("expected unknown name to fail")
	}
}

func TestMachineEnterResetsTiming(t *testing.T) {
	m := NewMachine(testClips(), DefaultTuning())
	if s := m.Snapshot(); s.State != Idle || !s.Playing || s.FacingLeft {
		t.Fatalf("unexpected initial state %+v", s)
	}

	m.Update(true, 20, 0.2)
	s := m.Snapshot()
	if s.State != Walk || s.Frame != 1 || math.Abs(s.Elapsed-0.05) > 1e-9 {
		t.Fatalf("expected walk frame 1 elapsed 0.05, got %+v", s)
	}

	// same pose does not restart
	if m.Observe(true, 30) {
		t.Fatalf("re-entering walk must not report a change")
	}
	if m.Snapshot().Frame != 1 {
		t.Fatalf("re-entering walk must not reset the frame")
	}

	if !m.Observe(false, 30) {
		t.Fatalf("expected transition to jump")
	}
	s = m.Snapshot()
	if s.State != Jump || s.Frame != 0 || s.Elapsed != 0 || !s.Playing {
		t.Fatalf("expected fresh jump clip, got %+v", s)
	}
}

func TestAdvanceLoopingWraps(t *testing.T) {
	m := NewMachine(testClips(), DefaultTuning())
	m.SetState(Walk)
	for i := 0; i < 4; i++ {
		m.Advance(0.15)
	}
	s := m.Snapshot()
	if s.Frame != 0 || !s.Playing {
		t.Fatalf("expected wrap to frame 0 while playing, got %+v", s)
	}
	if s.Elapsed < 0 || s.Elapsed >= 0.15 {
		t.Fatalf("elapsed out of range: %v", s.Elapsed)
	}

	m.Advance(0.15*5 + 0.01)
	if s := m.Snapshot(); s.Frame != 1 {
		t.Fatalf("expected frame 1 after five more frames, got %d", s.Frame)
	}
}

func TestAdvanceNonLoopingHolds(t *testing.T) {
	m := NewMachine(testClips(), DefaultTuning())
	m.SetState(Jump)

	m.Advance(0.1)
	m.Advance(0.1)
	if s := m.Snapshot(); s.Frame != 2 || !s.Playing {
		t.Fatalf("expected last frame still playing, got %+v", s)
	}
	m.Advance(0.1)
	s := m.Snapshot()
	if s.Frame != 2 || s.Playing {
		t.Fatalf("expected held last frame and stopped, got %+v", s)
	}
	m.Advance(10)
	if got := m.Snapshot(); got != s {
		t.Fatalf("stopped clip must not advance: %+v -> %+v", s, got)
	}

	// leaving and re-entering restarts playback
	m.SetState(Idle)
	m.SetState(Jump)
	if s := m.Snapshot(); s.Frame != 0 || !s.Playing {
		t.Fatalf("expected restart, got %+v", s)
	}
}

func TestFacingDeadZone(t *testing.T) {
	tests := []struct {
		name string
		vxs  []float64
		want bool
	}{
		{"starts_right", nil, false},
		{"turn_left", []float64{-6}, true},
		{"left_then_jitter", []float64{-20, 3, -2, 4.9}, true},
		{"left_then_right", []float64{-20, 5.1}, false},
		{"within_dead_zone", []float64{-5}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMachine(testClips(), DefaultTuning())
			for _, vx := range tc.vxs {
				m.Update(true, vx, 1.0/60.0)
			}
			if m.FacingLeft() != tc.want {
				t.Fatalf("expected facingLeft=%v, got %v", tc.want, m.FacingLeft())
			}
		})
	}
}

func TestDegenerateClipsAreNoOps(t *testing.T) {
	clips := ClipSet{
		Idle: {Name: "idle"},
		Walk: {Name: "walk", Frames: frames(2), FrameDuration: 0},
	}
	m := NewMachine(clips, DefaultTuning())
	m.Advance(1)
	if _, ok := m.CurrentFrame(); ok {
		t.Fatalf("zero-frame clip must have nothing to draw")
	}
	if s := m.Snapshot(); s.Frame != 0 || s.Elapsed != 0 {
		t.Fatalf("zero-frame clip must not advance, got %+v", s)
	}

	m.SetState(Walk)
	m.Advance(1)
	if s := m.Snapshot(); s.Frame != 0 || s.Elapsed != 0 {
		t.Fatalf("zero-duration clip must not advance, got %+v", s)
	}

	m.SetState(Jump)
	m.Advance(1)
	if _, ok := m.CurrentFrame(); ok {
		t.Fatalf("missing clip must have nothing to draw")
	}

	var nilMachine *Machine
	nilMachine.Update(true, 100, 1)
	if _, ok := nilMachine.CurrentFrame(); ok {
		t.Fatalf("nil machine must have nothing to draw")
	}
}

func TestCurrentFrame(t *testing.T) {
	m := NewMachine(testClips(), DefaultTuning())
	m.SetState(Walk)
	m.Advance(0.31)
	f, ok := m.CurrentFrame()
	if !ok || f != image.Rect(64, 32, 96, 64) {
		t.Fatalf("expected third walk frame, got %v ok=%v", f, ok)
	}
}

func TestSetClipsRestartsWhenFrameMissing(t *testing.T) {
	m := NewMachine(testClips(), DefaultTuning())
	m.SetState(Walk)
	m.Advance(0.5)
	if m.Snapshot().Frame != 3 {
		t.Fatalf("expected frame 3, got %d", m.Snapshot().Frame)
	}
	clips := testClips()
	clips[Walk] = &Clip{Name: "walk", Frames: frames(2), FrameDuration: 0.2, Loop: true}
	m.SetClips(clips)
	if s := m.Snapshot(); s.Frame != 0 || s.State != Walk {
		t.Fatalf("expected restart on shorter clip, got %+v", s)
	}
}

func TestClipSetValidate(t *testing.T) {
	if err := testClips().Validate(); err != nil {
		t.Fatalf("expected valid clip set, got %v", err)
	}
	bad := ClipSet{
		Idle: {Frames: frames(1), FrameDuration: 1},
		Walk: {Frames: nil, FrameDuration: 1},
		Jump: {Frames: frames(1), FrameDuration: -1},
	}
	err := bad.Validate()
	if !errors.Is(err, ErrEmptyClip) || !errors.Is(err, ErrInvalidTiming) {
		t.Fatalf("expected both clip errors, got %v", err)
	}
	delete(bad, Idle)
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected error for missing clip")
	}
}
