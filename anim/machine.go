package anim

import "math"

// Tuning holds the thresholds used to read physics signals.
type Tuning struct {
	WalkThreshold  float64
	FacingDeadZone float64
}

func DefaultTuning() Tuning {
	return Tuning{WalkThreshold: 10, FacingDeadZone: 5}
}

// Snapshot is a read-only copy of the machine's observable state.
type Snapshot struct {
	State      State
	Frame      int
	Elapsed    float64
	Playing    bool
	FacingLeft bool
}

// Machine is the pose state machine for one actor.
type Machine struct {
	clips  ClipSet
	tuning Tuning

	state      State
	frame      int
	elapsed    float64
	playing    bool
	facingLeft bool
}

// NewMachine starts in Idle, facing right.
func NewMachine(clips ClipSet, tuning Tuning) *Machine {
	return &Machine{
		clips:   clips,
		tuning:  tuning,
		state:   Idle,
		playing: true,
	}
}

// Snapshot returns the current state.
func (m *Machine) Snapshot() Snapshot {
	if m == nil {
		return Snapshot{}
	}
	return Snapshot{
		State:      m.state,
		Frame:      m.frame,
		Elapsed:    m.elapsed,
		Playing:    m.playing,
		FacingLeft: m.facingLeft,
	}
}

func (m *Machine) State() State {
	if m == nil {
		return Idle
	}
	return m.state
}

func (m *Machine) FacingLeft() bool {
	return m != nil && m.facingLeft
}

// Tuning returns the active thresholds.
func (m *Machine) Tuning() Tuning {
	if m == nil {
		return Tuning{}
	}
	return m.tuning
}

// SetTuning replaces the thresholds.
func (m *Machine) SetTuning(t Tuning) {
	if m == nil {
		return
	}
	m.tuning = t
}

// SetClips swaps the clip set, restarting the active clip if the current
// frame no longer exists in it.
func (m *Machine) SetClips(clips ClipSet) {
	if m == nil {
		return
	}
	m.clips = clips
	if c, ok := m.clips.Get(m.state); !ok || m.frame >= c.FrameCount() {
		m.restart()
	}
}

// Clip returns the active clip.
func (m *Machine) Clip() (*Clip, bool) {
	if m == nil {
		return nil, false
	}
	return m.clips.Get(m.state)
}

// Update reads the post-step signals and advances the frame timer.
func (m *Machine) Update(grounded bool, vx, dt float64) {
	m.Observe(grounded, vx)
	m.Advance(dt)
}

// Observe updates facing and the active pose. It reports whether the pose
// changed.
func (m *Machine) Observe(grounded bool, vx float64) bool {
	if m == nil {
		return false
	}
	if math.Abs(vx) > m.tuning.FacingDeadZone {
		m.facingLeft = vx < 0
	}
	return m.SetState(Select(grounded, vx, m.tuning.WalkThreshold))
}

// SetState enters s. Re-entering the active pose is a no-op.
func (m *Machine) SetState(s State) bool {
	if m == nil || s == m.state {
		return false
	}
	m.state = s
	m.restart()
	return true
}

func (m *Machine) restart() {
	m.frame = 0
	m.elapsed = 0
	m.playing = true
}

// Advance moves the frame timer forward by dt seconds. Non-looping clips
// hold their last frame and stop.
func (m *Machine) Advance(dt float64) {
	if m == nil || !m.playing || dt <= 0 {
		return
	}
	clip, ok := m.clips.Get(m.state)
	if !ok || !clip.Playable() {
		return
	}

	m.elapsed += dt
	for m.elapsed >= clip.FrameDuration {
		m.elapsed -= clip.FrameDuration
		m.frame++
		if m.frame < clip.FrameCount() {
			continue
		}
		if clip.Loop {
			m.frame = 0
			continue
		}
		m.frame = clip.FrameCount() - 1
		m.elapsed = 0
		m.playing = false
		return
	}
}

// CurrentFrame returns the sheet region to draw. ok is false when there is
// nothing to draw.
func (m *Machine) CurrentFrame() (Frame, bool) {
	if m == nil {
		return Frame{}, false
	}
	clip, ok := m.clips.Get(m.state)
	if !ok || m.frame < 0 || m.frame >= clip.FrameCount() {
		return Frame{}, false
	}
	return clip.Frames[m.frame], true
}
