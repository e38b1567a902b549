package anim

import (
	"errors"
	"fmt"
	"image"
)

var (
	ErrEmptyClip     = errors.New("anim: clip has no frames")
	ErrInvalidTiming = errors.New("anim: frame duration must be positive")
)

// Frame is a region of the sprite sheet.
type Frame = image.Rectangle

// Clip is an immutable, ordered frame sequence.
type Clip struct {
	Name          string
	Frames        []Frame
	FrameDuration float64 // seconds per frame
	Loop          bool
}

// FrameCount returns the number of frames.
func (c *Clip) FrameCount() int {
	if c == nil {
		return 0
	}
	return len(c.Frames)
}

// Playable reports whether the clip can be advanced and drawn.
func (c *Clip) Playable() bool {
	return c != nil && len(c.Frames) > 0 && c.FrameDuration > 0
}

// Validate returns an error describing why the clip is not playable.
func (c *Clip) Validate() error {
	if c == nil || len(c.Frames) == 0 {
		return ErrEmptyClip
	}
	if c.FrameDuration <= 0 {
		return ErrInvalidTiming
	}
	return nil
}

// ClipSet maps each pose to its clip.
type ClipSet map[State]*Clip

// Get returns the clip for s.
func (cs ClipSet) Get(s State) (*Clip, bool) {
	if cs == nil {
		return nil, false
	}
	c, ok := cs[s]
	return c, ok && c != nil
}

// Validate checks that every pose has a playable clip.
func (cs ClipSet) Validate() error {
	var errs []error
	for _, s := range States {
		c, ok := cs.Get(s)
		if !ok {
			errs = append(errs, fmt.Errorf("anim: no clip for %s", s))
			continue
		}
		if err := c.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("anim: clip %s: %w", s, err))
		}
	}
	return errors.Join(errs...)
}
