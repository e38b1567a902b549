package prefabs

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/anim"
	"github.com/milk9111/platformer/controller"
	"gopkg.in/yaml.v3"
)

const (
	WorldFile  = "world.yaml"
	PlayerFile = "player.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type VectorSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v VectorSpec) Vector() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

type ClockSpec struct {
	Nominal float64 `yaml:"nominal"`
	Ceiling float64 `yaml:"ceiling"`
}

type GroundSpec struct {
	From     VectorSpec `yaml:"from"`
	To       VectorSpec `yaml:"to"`
	Radius   float64    `yaml:"radius"`
	Friction float64    `yaml:"friction"`
	// Height is the drawn band below the segment, in screen pixels.
	Height float64    `yaml:"height"`
	Color  *YAMLColor `yaml:"color"`
}

type BoxSpec struct {
	Width       float64    `yaml:"width"`
	Height      float64    `yaml:"height"`
	Mass        float64    `yaml:"mass"`
	Friction    float64    `yaml:"friction"`
	Color       *YAMLColor `yaml:"color"`
	TiltedColor *YAMLColor `yaml:"tilted_color"`
}

// WorldSpec describes the simulation space and its static scenery.
type WorldSpec struct {
	Name       string     `yaml:"name"`
	Gravity    VectorSpec `yaml:"gravity"`
	Iterations uint       `yaml:"iterations"`
	Clock      ClockSpec  `yaml:"clock"`
	Ground     GroundSpec `yaml:"ground"`
	Box        BoxSpec    `yaml:"box"`
	// MaxBoxes bounds every dynamic box, the player included.
	MaxBoxes   int        `yaml:"max_boxes"`
	Background *YAMLColor `yaml:"background"`
}

func LoadWorldSpec() (*WorldSpec, error) {
	spec, err := LoadSpec[WorldSpec](WorldFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type MovementSpec struct {
	SpinThreshold float64 `yaml:"spin_threshold"`
	SpinDamping   float64 `yaml:"spin_damping"`
	TiltLimit     float64 `yaml:"tilt_limit"`
	TiltDecay     float64 `yaml:"tilt_decay"`
	MoveForce     float64 `yaml:"move_force"`
	MaxSpeed      float64 `yaml:"max_speed"`
	IdleDamping   float64 `yaml:"idle_damping"`
	JumpImpulse   float64 `yaml:"jump_impulse"`
}

type GroundCheckSpec struct {
	RisingThreshold float64 `yaml:"rising_threshold"`
	ProbeDistance   float64 `yaml:"probe_distance"`
	HalfHeight      float64 `yaml:"half_height"`
	Reference       float64 `yaml:"reference"`
	Tolerance       float64 `yaml:"tolerance"`
}

type FrameSpec struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

type ClipSpec struct {
	Frames        []FrameSpec `yaml:"frames"`
	FrameDuration float64     `yaml:"frame_duration"`
	Loop          bool        `yaml:"loop"`
}

type AnimationSpec struct {
	WalkThreshold  float64             `yaml:"walk_threshold"`
	FacingDeadZone float64             `yaml:"facing_dead_zone"`
	Clips          map[string]ClipSpec `yaml:"clips"`
}

type SpriteSpec struct {
	Sheet string  `yaml:"sheet"`
	Scale float64 `yaml:"scale"`
}

// PlayerSpec describes the controlled box.
type PlayerSpec struct {
	Name      string          `yaml:"name"`
	Spawn     VectorSpec      `yaml:"spawn"`
	Collider  ColliderSpec    `yaml:"collider"`
	Mass      float64         `yaml:"mass"`
	Friction  float64         `yaml:"friction"`
	Movement  MovementSpec    `yaml:"movement"`
	Ground    GroundCheckSpec `yaml:"ground"`
	Animation AnimationSpec   `yaml:"animation"`
	Sprite    SpriteSpec      `yaml:"sprite"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec](PlayerFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

func (s *PlayerSpec) MoveTuning() controller.MoveTuning {
	m := s.Movement
	return controller.MoveTuning{
		SpinThreshold: m.SpinThreshold,
		SpinDamping:   m.SpinDamping,
		TiltLimit:     m.TiltLimit,
		TiltDecay:     m.TiltDecay,
		MoveForce:     m.MoveForce,
		MaxSpeed:      m.MaxSpeed,
		IdleDamping:   m.IdleDamping,
		JumpImpulse:   m.JumpImpulse,
	}
}

func (s *PlayerSpec) GroundTuning() controller.GroundTuning {
	g := s.Ground
	return controller.GroundTuning{
		RisingThreshold: g.RisingThreshold,
		ProbeDistance:   g.ProbeDistance,
		HalfHeight:      g.HalfHeight,
		GroundReference: g.Reference,
		GroundTolerance: g.Tolerance,
	}
}

func (s *PlayerSpec) AnimTuning() anim.Tuning {
	return anim.Tuning{
		WalkThreshold:  s.Animation.WalkThreshold,
		FacingDeadZone: s.Animation.FacingDeadZone,
	}
}

// ClipSet converts the clip table, keyed by pose name, into an anim.ClipSet.
// Unknown pose names are an error; so is a pose without a playable clip.
func (s *PlayerSpec) ClipSet() (anim.ClipSet, error) {
	clips := make(anim.ClipSet, len(s.Animation.Clips))
	var errs []error
	for name, cs := range s.Animation.Clips {
		state, ok := anim.ParseState(name)
		if !ok {
			errs = append(errs, fmt.Errorf("prefabs: unknown clip %q", name))
			continue
		}
		frames := make([]anim.Frame, 0, len(cs.Frames))
		for _, f := range cs.Frames {
			frames = append(frames, image.Rect(f.X, f.Y, f.X+f.W, f.Y+f.H))
		}
		clips[state] = &anim.Clip{
			Name:          name,
			Frames:        frames,
			FrameDuration: cs.FrameDuration,
			Loop:          cs.Loop,
		}
	}
	if err := clips.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("prefabs: %s clips: %w", s.Name, err)
	}
	return clips, nil
}

type YAMLColor struct {
	color.Color
}

// Or returns c, or fallback when c is unset.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
