package ecs

// System updates a world once per frame. dt is the bounded step in seconds.
type System interface {
	Update(w *World, dt float64)
}

// FrameObserver is notified after every scheduler pass.
type FrameObserver interface {
	AfterFrame(w *World, frame uint64, dt float64)
}

// Scheduler runs systems in a fixed order.
type Scheduler struct {
	systems   []System
	observers []FrameObserver
	frame     uint64
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Observe registers an observer that runs after each frame.
func (s *Scheduler) Observe(o FrameObserver) {
	if o == nil {
		return
	}
	s.observers = append(s.observers, o)
}

// Update runs every system once, then the observers.
func (s *Scheduler) Update(w *World, dt float64) {
	if s == nil || w == nil {
		return
	}
	s.frame++
	for _, system := range s.systems {
		system.Update(w, dt)
	}
	for _, o := range s.observers {
		o.AfterFrame(w, s.frame, dt)
	}
}

// Frame returns the number of completed passes.
func (s *Scheduler) Frame() uint64 {
	if s == nil {
		return 0
	}
	return s.frame
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
