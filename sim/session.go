package sim

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// State is the session mode.
type State uint8

// session states
const (
	Editing State = iota
	Running
)

func (s State) String() string {
	switch s {
	case Editing:
		return "editing"
	case Running:
		return "running"
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// MinRunBodies is the smallest collection StartRun accepts.
const MinRunBodies = 2

// Session couples a Store with the simulation parameters and the
// editing/running state machine. While editing, bodies and parameters may be
// changed freely. A run snapshots the bodies, advances them one Tick at a
// time and EndRun puts the snapshot back, discarding everything the run did.
//
// A Session is driven by a single caller (a render loop) and is not safe for
// concurrent use.
type Session struct {
	store    *Store
	params   Params
	state    State
	elapsed  float64
	ticks    int
	snapshot []Body
}

// NewSession returns a session in the editing state with an empty store.
// p gets the same floors as the setters.
func NewSession(p Params) *Session {
	p.MinSeparation = floor(p.MinSeparation, 0)
	p.TimeStep = floor(p.TimeStep, 0)
	return &Session{
		store:  NewStore(),
		params: p,
	}
}

/*

queries

*/

// State returns the current mode.
func (s *Session) State() State { return s.state }

// Params returns the simulation parameters.
func (s *Session) Params() Params { return s.params }

// Elapsed returns the simulated seconds since StartRun. Zero while editing.
func (s *Session) Elapsed() float64 { return s.elapsed }

// Ticks returns the number of ticks in the current run.
func (s *Session) Ticks() int { return s.ticks }

// Len returns the number of bodies.
func (s *Session) Len() int { return s.store.Len() }

// Selected returns the index of the body being edited.
func (s *Session) Selected() int { return s.store.Selected() }

// Body returns a copy of the body at i.
func (s *Session) Body(i int) (Body, error) { return s.store.Body(i) }

// Bodies returns a copy of the live collection.
func (s *Session) Bodies() []Body { return s.store.Bodies() }

// Pick returns the body under p.
func (s *Session) Pick(p mgl64.Vec2) (int, bool) { return s.store.Pick(p) }

/*

editing commands

*/

// New appends a default body and selects it.
func (s *Session) New() (int, error) {
	if err := s.editing(); err != nil {
		return 0, err
	}
	return s.store.New(), nil
}

// Duplicate appends a copy of the body at i and selects it.
func (s *Session) Duplicate(i int) (int, error) {
	if err := s.editing(); err != nil {
		return 0, err
	}
	return s.store.Duplicate(i)
}

// Delete removes the body at i.
func (s *Session) Delete(i int) error {
	if err := s.editing(); err != nil {
		return err
	}
	return s.store.Delete(i)
}

// Clear removes all bodies.
func (s *Session) Clear() error {
	if err := s.editing(); err != nil {
		return err
	}
	s.store.Clear()
	return nil
}

// Select makes i the body being edited.
func (s *Session) Select(i int) error {
	if err := s.editing(); err != nil {
		return err
	}
	return s.store.Select(i)
}

// Edit sets one numeric field of the body at i.
func (s *Session) Edit(i int, f Field, v float64) error {
	if err := s.editing(); err != nil {
		return err
	}
	return s.store.Edit(i, f, v)
}

// SetColor sets the display color of the body at i.
func (s *Session) SetColor(i int, c color.RGBA) error {
	if err := s.editing(); err != nil {
		return err
	}
	return s.store.SetColor(i, c)
}

// SetGravity sets the gravitational constant.
func (s *Session) SetGravity(g float64) error {
	if err := s.editing(); err != nil {
		return err
	}
	s.params.G = g
	return nil
}

// SetMinSeparation sets the softening floor. Negative values become 0.
func (s *Session) SetMinSeparation(d float64) error {
	if err := s.editing(); err != nil {
		return err
	}
	s.params.MinSeparation = floor(d, 0)
	return nil
}

// SetTimeStep sets the seconds advanced per tick. Negative values become 0,
// which freezes a run.
func (s *Session) SetTimeStep(dt float64) error {
	if err := s.editing(); err != nil {
		return err
	}
	s.params.TimeStep = floor(dt, 0)
	return nil
}

/*

run control

*/

// StartRun snapshots the bodies and switches to running. It is refused with
// ErrTooFewBodies, leaving the session editing, when there are fewer than
// MinRunBodies bodies.
func (s *Session) StartRun() error {
	if err := s.editing(); err != nil {
		return err
	}
	if n := s.store.Len(); n < MinRunBodies {
		return fmt.Errorf("%w: have %d", ErrTooFewBodies, n)
	}
	s.snapshot = s.store.Bodies()
	s.elapsed = 0
	s.ticks = 0
	s.state = Running
	return nil
}

// Tick advances the run by one time step.
func (s *Session) Tick() error {
	if s.state != Running {
		return ErrNotRunning
	}
	s.elapsed += s.params.TimeStep
	s.ticks++
	Step(s.store.bodies, s.params)
	return nil
}

// EndRun restores the bodies captured by StartRun and switches back to
// editing. The elapsed time is discarded.
func (s *Session) EndRun() error {
	if s.state != Running {
		return ErrNotRunning
	}
	s.store.replace(s.snapshot)
	s.snapshot = nil
	s.elapsed = 0
	s.ticks = 0
	s.state = Editing
	return nil
}

func (s *Session) editing() error {
	if s.state != Editing {
		return ErrRunning
	}
	return nil
}
