package sim

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Store owns the body collection and the index of the body being edited.
// Collection order is insertion order.
//
// A Store is not safe for concurrent use.
type Store struct {
	bodies   []Body
	selected int
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Len returns the number of bodies.
func (s *Store) Len() int { return len(s.bodies) }

// Selected returns the selection index. It is 0 when the store is empty,
// which refers to no body.
func (s *Store) Selected() int { return s.selected }

// Body returns a copy of the body at i.
func (s *Store) Body(i int) (Body, error) {
	if err := s.check(i); err != nil {
		return Body{}, err
	}
	return s.bodies[i], nil
}

// Bodies returns a copy of the collection.
func (s *Store) Bodies() []Body {
	return clone(s.bodies)
}

// New appends a default body, selects it and returns its index.
func (s *Store) New() int {
	return s.push(DefaultBody())
}

// Duplicate appends a copy of the body at i, selects it and returns its index.
func (s *Store) Duplicate(i int) (int, error) {
	if err := s.check(i); err != nil {
		return 0, err
	}
	return s.push(s.bodies[i]), nil
}

// Delete removes the body at i. Afterwards the last body is selected, or
// index 0 if the store became empty. The relative position of the previous
// selection is intentionally not preserved.
func (s *Store) Delete(i int) error {
	if err := s.check(i); err != nil {
		return err
	}
	s.bodies = append(s.bodies[:i], s.bodies[i+1:]...)
	s.selected = 0
	if len(s.bodies) > 0 {
		s.selected = len(s.bodies) - 1
	}
	return nil
}

// Clear removes all bodies and resets the selection.
func (s *Store) Clear() {
	s.bodies = s.bodies[:0]
	s.selected = 0
}

// Select makes i the body being edited.
func (s *Store) Select(i int) error {
	if err := s.check(i); err != nil {
		return err
	}
	s.selected = i
	return nil
}

// Edit sets one numeric field of the body at i. Mass and radius are floored
// at 1, position coordinates at 0. Velocity is unconstrained.
func (s *Store) Edit(i int, f Field, v float64) error {
	if err := s.check(i); err != nil {
		return err
	}
	return s.bodies[i].set(f, v)
}

// SetColor sets the display color of the body at i.
func (s *Store) SetColor(i int, c color.RGBA) error {
	if err := s.check(i); err != nil {
		return err
	}
	s.bodies[i].Color = c
	return nil
}

// Pick returns the index of the body under point p. Bodies later in the
// collection are drawn on top, so the last hit wins.
func (s *Store) Pick(p mgl64.Vec2) (int, bool) {
	for i := len(s.bodies) - 1; i >= 0; i-- {
		if s.bodies[i].contains(p) {
			return i, true
		}
	}
	return 0, false
}

func (s *Store) push(b Body) int {
	s.bodies = append(s.bodies, b)
	s.selected = len(s.bodies) - 1
	return s.selected
}

func (s *Store) check(i int) error {
	if i < 0 || i >= len(s.bodies) {
		return fmt.Errorf("%w %d (have %d)", ErrNoBody, i, len(s.bodies))
	}
	return nil
}

// replace swaps in a new collection, leaving the selection alone.
func (s *Store) replace(bodies []Body) {
	s.bodies = bodies
}

func clone(bodies []Body) []Body {
	c := make([]Body, len(bodies))
	copy(c, bodies)
	return c
}
