// Package sim implements a 2D gravitational n-body engine: a body store,
// a softened pairwise integrator and the edit/run session around them.
package sim

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Body is a point mass in the plane.
type Body struct {
	Mass   float64
	Radius float64 // rendering and hit-testing only
	Pos    mgl64.Vec2
	Vel    mgl64.Vec2
	Color  color.RGBA
}

// attributes of a body made by Store.New
const (
	DefaultMass   = 100.0
	DefaultRadius = 100.0
	DefaultX      = 500.0
	DefaultY      = 500.0
)

// DefaultBody returns the body appended by Store.New.
func DefaultBody() Body {
	return Body{
		Mass:   DefaultMass,
		Radius: DefaultRadius,
		Pos:    mgl64.Vec2{DefaultX, DefaultY},
		Color:  color.RGBA{0, 0, 0, 255},
	}
}

// contains reports whether p lies in the 1.5*radius square centered on the body.
func (b Body) contains(p mgl64.Vec2) bool {
	half := 0.75 * b.Radius
	return b.Pos.X()-half <= p.X() && p.X() <= b.Pos.X()+half &&
		b.Pos.Y()-half <= p.Y() && p.Y() <= b.Pos.Y()+half
}

func (b Body) String() string {
	return fmt.Sprintf("m: %.4f r: %.2f\np: [%.2f, %.2f]\nv: [%.4f, %.4f]\n",
		b.Mass, b.Radius, b.Pos.X(), b.Pos.Y(), b.Vel.X(), b.Vel.Y())
}

// Field names an editable numeric attribute of a body.
type Field uint8

// editable fields
const (
	Mass Field = iota
	Radius
	PosX
	PosY
	VelX
	VelY
)

var fieldNames = [...]string{"mass", "radius", "x", "y", "vx", "vy"}

func (f Field) String() string {
	if int(f) < len(fieldNames) {
		return fieldNames[f]
	}
	return fmt.Sprintf("field(%d)", uint8(f))
}

// floors applied at the editing boundary
const (
	MinMass     = 1.0
	MinRadius   = 1.0
	MinPosition = 0.0
)

// set writes v into field f, applying the field's floor.
func (b *Body) set(f Field, v float64) error {
	switch f {
	case Mass:
		b.Mass = floor(v, MinMass)
	case Radius:
		b.Radius = floor(v, MinRadius)
	case PosX:
		b.Pos[0] = floor(v, MinPosition)
	case PosY:
		b.Pos[1] = floor(v, MinPosition)
	case VelX:
		b.Vel[0] = v
	case VelY:
		b.Vel[1] = v
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, f)
	}
	return nil
}

// floor raises v to lo. NaN also becomes lo.
func floor(v, lo float64) float64 {
	if !(v >= lo) {
		return lo
	}
	return v
}
