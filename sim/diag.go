package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

/*

diagnostics. read only, nothing here feeds back into a step.

*/

// CenterOfMass returns the mass weighted mean position.
func CenterOfMass(bodies []Body) mgl64.Vec2 {
	if len(bodies) == 0 {
		return mgl64.Vec2{}
	}
	xs, ys, ms := columns(bodies, func(b Body) (float64, float64) { return b.Pos[0], b.Pos[1] })
	return mgl64.Vec2{stat.Mean(xs, ms), stat.Mean(ys, ms)}
}

// Momentum returns the total linear momentum. Velocities are per-step
// deltas, so this is in the same units.
func Momentum(bodies []Body) mgl64.Vec2 {
	vx, vy, ms := columns(bodies, func(b Body) (float64, float64) { return b.Vel[0], b.Vel[1] })
	return mgl64.Vec2{floats.Dot(ms, vx), floats.Dot(ms, vy)}
}

// KineticEnergy returns the sum of m*v²/2.
func KineticEnergy(bodies []Body) float64 {
	v2 := make([]float64, len(bodies))
	ms := make([]float64, len(bodies))
	for i, b := range bodies {
		v2[i] = b.Vel.Dot(b.Vel)
		ms[i] = b.Mass
	}
	return 0.5 * floats.Dot(ms, v2)
}

// Finite reports whether every position and velocity is a finite number.
// Coincident bodies make a step produce NaN, which then spreads to every
// other body on the next step.
func Finite(bodies []Body) bool {
	for _, b := range bodies {
		for _, v := range [...]float64{b.Pos[0], b.Pos[1], b.Vel[0], b.Vel[1]} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}

func columns(bodies []Body, pick func(Body) (float64, float64)) (xs, ys, ms []float64) {
	xs = make([]float64, len(bodies))
	ys = make([]float64, len(bodies))
	ms = make([]float64, len(bodies))
	for i, b := range bodies {
		xs[i], ys[i] = pick(b)
		ms[i] = b.Mass
	}
	return
}
