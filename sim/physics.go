package sim

import "math"

/*

physics section

*/

// Params are the global physical parameters shared by every step of a run.
type Params struct {
	G             float64 // gravitational constant
	MinSeparation float64 // softening floor, squared before use
	TimeStep      float64 // seconds advanced per step
}

// default parameters
const (
	DefaultG             = 5.0
	DefaultMinSeparation = 50.0
	DefaultTimeStep      = 1.0
)

// DefaultParams returns the parameters a new session starts with.
func DefaultParams() Params {
	return Params{
		G:             DefaultG,
		MinSeparation: DefaultMinSeparation,
		TimeStep:      DefaultTimeStep,
	}
}

// Step advances bodies by one time step with semi-implicit Euler.
//
// Every body first receives a velocity delta from every other body, all
// computed from the positions at the start of the step. Only then are
// positions advanced with the updated velocities. Masses must be positive.
// Coincident bodies yield NaN velocities, which are not corrected.
func Step(bodies []Body, p Params) {
	// 1) velocities, positions are read only
	for i := range bodies {
		for j := range bodies {
			if i == j {
				continue
			}
			dv := pull(&bodies[i], &bodies[j], p)
			bodies[i].Vel[0] -= dv[0]
			bodies[i].Vel[1] -= dv[1]
		}
	}

	// 2) positions
	for i := range bodies {
		bodies[i].Pos[0] += bodies[i].Vel[0] * p.TimeStep
		bodies[i].Pos[1] += bodies[i].Vel[1] * p.TimeStep
	}
}

// pull returns the amount to subtract from a's velocity due to b.
//
// The direction is normalized by the true separation, while the force
// magnitude uses the squared separation raised to the softening floor.
// Inside the floor the two disagree, and that mismatch is the model.
// The result is a per-step velocity delta: time step is already applied.
func pull(a, b *Body, p Params) [2]float64 {
	dx := a.Pos[0] - b.Pos[0]
	dy := a.Pos[1] - b.Pos[1]

	r2 := dx*dx + dy*dy
	magnitude := math.Sqrt(r2) // before the floor

	if min2 := p.MinSeparation * p.MinSeparation; r2 < min2 {
		r2 = min2
	}

	k := (b.Mass * p.G) / r2
	return [2]float64{
		k * (dx / magnitude) * p.TimeStep,
		k * (dy / magnitude) * p.TimeStep,
	}
}
