package main

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/quillaja/nbody2d/sim"
)

/*

scenes. built only through session edit commands, the same way a user
clicking "new" and typing into fields would.

*/

// scene names
const (
	sceneBinary  = "binary"
	sceneRing    = "ring"
	sceneCluster = "cluster"
)

var palette = []color.RGBA{red, green, blue, yellow, purple, cyan, darkgray}

// buildScene populates an editing session. n is ignored by the binary scene.
func buildScene(s *sim.Session, name string, n int, view mgl64.Vec2, rng *rand.Rand) error {
	switch name {
	case sceneBinary:
		return binary(s)
	case sceneRing:
		return ring(s, n, view)
	case sceneCluster:
		return cluster(s, n, view, rng)
	}
	return fmt.Errorf("unknown scene %q", name)
}

type edit struct {
	f sim.Field
	v float64
}

// place adds a default body and applies edits to it.
func place(s *sim.Session, c color.RGBA, edits ...edit) error {
	i, err := s.New()
	if err != nil {
		return err
	}
	for _, e := range edits {
		if err := s.Edit(i, e.f, e.v); err != nil {
			return err
		}
	}
	return s.SetColor(i, c)
}

// two equal masses 200 apart, at rest.
func binary(s *sim.Session) error {
	if err := place(s, red, edit{sim.PosX, 400}, edit{sim.Radius, 20}); err != nil {
		return err
	}
	return place(s, blue, edit{sim.PosX, 600}, edit{sim.Radius, 20})
}

// n light bodies on a circle around a heavy center, each with the speed of a
// circular orbit around the center alone.
func ring(s *sim.Session, n int, view mgl64.Vec2) error {
	const (
		centerMass = 5000.0
		bodyMass   = 1.0
	)
	center := view.Mul(0.5)
	r := 0.35 * math.Min(view.X(), view.Y())
	if err := place(s, color.RGBA{0, 0, 0, 255},
		edit{sim.Mass, centerMass}, edit{sim.Radius, 30},
		edit{sim.PosX, center.X()}, edit{sim.PosY, center.Y()}); err != nil {
		return err
	}

	v := math.Sqrt(s.Params().G * centerMass / r)
	for k := 0; k < n; k++ {
		sin, cos := math.Sincos(2 * math.Pi * float64(k) / float64(n))
		err := place(s, palette[k%len(palette)],
			edit{sim.Mass, bodyMass}, edit{sim.Radius, 8},
			edit{sim.PosX, center.X() + r*cos}, edit{sim.PosY, center.Y() + r*sin},
			edit{sim.VelX, -sin * v}, edit{sim.VelY, cos * v})
		if err != nil {
			return err
		}
	}
	return nil
}

// n bodies normally distributed around the view center.
func cluster(s *sim.Session, n int, view mgl64.Vec2, rng *rand.Rand) error {
	const meanMass = 100.0
	center := view.Mul(0.5)
	spread := view.Mul(0.125)
	for k := 0; k < n; k++ {
		m := math.Abs(rng.NormFloat64()*30 + meanMass)
		err := place(s, palette[rng.Intn(len(palette))],
			edit{sim.Mass, m}, edit{sim.Radius, math.Sqrt(m)},
			edit{sim.PosX, rng.NormFloat64()*spread.X() + center.X()},
			edit{sim.PosY, rng.NormFloat64()*spread.Y() + center.Y()})
		if err != nil {
			return err
		}
	}
	return nil
}
