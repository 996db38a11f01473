package sim

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const eps = 1e-12

func pair(ax, bx float64) []Body {
	return []Body{
		{Mass: 100, Radius: 10, Pos: mgl64.Vec2{ax, 500}},
		{Mass: 100, Radius: 10, Pos: mgl64.Vec2{bx, 500}},
	}
}

func TestStepTwoBodyScenario(t *testing.T) {
	bodies := pair(400, 600)
	Step(bodies, DefaultParams())

	want := 100 * 5.0 / 40000 // 0.0125
	if got := bodies[0].Vel.X(); math.Abs(got-want) > eps {
		t.Fatalf("a.vx = %v, want %v", got, want)
	}
	if got := bodies[1].Vel.X(); math.Abs(got+want) > eps {
		t.Fatalf("b.vx = %v, want %v", got, -want)
	}
	if bodies[0].Vel.Y() != 0 || bodies[1].Vel.Y() != 0 {
		t.Fatalf("expected no y velocity, got %v and %v", bodies[0].Vel.Y(), bodies[1].Vel.Y())
	}
	if got := bodies[0].Pos.X(); math.Abs(got-(400+want)) > eps {
		t.Fatalf("a.x = %v, want %v", got, 400+want)
	}
	if got := bodies[1].Pos.X(); math.Abs(got-(600-want)) > eps {
		t.Fatalf("b.x = %v, want %v", got, 600-want)
	}
}

func TestStepZeroTimeStepIsNoop(t *testing.T) {
	bodies := []Body{
		{Mass: 10, Pos: mgl64.Vec2{10, 20}, Vel: mgl64.Vec2{1, -2}},
		{Mass: 300, Pos: mgl64.Vec2{200, 90}, Vel: mgl64.Vec2{-0.5, 0.25}},
		{Mass: 50, Pos: mgl64.Vec2{15, 400}},
	}
	before := clone(bodies)

	p := DefaultParams()
	p.TimeStep = 0
	Step(bodies, p)

	for i := range bodies {
		if bodies[i] != before[i] {
			t.Fatalf("body %d changed: got %v, want %v", i, bodies[i], before[i])
		}
	}
}

func TestStepEqualMassesOpposite(t *testing.T) {
	bodies := []Body{
		{Mass: 40, Pos: mgl64.Vec2{130, 250}},
		{Mass: 40, Pos: mgl64.Vec2{410, 75}},
	}
	Step(bodies, DefaultParams())

	a, b := bodies[0].Vel, bodies[1].Vel
	if a.X() != -b.X() || a.Y() != -b.Y() {
		t.Fatalf("deltas not opposite: a=%v b=%v", a, b)
	}
	// a is left of b, so it must be pulled right and up (towards smaller y)
	if a.X() <= 0 || a.Y() >= 0 {
		t.Fatalf("a pulled the wrong way: %v", a)
	}
}

func TestPullClampsInsideFloor(t *testing.T) {
	p := DefaultParams()
	at := pair(500, 500+p.MinSeparation)
	inside := pair(500, 520)

	d1 := pull(&at[0], &at[1], p)
	d2 := pull(&inside[0], &inside[1], p)
	if math.Abs(math.Hypot(d1[0], d1[1])-math.Hypot(d2[0], d2[1])) > eps {
		t.Fatalf("magnitudes differ: at floor %v, inside %v", d1, d2)
	}
}

func TestPullDirectionUsesUnsoftenedDistance(t *testing.T) {
	p := DefaultParams()
	a := Body{Mass: 1, Pos: mgl64.Vec2{0, 0}}
	b := Body{Mass: 100, Pos: mgl64.Vec2{6, 8}} // distance 10, well inside the floor

	d := pull(&a, &b, p)
	k := 100 * p.G / (p.MinSeparation * p.MinSeparation)
	want := [2]float64{k * (-6.0 / 10), k * (-8.0 / 10)}
	if math.Abs(d[0]-want[0]) > eps || math.Abs(d[1]-want[1]) > eps {
		t.Fatalf("pull = %v, want %v", d, want)
	}
}

func TestStepReadsPreStepPositions(t *testing.T) {
	// a fast moving body must not drag its own new position into the force pass
	bodies := []Body{
		{Mass: 100, Pos: mgl64.Vec2{400, 500}, Vel: mgl64.Vec2{150, 0}},
		{Mass: 100, Pos: mgl64.Vec2{600, 500}},
		{Mass: 100, Pos: mgl64.Vec2{800, 500}},
	}
	p := DefaultParams()

	// expected velocity of the middle body: pulled equally both ways
	Step(bodies, p)
	if got := bodies[1].Vel.X(); math.Abs(got) > eps {
		t.Fatalf("middle vx = %v, want 0", got)
	}
}

func TestStepCoincidentBodiesGoNaN(t *testing.T) {
	bodies := pair(500, 500)
	Step(bodies, DefaultParams())
	if Finite(bodies) {
		t.Fatalf("expected non-finite state for coincident bodies, got %v", bodies)
	}
}

func TestStepLeavesMassRadiusColor(t *testing.T) {
	bodies := pair(100, 900)
	bodies[0].Color.R = 200
	Step(bodies, DefaultParams())
	if bodies[0].Mass != 100 || bodies[0].Radius != 10 || bodies[0].Color.R != 200 {
		t.Fatalf("non-kinematic fields changed: %+v", bodies[0])
	}
}
