package component

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func near(a, b cp.Vector) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestMotionSetFromInput(t *testing.T) {
	tests := []struct {
		name    string
		heading float64
		move    cp.Vector
		want    cp.Vector
	}{
		{"forward", 0, cp.Vector{X: 1}, cp.Vector{X: 8}},
		{"partial", 0, cp.Vector{X: 0.5}, cp.Vector{X: 4}},
		{"diagonal_clamped", 0, cp.Vector{X: 1, Y: 1}, cp.Vector{X: 8 / math.Sqrt2, Y: 8 / math.Sqrt2}},
		{"rotated", math.Pi / 2, cp.Vector{X: 1}, cp.Vector{Y: 8}},
		{"strafe_left_rotated", math.Pi / 2, cp.Vector{Y: 1}, cp.Vector{X: -8}},
		{"zero", 1.3, cp.Vector{}, cp.Vector{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := &Motion{MaxSpeed: 8, Heading: tc.heading}
			m.SetFromInput(tc.move, 0.5)
			if !near(m.DesiredVelocity, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, m.DesiredVelocity)
			}
			if m.DesiredTurn != 0.5 {
				t.Fatalf("expected desired turn 0.5, got %v", m.DesiredTurn)
			}
		})
	}
}

func TestMotionIntegrate(t *testing.T) {
	m := &Motion{Acceleration: 10, MaxSpeed: 5, DesiredVelocity: cp.Vector{X: 5}, DesiredTurn: 1}
	m.Integrate(0.01)

	// velocity moves a tenth of the way, heading a hundredth of a turn
	if !near(m.Velocity, cp.Vector{X: 0.5}) {
		t.Fatalf("unexpected velocity %v", m.Velocity)
	}
	if math.Abs(m.Heading-2*math.Pi*0.01) > 1e-12 {
		t.Fatalf("unexpected heading %v", m.Heading)
	}

	for range 1000 {
		m.Integrate(1.0 / 60)
	}
	if !near(m.Velocity, cp.Vector{X: 5}) && m.Velocity.Distance(cp.Vector{X: 5}) > 1e-6 {
		t.Fatalf("velocity should converge to the desired velocity, got %v", m.Velocity)
	}
	if m.Heading < 2*math.Pi {
		t.Fatalf("heading should accumulate without wrapping, got %v", m.Heading)
	}
}

func TestMotionIntegrateNeverOvershoots(t *testing.T) {
	tests := []struct {
		name  string
		accel float64
		dt    float64
	}{
		{"gentle", 10, 1.0 / 60},
		{"half_step", 2, 0.25},
		{"boundary", 4, 0.25},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			desired := cp.Vector{X: 5, Y: 3}
			m := &Motion{Acceleration: tc.accel, Velocity: cp.Vector{X: 1, Y: -2}, DesiredVelocity: desired}

			prevDist := m.Velocity.Distance(desired)
			for i := range 200 {
				m.Integrate(tc.dt)
				dist := m.Velocity.Distance(desired)
				if dist > prevDist {
					t.Fatalf("step %d: moved away from the target (%v > %v)", i, dist, prevDist)
				}
				if m.Velocity.X > desired.X || m.Velocity.Y > desired.Y {
					t.Fatalf("step %d: overshot the target: %v", i, m.Velocity)
				}
				prevDist = dist
			}
		})
	}

	t.Run("boundary_lands_exactly", func(t *testing.T) {
		m := &Motion{Acceleration: 4, Velocity: cp.Vector{X: 1, Y: -2}, DesiredVelocity: cp.Vector{X: 5, Y: 3}}
		m.Integrate(0.25)
		if m.Velocity != m.DesiredVelocity {
			t.Fatalf("expected exactly %v, got %v", m.DesiredVelocity, m.Velocity)
		}
	})
}
