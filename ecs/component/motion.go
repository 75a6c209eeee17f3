package component

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/skulls/common"
)

// Motion is the character-controller state of a mobile entity.
//
// DesiredVelocity and DesiredTurn are rewritten every tick by exactly one
// producer (player control or skull steering) before MotionSystem consumes
// them. DesiredTurn is in turns per second. Heading accumulates without
// wrapping; only its sine and cosine are read.
type Motion struct {
	Acceleration float64
	MaxSpeed     float64

	Velocity cp.Vector
	Heading  float64

	DesiredVelocity cp.Vector
	DesiredTurn     float64
}

var MotionComponent = NewComponent[Motion]()

// SetFromInput derives the desired velocity and turn from a movement vector
// in the entity's frame and a turn rate in turns per second. Movement longer
// than one is shortened so diagonals are not faster.
func (m *Motion) SetFromInput(movement cp.Vector, turn float64) {
	movement = common.ClampUnit(movement)
	m.DesiredVelocity = movement.Mult(m.MaxSpeed).Rotate(common.Heading(m.Heading))
	m.DesiredTurn = turn
}

// Integrate moves velocity toward the desired velocity and advances the
// heading by one step of dt seconds.
func (m *Motion) Integrate(dt float64) {
	diff := m.DesiredVelocity.Sub(m.Velocity)
	m.Velocity = m.Velocity.Add(diff.Mult(m.Acceleration * dt))
	m.Heading += m.DesiredTurn * 2 * math.Pi * dt
}

// Facing is the unit vector of the current heading.
func (m *Motion) Facing() cp.Vector {
	return common.Heading(m.Heading)
}
