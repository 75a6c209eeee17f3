package system

import (
	"github.com/milk9111/skulls/ecs"
	"github.com/milk9111/skulls/ecs/component"
)

// MotionSystem advances velocity and heading toward the desired values and
// hands the velocity to the physics body. Entities without a body are moved
// here directly.
type MotionSystem struct{}

func NewMotionSystem() *MotionSystem {
	return &MotionSystem{}
}

func (s *MotionSystem) Update(w *ecs.World, ctx *Context) {
	if w == nil || ctx == nil {
		return
	}

	ecs.ForEach2(w, component.MotionComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, motion *component.Motion, transform *component.Transform) {
		transform.Previous = transform.Position
		motion.Integrate(ctx.Dt)

		if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && body.Body != nil {
			body.Body.SetVelocityVector(motion.Velocity)
			return
		}
		transform.Position = transform.Position.Add(motion.Velocity.Mult(ctx.Dt))
	})
}
