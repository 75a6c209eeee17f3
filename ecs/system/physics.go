package system

import (
	"github.com/milk9111/skulls/ecs"
	"github.com/milk9111/skulls/ecs/component"
)

// PhysicsSystem steps the physics world and copies body state back onto
// transforms and motion, so walls and collisions show up in the velocity the
// next tick starts from.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (p *PhysicsSystem) Update(w *ecs.World, ctx *Context) {
	if w == nil || ctx == nil || ctx.Physics == nil {
		return
	}

	ctx.Physics.Step(ctx.Dt)

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, body *component.PhysicsBody, transform *component.Transform) {
		if body.Body == nil {
			return
		}
		transform.Position = body.Body.Position()
		if motion, ok := ecs.Get(w, e, component.MotionComponent.Kind()); ok {
			motion.Velocity = body.Body.Velocity()
		}
	})
}
