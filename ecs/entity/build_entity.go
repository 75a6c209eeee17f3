package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/skulls/ecs"
	"github.com/milk9111/skulls/ecs/component"
)

type buildStep func(w *ecs.World, e ecs.Entity) error

// build creates an entity and runs every step. A failing step destroys the
// entity so no half-built bundle stays in the world.
func build(w *ecs.World, pw *ecs.PhysicsWorld, name string, steps ...buildStep) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("%s: nil world", name)
	}
	e := ecs.CreateEntity(w)
	for _, step := range steps {
		if err := step(w, e); err != nil {
			Despawn(w, pw, e)
			return 0, fmt.Errorf("%s: %w", name, err)
		}
	}
	return e, nil
}

func with[T any](handle component.ComponentHandle[T], value *T) buildStep {
	return func(w *ecs.World, e ecs.Entity) error {
		return ecs.Add(w, e, handle.Kind(), value)
	}
}

func withTransform(pos cp.Vector) buildStep {
	return with(component.TransformComponent, &component.Transform{Position: pos, Previous: pos})
}

// withCircleBody adds a dynamic circle to pw and links it to the entity.
func withCircleBody(pw *ecs.PhysicsWorld, pos cp.Vector, radius float64, categories, mask uint) buildStep {
	return func(w *ecs.World, e ecs.Entity) error {
		if pw == nil {
			return fmt.Errorf("add body to %s: nil physics world", e)
		}
		body, shape := pw.AddCircle(e, pos, radius, categories, mask)
		return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
			Body:       body,
			Shape:      shape,
			Radius:     radius,
			Categories: categories,
			Mask:       mask,
		})
	}
}

// Despawn destroys e and removes its physics body. Despawning a dead handle
// is a no-op.
func Despawn(w *ecs.World, pw *ecs.PhysicsWorld, e ecs.Entity) bool {
	pw.RemoveEntity(e)
	return ecs.DestroyEntity(w, e)
}
