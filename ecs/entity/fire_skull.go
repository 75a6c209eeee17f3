package entity

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/skulls/common"
	"github.com/milk9111/skulls/ecs"
	"github.com/milk9111/skulls/ecs/component"
	"github.com/milk9111/skulls/prefabs"
)

const (
	skullCategories = common.GroupEnemy
	skullMask       = common.GroupPlayer | common.GroupEnemy | common.GroupShotgun | common.GroupExplosion
)

func NewFireSkull(w *ecs.World, pw *ecs.PhysicsWorld, tuning prefabs.TuningSpec, pos cp.Vector) (ecs.Entity, error) {
	s := tuning.Skull
	return build(w, pw, "fire skull",
		with(component.FireSkullComponent, &component.FireSkull{}),
		withTransform(pos),
		with(component.MotionComponent, &component.Motion{
			Acceleration: s.Acceleration,
			MaxSpeed:     s.MaxSpeed,
		}),
		with(component.HealthComponent, component.NewHealth(s.Health)),
		withCircleBody(pw, pos, s.Radius, skullCategories, skullMask),
	)
}
