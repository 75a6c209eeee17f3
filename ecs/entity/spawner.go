package entity

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/skulls/ecs"
	"github.com/milk9111/skulls/ecs/component"
	"github.com/milk9111/skulls/prefabs"
)

// NewSpawner builds a portal that emits skulls skulls, one per interval.
// Spawners have no body; nothing collides with them.
func NewSpawner(w *ecs.World, tuning prefabs.TuningSpec, pos cp.Vector, skulls int) (ecs.Entity, error) {
	return build(w, nil, "spawner",
		withTransform(pos),
		with(component.SpawnerComponent, &component.Spawner{
			SkullsLeft: skulls,
			Timer:      component.NewTimer(tuning.Spawner.Interval, component.TimerRepeating),
		}),
	)
}
