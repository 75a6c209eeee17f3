package system

import (
	"github.com/milk9111/skulls/ecs"
	"github.com/milk9111/skulls/ecs/component"
)

// ContactSystem detonates every skull that touched the player this tick. The
// skull dies through the damage pipeline; its explosion does the hurting.
type ContactSystem struct{}

func NewContactSystem() *ContactSystem {
	return &ContactSystem{}
}

func (s *ContactSystem) Update(w *ecs.World, ctx *Context) {
	if w == nil || ctx == nil {
		return
	}

	for _, c := range ctx.Physics.DrainContacts() {
		if !ecs.Has(w, c.Enemy, component.FireSkullComponent.Kind()) {
			continue
		}
		ctx.Damage.Push(DamageEvent{Target: c.Enemy, Damage: InstantKill})
	}
}
