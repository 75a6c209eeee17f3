package system

import (
	"math"

	"github.com/milk9111/skulls/common"
	"github.com/milk9111/skulls/ecs"
	"github.com/milk9111/skulls/ecs/component"
)

// ExplosionSystem turns explosions into damage for everything with health in
// range, falling off linearly with centre distance. The damage lands on the
// next tick, so a chain advances one link per tick.
type ExplosionSystem struct{}

func NewExplosionSystem() *ExplosionSystem {
	return &ExplosionSystem{}
}

func (s *ExplosionSystem) Update(w *ecs.World, ctx *Context) {
	if w == nil || ctx == nil {
		return
	}

	for _, evt := range ctx.Explosions.Drain() {
		radius := ctx.Tuning.Explosion.Radius * evt.Scale
		det := Detonation{Position: evt.Position, Radius: radius, Chain: evt.Chain}

		for _, e := range ctx.Physics.Overlap(evt.Position, radius, common.GroupExplosion, common.GroupEnemy|common.GroupPlayer) {
			if !ecs.Has(w, e, component.HealthComponent.Kind()) {
				continue
			}
			transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
			if !ok {
				continue
			}
			damage := ExplosionDamage(evt.Damage, transform.Position.Distance(evt.Position), radius)
			if damage > 0 {
				det.Hits++
			}
			ctx.Damage.Push(DamageEvent{Target: e, Damage: damage, Chain: evt.Chain})
		}

		ctx.Notices.Detonations = append(ctx.Notices.Detonations, det)
	}
}

// ExplosionDamage is full damage at the centre, zero at radius and beyond.
func ExplosionDamage(damage, dist, radius float64) float64 {
	if radius <= 0 {
		return 0
	}
	return damage * math.Max(0, 1-dist/radius)
}
