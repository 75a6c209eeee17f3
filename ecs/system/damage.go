package system

import (
	"log"

	"github.com/milk9111/skulls/ecs"
	"github.com/milk9111/skulls/ecs/component"
	"github.com/milk9111/skulls/ecs/entity"
)

// DamageSystem applies every pending DamageEvent. Events for entities that
// are gone or have no health are dropped. A skull that dies is despawned on
// the spot and turned into an explosion one chain link deeper.
type DamageSystem struct{}

func NewDamageSystem() *DamageSystem {
	return &DamageSystem{}
}

func (s *DamageSystem) Update(w *ecs.World, ctx *Context) {
	if w == nil || ctx == nil {
		return
	}

	for _, evt := range ctx.Damage.Drain() {
		s.apply(w, ctx, evt)
	}
}

func (s *DamageSystem) apply(w *ecs.World, ctx *Context, evt DamageEvent) {
	health, ok := ecs.Get(w, evt.Target, component.HealthComponent.Kind())
	if !ok {
		return
	}

	player, isPlayer := ecs.Get(w, evt.Target, component.PlayerComponent.Kind())
	if isPlayer {
		if health.Dead || !player.Invulnerability.Finished() || !(evt.Damage > 0) {
			return
		}
		health.Current -= evt.Damage
		player.Invulnerability.Reset()
		player.Hurts++
		ctx.Notices.Hurt = append(ctx.Notices.Hurt, PlayerHurtEvent{Damage: evt.Damage, Remaining: health.Current})
	} else {
		health.Current -= evt.Damage
	}

	if health.Current > 0 || health.Dead {
		return
	}
	health.Dead = true

	if isPlayer {
		player.Dying = true
		player.DeathTimer.Reset()
		ctx.Notices.Died = true
		log.Printf("Damage: player %s died", evt.Target)
	}

	if !ecs.Has(w, evt.Target, component.FireSkullComponent.Kind()) {
		return
	}
	transform, ok := ecs.Get(w, evt.Target, component.TransformComponent.Kind())
	if !ok {
		log.Printf("Damage: skull %s has no transform", evt.Target)
		entity.Despawn(w, ctx.Physics, evt.Target)
		return
	}
	pos := transform.Position
	entity.Despawn(w, ctx.Physics, evt.Target)

	ctx.Explosions.Push(ExplosionEvent{
		Position: pos,
		Scale:    1,
		Damage:   ctx.Tuning.Explosion.Damage,
		Chain:    evt.Chain + 1,
	})
	ctx.Kills++
	ctx.Scores.Push(ScoreEvent{Chain: evt.Chain})
}
