package system

import (
	"log"

	"github.com/milk9111/skulls/common"
	"github.com/milk9111/skulls/ecs"
	"github.com/milk9111/skulls/ecs/component"
)

var noInput component.Input

// ShotgunSystem runs each shotgun's state machine and resolves a shot as a
// sphere cast along the holder's heading in the tick it is fired.
type ShotgunSystem struct{}

func NewShotgunSystem() *ShotgunSystem {
	return &ShotgunSystem{}
}

func (s *ShotgunSystem) Update(w *ecs.World, ctx *Context) {
	if w == nil || ctx == nil {
		return
	}

	ecs.ForEach4(w, component.ShotgunComponent.Kind(), component.InputComponent.Kind(), component.MotionComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, sg *component.Shotgun, input *component.Input, motion *component.Motion, transform *component.Transform) {
		in := input
		if player, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok && player.Dying {
			in = &noInput
		}

		step := sg.Step(ctx.Dt, in)
		if step.Reloaded {
			ctx.Notices.Shotgun = append(ctx.Notices.Shotgun, ShotgunReload)
		}
		if !step.Fired {
			return
		}
		ctx.Notices.Shotgun = append(ctx.Notices.Shotgun, ShotgunFire)

		hit, ok := ctx.Physics.ShapeCast(transform.Position, motion.Facing(), sg.CastRadius, sg.Range, common.GroupShotgun, common.GroupEnemy)
		if !ok {
			return
		}
		damage := sg.DamageAt(hit.Distance)
		log.Printf("Shotgun: hit %s at %.2f for %.1f", hit.Entity, hit.Distance, damage)
		ctx.Damage.Push(DamageEvent{Target: hit.Entity, Damage: damage})
	})
}
