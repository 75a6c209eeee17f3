package system

import (
	"log"

	"github.com/milk9111/skulls/ecs"
	"github.com/milk9111/skulls/ecs/component"
)

// PlayerStatusSystem runs the player's timers: invulnerability after a hit
// and the delay between death and the end screen.
type PlayerStatusSystem struct{}

func NewPlayerStatusSystem() *PlayerStatusSystem {
	return &PlayerStatusSystem{}
}

func (s *PlayerStatusSystem) Update(w *ecs.World, ctx *Context) {
	if w == nil || ctx == nil {
		return
	}

	ecs.ForEach(w, component.PlayerComponent.Kind(), func(e ecs.Entity, player *component.Player) {
		player.Invulnerability.Tick(ctx.Dt)
		if !player.Dying {
			return
		}
		if player.DeathTimer.Tick(ctx.Dt).JustFinished() {
			log.Printf("PlayerStatus: death timer elapsed for %s", e)
			ctx.EndRequested = true
		}
	})
}
