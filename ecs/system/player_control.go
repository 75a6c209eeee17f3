package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/skulls/ecs"
	"github.com/milk9111/skulls/ecs/component"
)

// PlayerControlSystem turns the tick's input into the player's desired
// velocity and turn. A dying player stops steering.
type PlayerControlSystem struct{}

func NewPlayerControlSystem() *PlayerControlSystem {
	return &PlayerControlSystem{}
}

func (s *PlayerControlSystem) Update(w *ecs.World, ctx *Context) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.PlayerComponent.Kind(), component.InputComponent.Kind(), component.MotionComponent.Kind(), func(e ecs.Entity, player *component.Player, input *component.Input, motion *component.Motion) {
		if player.Dying {
			motion.SetFromInput(cp.Vector{}, 0)
			return
		}
		motion.SetFromInput(input.Movement, input.Turn)
	})
}
