package entity

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/skulls/common"
	"github.com/milk9111/skulls/ecs"
	"github.com/milk9111/skulls/ecs/component"
	"github.com/milk9111/skulls/prefabs"
)

const (
	playerCategories = common.GroupPlayer
	playerMask       = common.GroupWall | common.GroupEnemy | common.GroupExplosion
)

// NewPlayer builds the controlled character with its shotgun at pos.
func NewPlayer(w *ecs.World, pw *ecs.PhysicsWorld, tuning prefabs.TuningSpec, pos cp.Vector) (ecs.Entity, error) {
	p := tuning.Player
	sg := tuning.Shotgun
	return build(w, pw, "player",
		with(component.PlayerComponent, &component.Player{
			Invulnerability: component.NewFinishedTimer(p.Invulnerability),
			DeathTimer:      component.NewTimer(p.DeathTime, component.TimerOnce),
		}),
		withTransform(pos),
		with(component.MotionComponent, &component.Motion{
			Acceleration: p.Acceleration,
			MaxSpeed:     p.MaxSpeed,
		}),
		with(component.InputComponent, &component.Input{}),
		with(component.HealthComponent, component.NewHealth(p.Health)),
		with(component.ShotgunComponent, &component.Shotgun{
			State:        component.ShotgunState{Phase: component.ShotgunIdle},
			NextState:    component.ShotgunState{Phase: component.ShotgunIdle},
			Shots:        component.ShotgunCapacity,
			FiringTime:   sg.FiringTime,
			ReloadTime:   sg.ReloadTime,
			Damage:       sg.Damage,
			FalloffStart: sg.FalloffStart,
			FalloffEnd:   sg.FalloffEnd,
			CastRadius:   sg.CastRadius,
			Range:        sg.Range,
		}),
		withCircleBody(pw, pos, p.Radius, playerCategories, playerMask),
	)
}
