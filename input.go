package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/skulls/ecs/system"
)

const stickDeadzone = 0.3

// Input polls the keyboard, mouse and first gamepad into an action snapshot
// once per rendered frame.
type Input struct {
	snapshot system.ActionSnapshot
}

func NewInput() *Input {
	return &Input{}
}

// Update reads the devices and derives this frame's edges from the previous
// frame's held state.
func (i *Input) Update() *system.ActionSnapshot {
	prev := i.snapshot.Held
	i.snapshot.Advance()

	var held [len(prev)]bool
	held[system.ActionMoveForward] = anyKey(ebiten.KeyW, ebiten.KeyUp)
	held[system.ActionMoveBackward] = anyKey(ebiten.KeyS, ebiten.KeyDown)
	held[system.ActionStrafeLeft] = anyKey(ebiten.KeyA)
	held[system.ActionStrafeRight] = anyKey(ebiten.KeyD)
	held[system.ActionTurnLeft] = anyKey(ebiten.KeyQ, ebiten.KeyLeft)
	held[system.ActionTurnRight] = anyKey(ebiten.KeyE, ebiten.KeyRight)
	held[system.ActionFire] = anyKey(ebiten.KeySpace) || ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	held[system.ActionPause] = anyKey(ebiten.KeyEscape, ebiten.KeyP)
	held[system.ActionStart] = anyKey(ebiten.KeyEnter)

	var turn float64
	if ids := ebiten.GamepadIDs(); len(ids) > 0 {
		gid := ids[0]

		leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		leftY := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickVertical)
		if leftY < -stickDeadzone {
			held[system.ActionMoveForward] = true
		} else if leftY > stickDeadzone {
			held[system.ActionMoveBackward] = true
		}
		if leftX < -stickDeadzone {
			held[system.ActionStrafeLeft] = true
		} else if leftX > stickDeadzone {
			held[system.ActionStrafeRight] = true
		}

		// Stick right turns clockwise, which is a negative turn.
		rightX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisRightStickHorizontal)
		if rightX < -stickDeadzone || rightX > stickDeadzone {
			turn = -rightX
		}

		if ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonFrontBottomRight) ||
			ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom) {
			held[system.ActionFire] = true
		}
		if ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonCenterRight) {
			held[system.ActionPause] = true
			held[system.ActionStart] = true
		}
	}

	for a := range held {
		action := system.Action(a)
		switch {
		case held[a] && !prev[a]:
			i.snapshot.Press(action)
		case !held[a] && prev[a]:
			i.snapshot.Release(action)
		}
	}
	i.snapshot.Turn = turn

	return &i.snapshot
}

func anyKey(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
