package component

import "github.com/jakecoffman/cp"

// Input is the per-tick input snapshot for a controlled entity. Movement is
// in the entity's frame: +X forward, +Y strafe left. Turn is already scaled
// to turns per second.
type Input struct {
	Movement         cp.Vector
	Turn             float64
	FirePressed      bool
	FireJustPressed  bool
	FireJustReleased bool
}

var InputComponent = NewComponent[Input]()
