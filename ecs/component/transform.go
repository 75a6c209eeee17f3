package component

import "github.com/jakecoffman/cp"

// Transform is an entity's place on the arena floor. Previous holds the
// position before the last fixed step so presentation can interpolate.
type Transform struct {
	Position cp.Vector
	Previous cp.Vector
}

var TransformComponent = NewComponent[Transform]()
