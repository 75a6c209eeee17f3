package common

// Fixed simulation step.
const (
	TickRate = 60
	TickDt   = 1.0 / TickRate
)

// Collision categories. A shape only interacts with another when each
// category is present in the other's mask.
const (
	GroupPlayer uint = 1 << iota
	GroupEnemy
	GroupWall
	GroupShotgun
	GroupExplosion
)
