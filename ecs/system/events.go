package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/skulls/ecs"
)

// InstantKill is the damage of a hit that must kill regardless of health.
var InstantKill = math.Inf(1)

// DamageEvent asks the damage pipeline to hurt Target. Chain counts how many
// explosions led to it; direct hits carry zero.
type DamageEvent struct {
	Target ecs.Entity
	Damage float64
	Chain  uint64
}

// ExplosionEvent is a detonation centred on Position. Its radius is the tuned
// explosion radius times Scale.
type ExplosionEvent struct {
	Position cp.Vector
	Scale    float64
	Damage   float64
	Chain    uint64
}

type ScoreEvent struct {
	Chain uint64
}

type ShotgunEvent int

const (
	ShotgunFire ShotgunEvent = iota
	ShotgunReload
)

func (e ShotgunEvent) String() string {
	switch e {
	case ShotgunFire:
		return "fire"
	case ShotgunReload:
		return "reload"
	default:
		return "unknown"
	}
}

type PlayerHurtEvent struct {
	Damage    float64
	Remaining float64
}

// Detonation records an explosion that was resolved, for presentation.
type Detonation struct {
	Position cp.Vector
	Radius   float64
	Chain    uint64
	Hits     int
}
