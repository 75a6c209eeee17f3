package system

import (
	"math/rand/v2"

	"github.com/milk9111/skulls/ecs"
	"github.com/milk9111/skulls/prefabs"
)

// Notices collect what happened during a frame for the host: sounds, HUD
// flashes, explosion sprites. They never feed back into the simulation.
type Notices struct {
	Shotgun     []ShotgunEvent
	Hurt        []PlayerHurtEvent
	Died        bool
	Detonations []Detonation
}

// Context is the state shared by every system of one session. Systems read
// Dt and Tuning, push events into the queues and commit counters.
type Context struct {
	Dt      float64
	Tick    uint64
	Tuning  prefabs.TuningSpec
	Physics *ecs.PhysicsWorld
	Rand    *rand.Rand

	Score int64
	Kills int64
	Spawn SpawnParameters

	Damage     ecs.EventQueue[DamageEvent]
	Explosions ecs.EventQueue[ExplosionEvent]
	Scores     ecs.EventQueue[ScoreEvent]

	Notices Notices

	// EndRequested is set once the player's death timer has run out.
	EndRequested bool
}

// NewContext builds the context for a fresh session.
func NewContext(tuning prefabs.TuningSpec, physics *ecs.PhysicsWorld, rng *rand.Rand) *Context {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Context{
		Tuning:  tuning,
		Physics: physics,
		Rand:    rng,
		Spawn:   NewSpawnParameters(tuning.Spawner),
	}
}

// ClearNotices drops the notices gathered so far.
func (c *Context) ClearNotices() {
	c.Notices = Notices{}
}
