package system

import (
	"math/rand/v2"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/skulls/common"
	"github.com/milk9111/skulls/ecs"
	"github.com/milk9111/skulls/ecs/component"
	"github.com/milk9111/skulls/ecs/entity"
	"github.com/milk9111/skulls/prefabs"
)

func newTestContext(t *testing.T) (*ecs.World, *Context) {
	t.Helper()
	ctx := NewContext(prefabs.DefaultTuning(), ecs.NewPhysicsWorld(), rand.New(rand.NewPCG(1, 2)))
	ctx.Dt = common.TickDt
	return ecs.NewWorld(), ctx
}

func spawnPlayer(t *testing.T, w *ecs.World, ctx *Context, pos cp.Vector) ecs.Entity {
	t.Helper()
	e, err := entity.NewPlayer(w, ctx.Physics, ctx.Tuning, pos)
	if err != nil {
		t.Fatalf("spawn player: %v", err)
	}
	return e
}

func spawnSkull(t *testing.T, w *ecs.World, ctx *Context, pos cp.Vector) ecs.Entity {
	t.Helper()
	e, err := entity.NewFireSkull(w, ctx.Physics, ctx.Tuning, pos)
	if err != nil {
		t.Fatalf("spawn skull: %v", err)
	}
	return e
}

func healthOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.Health {
	t.Helper()
	h, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	if !ok {
		t.Fatalf("%s has no health", e)
	}
	return h
}

func countSkulls(w *ecs.World) int {
	return ecs.Count(w, component.FireSkullComponent.Kind())
}

// combatTick runs the damage side of a tick in session order.
func combatTick(w *ecs.World, ctx *Context) {
	ctx.Tick++
	NewPlayerStatusSystem().Update(w, ctx)
	NewDamageSystem().Update(w, ctx)
	NewExplosionSystem().Update(w, ctx)
	NewScoreSystem().Update(w, ctx)
}
