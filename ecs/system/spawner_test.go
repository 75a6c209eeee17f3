package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/skulls/ecs"
	"github.com/milk9111/skulls/ecs/component"
	"github.com/milk9111/skulls/ecs/entity"
)

func TestDifficultyCurves(t *testing.T) {
	tests := []struct {
		difficulty float64
		skulls     int
		delay      float64
	}{
		{0, 5, 10},
		{1, 7, 10 - 5.0/101},
		{30, 17, 10 - 150.0/130},
		{100, 26, 7.5},
	}
	for _, tc := range tests {
		if got := int(SkullsForDifficulty(tc.difficulty)); got != tc.skulls {
			t.Fatalf("skulls(%v) = %d, want %d", tc.difficulty, got, tc.skulls)
		}
		if got := DelayForDifficulty(tc.difficulty); math.Abs(got-tc.delay) > 1e-9 {
			t.Fatalf("delay(%v) = %v, want %v", tc.difficulty, got, tc.delay)
		}
	}

	prev := DelayForDifficulty(0)
	for d := 1.0; d < 10000; d *= 2 {
		cur := DelayForDifficulty(d)
		if cur > prev || cur <= 5 {
			t.Fatalf("delay should fall toward 5: delay(%v) = %v after %v", d, cur, prev)
		}
		prev = cur
	}
}

func TestSampleSpawnPosition(t *testing.T) {
	_, ctx := newTestContext(t)
	player := cp.Vector{X: 3, Y: -4}
	for range 1000 {
		pos, ok := SampleSpawnPosition(ctx, cp.Vector{}, 50, player, 15)
		if !ok {
			t.Fatalf("sampling failed")
		}
		if pos.Length() > 50 {
			t.Fatalf("sample outside the disk: %v", pos)
		}
		if pos.Distance(player) < 15 {
			t.Fatalf("sample too close to the player: %v", pos)
		}
	}

	pos, ok := SampleSpawnPosition(ctx, cp.Vector{}, 5, cp.Vector{}, 15)
	if ok {
		t.Fatalf("expected failure when the whole disk is too close")
	}
	if pos.Length() > 5 {
		t.Fatalf("fallback outside the disk: %v", pos)
	}
	// 64 uniform draws almost surely include one past half the radius.
	if pos.Length() < 2.5 {
		t.Fatalf("fallback should be the farthest draw, got %v", pos)
	}
}

func TestSpawnSchedulerFallsBackWhenCrowded(t *testing.T) {
	w, ctx := newTestContext(t)
	spawnPlayer(t, w, ctx, cp.Vector{})
	// The whole spawn disk is within the exclusion ring.
	ctx.Tuning.Spawner.AreaRadius = 5
	ctx.Tuning.Spawner.MinPlayerDistance = 15
	sched := NewSpawnSchedulerSystem()

	for range 601 {
		sched.Update(w, ctx)
	}

	if n := ecs.Count(w, component.SpawnerComponent.Kind()); n != 1 {
		t.Fatalf("expected the spawner to be placed anyway, got %d", n)
	}
	ecs.ForEach2(w, component.SpawnerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.Spawner, tr *component.Transform) {
		if tr.Position.Length() > 5 {
			t.Fatalf("spawner outside the disk: %v", tr.Position)
		}
	})
}

func TestSpawnSchedulerCreatesSpawner(t *testing.T) {
	w, ctx := newTestContext(t)
	spawnPlayer(t, w, ctx, cp.Vector{})
	ctx.Kills = 30
	sched := NewSpawnSchedulerSystem()

	ticks := 0
	for ecs.Count(w, component.SpawnerComponent.Kind()) == 0 {
		sched.Update(w, ctx)
		ticks++
		if ticks > 700 {
			t.Fatalf("no spawner after %d ticks", ticks)
		}
	}
	if ticks < 599 || ticks > 601 {
		t.Fatalf("expected first scheduled spawner after 10s, got %d ticks", ticks)
	}

	if ctx.Spawn.Difficulty != 30 {
		t.Fatalf("difficulty should follow kills, got %v", ctx.Spawn.Difficulty)
	}
	if want := DelayForDifficulty(30); ctx.Spawn.Countdown.Duration != want || ctx.Spawn.Countdown.Finished() {
		t.Fatalf("countdown should be rearmed with %v, got %+v", want, ctx.Spawn.Countdown)
	}

	ecs.ForEach2(w, component.SpawnerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, sp *component.Spawner, tr *component.Transform) {
		if sp.SkullsLeft != 17 {
			t.Fatalf("expected floor(skulls_to_spawn)=17, got %d", sp.SkullsLeft)
		}
		if tr.Position.Length() > 50 || tr.Position.Length() < 15 {
			t.Fatalf("spawner placed at %v", tr.Position)
		}
	})
}

func TestSpawnSchedulerWithoutPlayer(t *testing.T) {
	w, ctx := newTestContext(t)
	sched := NewSpawnSchedulerSystem()
	for range 700 {
		sched.Update(w, ctx)
	}
	if ecs.Count(w, component.SpawnerComponent.Kind()) != 0 {
		t.Fatalf("scheduler should skip without a player")
	}
	if ctx.Spawn.Countdown.Elapsed != 0 {
		t.Fatalf("countdown should not run without a player")
	}
}

func TestSpawnerEmitsThenDespawns(t *testing.T) {
	w, ctx := newTestContext(t)
	sp, err := entity.NewSpawner(w, ctx.Tuning, cp.Vector{Y: -20}, 3)
	if err != nil {
		t.Fatal(err)
	}
	sys := NewSpawnerSystem()

	var emittedAt []int
	for tick := 1; tick <= 200; tick++ {
		before := countSkulls(w)
		sys.Update(w, ctx)
		if countSkulls(w) > before {
			emittedAt = append(emittedAt, tick)
		}
	}

	if len(emittedAt) != 3 {
		t.Fatalf("expected 3 skulls, got %v", emittedAt)
	}
	for i, tick := range emittedAt {
		want := 45 * (i + 1)
		if tick < want-1 || tick > want+1 {
			t.Fatalf("skull %d emitted at tick %d, want about %d", i, tick, want)
		}
	}
	if ecs.IsAlive(w, sp) {
		t.Fatalf("spawner should remove itself after the last skull")
	}

	ecs.ForEach2(w, component.FireSkullComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.FireSkull, tr *component.Transform) {
		if tr.Position != (cp.Vector{Y: -20}) {
			t.Fatalf("skull emitted at %v, want spawner position", tr.Position)
		}
	})
}
