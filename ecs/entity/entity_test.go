package entity

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/skulls/ecs"
	"github.com/milk9111/skulls/ecs/component"
	"github.com/milk9111/skulls/prefabs"
)

func TestNewPlayer(t *testing.T) {
	w := ecs.NewWorld()
	pw := ecs.NewPhysicsWorld()
	tuning := prefabs.DefaultTuning()

	e, err := NewPlayer(w, pw, tuning, cp.Vector{X: 1, Y: 2})
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}

	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok || !p.Invulnerability.Finished() || p.Dying {
		t.Fatalf("player should start vulnerable and alive: %+v", p)
	}
	sg, ok := ecs.Get(w, e, component.ShotgunComponent.Kind())
	if !ok || sg.Shots != component.ShotgunCapacity || sg.State.Phase != component.ShotgunIdle {
		t.Fatalf("shotgun should start loaded and idle: %+v", sg)
	}
	h, _ := ecs.Get(w, e, component.HealthComponent.Kind())
	if h.Current != 100 {
		t.Fatalf("expected 100 health, got %v", h.Current)
	}
	for name, has := range map[string]bool{
		"transform": ecs.Has(w, e, component.TransformComponent.Kind()),
		"motion":    ecs.Has(w, e, component.MotionComponent.Kind()),
		"input":     ecs.Has(w, e, component.InputComponent.Kind()),
		"body":      ecs.Has(w, e, component.PhysicsBodyComponent.Kind()),
	} {
		if !has {
			t.Fatalf("player missing %s", name)
		}
	}
	body, ok := pw.Body(e)
	if !ok || body.Position() != (cp.Vector{X: 1, Y: 2}) {
		t.Fatalf("player body not placed at spawn")
	}
}

func TestNewFireSkullAndDespawn(t *testing.T) {
	w := ecs.NewWorld()
	pw := ecs.NewPhysicsWorld()

	e, err := NewFireSkull(w, pw, prefabs.DefaultTuning(), cp.Vector{X: 5})
	if err != nil {
		t.Fatalf("NewFireSkull: %v", err)
	}
	m, _ := ecs.Get(w, e, component.MotionComponent.Kind())
	if m.MaxSpeed != 5 || m.Acceleration != 10 {
		t.Fatalf("unexpected skull motion %+v", m)
	}
	if pw.BodyCount() != 1 {
		t.Fatalf("expected skull body")
	}

	if !Despawn(w, pw, e) {
		t.Fatalf("despawn should report true")
	}
	if ecs.IsAlive(w, e) || pw.BodyCount() != 0 {
		t.Fatalf("despawn left state behind")
	}
	if Despawn(w, pw, e) {
		t.Fatalf("second despawn should report false")
	}
}

func TestBuildFailureLeavesNothing(t *testing.T) {
	w := ecs.NewWorld()
	if _, err := NewFireSkull(w, nil, prefabs.DefaultTuning(), cp.Vector{}); err == nil {
		t.Fatalf("expected error without a physics world")
	}
	if ecs.Len(w) != 0 {
		t.Fatalf("failed build left %d entities", ecs.Len(w))
	}
}

func TestNewSpawner(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewSpawner(w, prefabs.DefaultTuning(), cp.Vector{Y: -20}, 5)
	if err != nil {
		t.Fatalf("NewSpawner: %v", err)
	}
	sp, _ := ecs.Get(w, e, component.SpawnerComponent.Kind())
	if sp.SkullsLeft != 5 || sp.Timer.Duration != 0.75 || sp.Timer.Mode != component.TimerRepeating {
		t.Fatalf("unexpected spawner %+v", sp)
	}
}

func TestArenaWalls(t *testing.T) {
	arena := prefabs.DefaultTuning().Arena
	walls := ArenaWalls(arena)
	if len(walls) != 8 {
		t.Fatalf("expected 8 walls, got %d", len(walls))
	}

	half := arena.HalfWidth()
	for _, wall := range walls {
		if abs(wall.Center.X) > 0 && abs(wall.Center.X)-wall.HalfW < half-1e-9 {
			t.Fatalf("wall %+v intrudes on the floor", wall)
		}
		if abs(wall.Center.Y) > 0 && abs(wall.Center.Y)-wall.HalfH < half-1e-9 {
			t.Fatalf("wall %+v intrudes on the floor", wall)
		}
	}

	pw := ecs.NewPhysicsWorld()
	NewArenaWalls(pw, arena)
	if pw.BodyCount() != 0 {
		t.Fatalf("walls must not count as entity bodies")
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
