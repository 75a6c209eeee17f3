package system

import (
	"errors"
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/skulls/common"
	"github.com/milk9111/skulls/ecs"
	"github.com/milk9111/skulls/ecs/component"
	"github.com/milk9111/skulls/prefabs"
)

// SkullSteeringSystem points every skull at the player. When the tuning names
// a steering script, the script computes the desired velocity instead and any
// script failure falls back to the straight chase.
type SkullSteeringSystem struct {
	script        *steeringScript
	failed        map[string]bool
	missingLogged bool
}

type steeringScript struct {
	name     string
	compiled *tengo.Compiled
}

func NewSkullSteeringSystem() *SkullSteeringSystem {
	return &SkullSteeringSystem{failed: map[string]bool{}}
}

// Reload drops the compiled script so the next tick reads it again.
func (s *SkullSteeringSystem) Reload() {
	s.script = nil
	s.failed = map[string]bool{}
}

func (s *SkullSteeringSystem) Update(w *ecs.World, ctx *Context) {
	if w == nil || ctx == nil {
		return
	}

	playerPos, err := playerPosition(w)
	if err != nil {
		if !s.missingLogged {
			log.Printf("SkullSteering: skipping, %v", err)
			s.missingLogged = true
		}
		ecs.ForEach2(w, component.FireSkullComponent.Kind(), component.MotionComponent.Kind(), func(e ecs.Entity, _ *component.FireSkull, motion *component.Motion) {
			motion.DesiredVelocity = cp.Vector{}
		})
		return
	}
	s.missingLogged = false

	script := s.scriptFor(ctx.Tuning.Skull.SteeringScript)

	ecs.ForEach3(w, component.FireSkullComponent.Kind(), component.MotionComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.FireSkull, motion *component.Motion, transform *component.Transform) {
		motion.DesiredTurn = 0
		if script != nil {
			v, err := script.desire(playerPos, transform.Position, motion.MaxSpeed)
			if err == nil {
				motion.DesiredVelocity = v
				return
			}
			log.Printf("SkullSteering: script %s: %v", script.name, err)
			s.failed[script.name] = true
			s.script = nil
			script = nil
		}
		motion.DesiredVelocity = Chase(playerPos, transform.Position, motion.MaxSpeed)
	})
}

// Chase is the velocity that heads from pos straight at target at speed.
func Chase(target, pos cp.Vector, speed float64) cp.Vector {
	return common.NormalizeOrZero(target.Sub(pos)).Mult(speed)
}

func (s *SkullSteeringSystem) scriptFor(name string) *steeringScript {
	if name == "" || s.failed[name] {
		return nil
	}
	if s.script != nil && s.script.name == name {
		return s.script
	}
	script, err := loadSteeringScript(name)
	if err != nil {
		log.Printf("SkullSteering: %v", err)
		s.failed[name] = true
		return nil
	}
	s.script = script
	return script
}

func loadSteeringScript(name string) (*steeringScript, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}

	script := tengo.NewScript(src)
	for _, in := range []string{"px", "py", "sx", "sy", "max_speed"} {
		if err := script.Add(in, 0.0); err != nil {
			return nil, fmt.Errorf("declare %s in %s: %w", in, name, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", name, err)
	}
	return &steeringScript{name: name, compiled: compiled}, nil
}

var errScriptOutputs = errors.New("script must define vx and vy")

func (s *steeringScript) desire(player, skull cp.Vector, maxSpeed float64) (cp.Vector, error) {
	inputs := map[string]float64{
		"px":        player.X,
		"py":        player.Y,
		"sx":        skull.X,
		"sy":        skull.Y,
		"max_speed": maxSpeed,
	}
	for k, v := range inputs {
		if err := s.compiled.Set(k, v); err != nil {
			return cp.Vector{}, err
		}
	}
	if err := s.compiled.Run(); err != nil {
		return cp.Vector{}, err
	}
	if !s.compiled.IsDefined("vx") || !s.compiled.IsDefined("vy") {
		return cp.Vector{}, errScriptOutputs
	}
	return cp.Vector{X: s.compiled.Get("vx").Float(), Y: s.compiled.Get("vy").Float()}, nil
}
