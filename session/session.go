package session

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/skulls/common"
	"github.com/milk9111/skulls/ecs"
	"github.com/milk9111/skulls/ecs/entity"
	"github.com/milk9111/skulls/ecs/system"
	"github.com/milk9111/skulls/prefabs"
)

type State int

const (
	StateMainMenu State = iota
	StateInGame
	StateEnd
)

func (s State) String() string {
	switch s {
	case StateMainMenu:
		return "main menu"
	case StateInGame:
		return "in game"
	case StateEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Session scopes one play-through. Everything built on entering InGame (the
// world, the physics space, the timers and counters) is dropped on leaving
// it; only the final score and kills survive into End.
type Session struct {
	ID uuid.UUID

	state  State
	paused bool

	tuning prefabs.TuningSpec
	seed   *uint64

	world     *ecs.World
	physics   *ecs.PhysicsWorld
	ctx       *system.Context
	scheduler *ecs.Scheduler[*system.Context]
	steering  *system.SkullSteeringSystem
	clock     FixedClock
	input     system.InputAggregator
	notices   system.Notices

	finalScore int64
	finalKills int64
}

// New returns a session waiting in the main menu.
func New(tuning prefabs.TuningSpec) *Session {
	return &Session{
		tuning:   tuning,
		steering: system.NewSkullSteeringSystem(),
		clock:    NewFixedClock(common.TickDt),
	}
}

// SetSeed makes every following game draw spawn positions from a fixed
// sequence.
func (s *Session) SetSeed(seed uint64) {
	s.seed = &seed
}

// SetTuning replaces the tuning used by the next game. The steering script
// is reloaded right away.
func (s *Session) SetTuning(tuning prefabs.TuningSpec) {
	s.tuning = tuning
	s.steering.Reload()
}

func (s *Session) Tuning() prefabs.TuningSpec {
	return s.tuning
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Paused() bool {
	return s.paused
}

// Start enters InGame from any state, rebuilding the scene from scratch.
// On failure the session stays where it was.
func (s *Session) Start() error {
	if s.state == StateInGame {
		s.teardown()
	}

	world := ecs.NewWorld()
	physics := ecs.NewPhysicsWorld()
	ctx := system.NewContext(s.tuning, physics, s.newRand())
	ctx.Dt = common.TickDt

	entity.NewArenaWalls(physics, s.tuning.Arena)
	if _, err := entity.NewPlayer(world, physics, s.tuning, cp.Vector{}); err != nil {
		return fmt.Errorf("session: start: %w", err)
	}
	sp := s.tuning.Spawner
	first := cp.Vector{X: sp.FirstX, Y: sp.FirstY}
	if _, err := entity.NewSpawner(world, s.tuning, first, int(sp.InitialSkulls)); err != nil {
		return fmt.Errorf("session: start: %w", err)
	}

	s.ID = uuid.New()
	s.world = world
	s.physics = physics
	s.ctx = ctx
	s.scheduler = s.buildScheduler()
	s.clock.Reset()
	s.input = system.InputAggregator{}
	s.notices = system.Notices{}
	s.finalScore = 0
	s.finalKills = 0
	s.paused = false
	s.state = StateInGame

	log.Printf("Session: %s started with tuning %q", s.ID, s.tuning.Name)
	return nil
}

// buildScheduler fixes the order systems run in each tick. Producers of
// desired velocity run before motion, damage is resolved before the
// explosions it causes, and explosion damage waits for the next tick.
func (s *Session) buildScheduler() *ecs.Scheduler[*system.Context] {
	return ecs.NewScheduler[*system.Context](
		system.NewInputSystem(&s.input),
		system.NewPlayerStatusSystem(),
		system.NewPlayerControlSystem(),
		s.steering,
		system.NewMotionSystem(),
		system.NewPhysicsSystem(),
		system.NewContactSystem(),
		system.NewShotgunSystem(),
		system.NewDamageSystem(),
		system.NewExplosionSystem(),
		system.NewScoreSystem(),
		system.NewSpawnSchedulerSystem(),
		system.NewSpawnerSystem(),
	)
}

func (s *Session) newRand() *rand.Rand {
	if s.seed != nil {
		return rand.New(rand.NewPCG(*s.seed, *s.seed^0x9e3779b97f4a7c15))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// TogglePause flips the pause flag. Pausing outside InGame does nothing.
func (s *Session) TogglePause() {
	if s.state != StateInGame {
		return
	}
	s.paused = !s.paused
	log.Printf("Session: %s paused=%v", s.ID, s.paused)
}

// End leaves InGame for the end screen, keeping the final score.
func (s *Session) End() {
	if s.state != StateInGame {
		return
	}
	s.teardown()
	s.state = StateEnd
	log.Printf("Session: %s ended with score %d and %d kills", s.ID, s.finalScore, s.finalKills)
}

// ReturnToMenu drops the current game, if any, and shows the main menu.
func (s *Session) ReturnToMenu() {
	if s.state == StateInGame {
		s.teardown()
	}
	s.state = StateMainMenu
}

func (s *Session) teardown() {
	if s.ctx != nil {
		s.finalScore = s.ctx.Score
		s.finalKills = s.ctx.Kills
	}
	s.world = nil
	s.physics = nil
	s.ctx = nil
	s.scheduler = nil
	s.paused = false
	s.clock.Reset()
	s.input = system.InputAggregator{}
}

// Frame runs one host frame: session actions, input collection and as many
// fixed ticks as frameDt pays for. It returns the number of ticks run.
func (s *Session) Frame(frameDt float64, src system.InputSource) int {
	s.notices = system.Notices{}

	if src != nil {
		switch s.state {
		case StateMainMenu, StateEnd:
			if src.JustPressed(system.ActionStart) {
				if err := s.Start(); err != nil {
					log.Printf("Session: %v", err)
				}
				return 0
			}
		case StateInGame:
			if src.JustPressed(system.ActionPause) {
				s.TogglePause()
			}
		}
	}

	if s.state != StateInGame || s.paused {
		return 0
	}

	s.input.Collect(src, s.tuning.Player.TurnRate)

	n := s.clock.Advance(frameDt)
	ran := 0
	for range n {
		s.ctx.Tick++
		s.scheduler.Update(s.world, s.ctx)
		ran++
		if s.ctx.EndRequested {
			break
		}
	}
	s.input.EndFrame()

	s.notices = s.ctx.Notices
	s.ctx.ClearNotices()

	if s.ctx.EndRequested {
		s.End()
	}
	return ran
}

// Notices returns what happened during the last Frame.
func (s *Session) Notices() system.Notices {
	return s.notices
}

// Alpha is the interpolation fraction for presenting the current frame.
func (s *Session) Alpha() float64 {
	return s.clock.Overstep()
}

func (s *Session) World() *ecs.World {
	return s.world
}

func (s *Session) Physics() *ecs.PhysicsWorld {
	return s.physics
}

// Context is the running game's shared state, nil outside InGame.
func (s *Session) Context() *system.Context {
	return s.ctx
}

// Score is the running score in game and the final score afterwards.
func (s *Session) Score() int64 {
	if s.ctx != nil {
		return s.ctx.Score
	}
	return s.finalScore
}

func (s *Session) Kills() int64 {
	if s.ctx != nil {
		return s.ctx.Kills
	}
	return s.finalKills
}
