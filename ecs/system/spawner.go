package system

import (
	"errors"
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/skulls/ecs"
	"github.com/milk9111/skulls/ecs/component"
	"github.com/milk9111/skulls/ecs/entity"
	"github.com/milk9111/skulls/prefabs"
)

const (
	baseSkullsPerSpawner = 5.0
	baseSpawnerDelay     = 10.0

	// maxSpawnSamples bounds the rejection loop. With the default tuning a
	// sample is rejected less than ten percent of the time.
	maxSpawnSamples = 64
)

// SkullsForDifficulty is how many skulls a new spawner carries.
func SkullsForDifficulty(difficulty float64) float64 {
	return baseSkullsPerSpawner + 0.4*math.Sqrt(30*difficulty)
}

// DelayForDifficulty is the wait before the next spawner, approaching five
// seconds as difficulty grows.
func DelayForDifficulty(difficulty float64) float64 {
	return baseSpawnerDelay - 5*difficulty/(difficulty+100)
}

// SpawnParameters drive the spawner schedule. They are rebuilt for every
// session.
type SpawnParameters struct {
	SkullsToSpawn          float64
	DelayBeforeNextSpawner float64
	Countdown              component.Timer
	Difficulty             float64
}

func NewSpawnParameters(spec prefabs.SpawnerSpec) SpawnParameters {
	return SpawnParameters{
		SkullsToSpawn:          SkullsForDifficulty(0),
		DelayBeforeNextSpawner: spec.InitialDelay,
		Countdown:              component.NewTimer(spec.InitialDelay, component.TimerOnce),
	}
}

func (p *SpawnParameters) SetDifficulty(difficulty float64) {
	p.Difficulty = difficulty
	p.SkullsToSpawn = SkullsForDifficulty(difficulty)
	p.DelayBeforeNextSpawner = DelayForDifficulty(difficulty)
}

// SpawnSchedulerSystem places a new spawner each time the countdown runs out,
// scaling with the kills so far.
type SpawnSchedulerSystem struct {
	missingLogged bool
}

func NewSpawnSchedulerSystem() *SpawnSchedulerSystem {
	return &SpawnSchedulerSystem{}
}

func (s *SpawnSchedulerSystem) Update(w *ecs.World, ctx *Context) {
	if w == nil || ctx == nil {
		return
	}

	playerPos, err := playerPosition(w)
	if err != nil {
		if !s.missingLogged {
			log.Printf("SpawnScheduler: skipping, %v", err)
			s.missingLogged = true
		}
		return
	}
	s.missingLogged = false

	params := &ctx.Spawn
	if !params.Countdown.Tick(ctx.Dt).JustFinished() {
		return
	}

	params.SetDifficulty(float64(ctx.Kills))
	params.Countdown.SetDuration(params.DelayBeforeNextSpawner)
	params.Countdown.Reset()

	spec := ctx.Tuning.Spawner
	pos, ok := SampleSpawnPosition(ctx, cp.Vector{}, spec.AreaRadius, playerPos, spec.MinPlayerDistance)
	if !ok {
		log.Printf("SpawnScheduler: no position %.1f from player %v, using farthest sample (%.1f, %.1f)", spec.MinPlayerDistance, playerPos, pos.X, pos.Y)
	}

	skulls := int(params.SkullsToSpawn)
	if _, err := entity.NewSpawner(w, ctx.Tuning, pos, skulls); err != nil {
		log.Printf("SpawnScheduler: %v", err)
		return
	}
	log.Printf("SpawnScheduler: spawner at (%.1f, %.1f) with %d skulls, difficulty %.0f, next in %.2fs", pos.X, pos.Y, skulls, params.Difficulty, params.DelayBeforeNextSpawner)
}

// SampleSpawnPosition draws points uniformly from the disk around centre
// until one lies at least minDist from avoid. If none does within
// maxSpawnSamples draws it returns the draw farthest from avoid and false.
func SampleSpawnPosition(ctx *Context, centre cp.Vector, radius float64, avoid cp.Vector, minDist float64) (cp.Vector, bool) {
	var best cp.Vector
	bestDist := math.Inf(-1)
	for range maxSpawnSamples {
		r := radius * math.Sqrt(ctx.Rand.Float64())
		theta := 2 * math.Pi * ctx.Rand.Float64()
		pos := centre.Add(cp.Vector{X: r * math.Cos(theta), Y: r * math.Sin(theta)})
		d := pos.Distance(avoid)
		if d >= minDist {
			return pos, true
		}
		if d > bestDist {
			best, bestDist = pos, d
		}
	}
	return best, false
}

var errNoPlayerTransform = errors.New("player has no transform")

func playerPosition(w *ecs.World) (cp.Vector, error) {
	e, _, err := ecs.Single(w, component.PlayerComponent.Kind())
	if err != nil {
		return cp.Vector{}, err
	}
	transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return cp.Vector{}, errNoPlayerTransform
	}
	return transform.Position, nil
}

// SpawnerSystem emits a skull from every spawner each interval and removes a
// spawner once its last skull is out.
type SpawnerSystem struct{}

func NewSpawnerSystem() *SpawnerSystem {
	return &SpawnerSystem{}
}

func (s *SpawnerSystem) Update(w *ecs.World, ctx *Context) {
	if w == nil || ctx == nil {
		return
	}

	ecs.ForEach2(w, component.SpawnerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, spawner *component.Spawner, transform *component.Transform) {
		for range spawner.Timer.Tick(ctx.Dt).TimesFinished() {
			if spawner.SkullsLeft <= 0 {
				break
			}
			spawner.SkullsLeft--
			if _, err := entity.NewFireSkull(w, ctx.Physics, ctx.Tuning, transform.Position); err != nil {
				log.Printf("Spawner: %v", err)
			}
		}
		if spawner.SkullsLeft <= 0 {
			entity.Despawn(w, ctx.Physics, e)
		}
	})
}
