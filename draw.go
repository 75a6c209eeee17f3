package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/skulls/common"
	"github.com/milk9111/skulls/ecs"
	"github.com/milk9111/skulls/ecs/component"
	"github.com/milk9111/skulls/ecs/entity"
	"github.com/milk9111/skulls/prefabs"
	"golang.org/x/image/colornames"
)

const flashTime = 0.35

// view maps arena coordinates (Y up) to screen pixels (Y down), with the
// arena centred and the walls in frame.
type view struct {
	scale  float64
	cx, cy float64
}

func newView(arena prefabs.ArenaSpec, width, height float64) view {
	extent := arena.HalfWidth() + arena.TileSize
	if extent <= 0 {
		extent = 1
	}
	return view{
		scale: math.Min(width, height) / (2 * extent),
		cx:    width / 2,
		cy:    height / 2,
	}
}

func (v view) point(p cp.Vector) (float32, float32) {
	return float32(v.cx + p.X*v.scale), float32(v.cy - p.Y*v.scale)
}

func (v view) length(l float64) float32 {
	return float32(l * v.scale)
}

type palette struct {
	background color.Color
	player     color.Color
	skull      color.Color
	spawner    color.Color
	explosion  color.Color
	wall       color.Color
}

func paletteFrom(spec prefabs.PaletteSpec) palette {
	pick := func(c *prefabs.YAMLColor, fallback color.Color) color.Color {
		if c == nil || c.Color == nil {
			return fallback
		}
		return c.Color
	}
	return palette{
		background: pick(spec.Background, colornames.Black),
		player:     pick(spec.Player, colornames.Deepskyblue),
		skull:      pick(spec.Skull, colornames.Orangered),
		spawner:    pick(spec.Spawner, colornames.Mediumpurple),
		explosion:  pick(spec.Explosion, colornames.Gold),
		wall:       pick(spec.Wall, colornames.Dimgray),
	}
}

// flash is a detonation ring that fades out over flashTime.
type flash struct {
	pos    cp.Vector
	radius float64
	left   float64
}

func updateFlashes(flashes []flash, dt float64) []flash {
	out := flashes[:0]
	for _, f := range flashes {
		f.left -= dt
		if f.left > 0 {
			out = append(out, f)
		}
	}
	return out
}

func fade(c color.Color, alpha float64) color.Color {
	r, g, b, _ := c.RGBA()
	a := common.Clamp(alpha, 0, 1)
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a * 255)}
}

// interpolated blends the previous and current tick positions.
func interpolated(t *component.Transform, alpha float64) cp.Vector {
	return cp.Vector{
		X: common.Lerp(t.Previous.X, t.Position.X, alpha),
		Y: common.Lerp(t.Previous.Y, t.Position.Y, alpha),
	}
}

func drawArena(screen *ebiten.Image, v view, arena prefabs.ArenaSpec, pal palette) {
	for _, wall := range entity.ArenaWalls(arena) {
		x, y := v.point(cp.Vector{X: wall.Center.X - wall.HalfW, Y: wall.Center.Y + wall.HalfH})
		vector.DrawFilledRect(screen, x, y, v.length(2*wall.HalfW), v.length(2*wall.HalfH), pal.wall, false)
	}
}

func drawWorld(screen *ebiten.Image, w *ecs.World, v view, tuning prefabs.TuningSpec, pal palette, alpha float64, tick uint64) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.SpawnerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, sp *component.Spawner, t *component.Transform) {
		x, y := v.point(t.Position)
		vector.StrokeCircle(screen, x, y, v.length(tuning.Skull.Radius*2), 2, pal.spawner, true)
	})

	ecs.ForEach2(w, component.FireSkullComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.FireSkull, t *component.Transform) {
		x, y := v.point(interpolated(t, alpha))
		vector.DrawFilledCircle(screen, x, y, v.length(tuning.Skull.Radius), pal.skull, true)
	})

	ecs.ForEach3(w, component.PlayerComponent.Kind(), component.TransformComponent.Kind(), component.MotionComponent.Kind(), func(e ecs.Entity, p *component.Player, t *component.Transform, m *component.Motion) {
		// Blink while invulnerable.
		if !p.Invulnerability.Finished() && (tick/4)%2 == 1 {
			return
		}
		clr := pal.player
		if p.Dying {
			clr = fade(pal.player, 0.4)
		}
		pos := interpolated(t, alpha)
		x, y := v.point(pos)
		r := tuning.Player.Radius
		vector.DrawFilledCircle(screen, x, y, v.length(r), clr, true)
		fx, fy := v.point(pos.Add(m.Facing().Mult(r * 2)))
		vector.StrokeLine(screen, x, y, fx, fy, 2, clr, true)
	})
}

func drawFlashes(screen *ebiten.Image, v view, flashes []flash, pal palette) {
	for _, f := range flashes {
		x, y := v.point(f.pos)
		vector.StrokeCircle(screen, x, y, v.length(f.radius), 3, fade(pal.explosion, f.left/flashTime), true)
	}
}
