package entity

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/skulls/common"
	"github.com/milk9111/skulls/ecs"
	"github.com/milk9111/skulls/prefabs"
)

// Wall is one static box of the arena border.
type Wall struct {
	Center       cp.Vector
	HalfW, HalfH float64
}

// ArenaWalls lays out eight boxes around the square floor: one per side and
// one per corner. Only the player collides with them.
func ArenaWalls(arena prefabs.ArenaSpec) []Wall {
	half := arena.HalfWidth()
	t := arena.TileSize / 2
	edge := half + t

	walls := make([]Wall, 0, 8)
	for _, sx := range []float64{-1, 0, 1} {
		for _, sy := range []float64{-1, 0, 1} {
			if sx == 0 && sy == 0 {
				continue
			}
			w := Wall{Center: cp.Vector{X: sx * edge, Y: sy * edge}, HalfW: t, HalfH: t}
			if sx == 0 {
				w.HalfW = half
			}
			if sy == 0 {
				w.HalfH = half
			}
			walls = append(walls, w)
		}
	}
	return walls
}

// NewArenaWalls adds the arena border to pw.
func NewArenaWalls(pw *ecs.PhysicsWorld, arena prefabs.ArenaSpec) []Wall {
	walls := ArenaWalls(arena)
	for _, wall := range walls {
		pw.AddStaticBox(wall.Center, wall.HalfW, wall.HalfH, common.GroupWall, common.GroupPlayer)
	}
	return walls
}
