package system

import "github.com/milk9111/skulls/ecs"

// ScoreSystem sums this tick's kills, rewarding deeper chains, and commits
// the total once.
type ScoreSystem struct{}

func NewScoreSystem() *ScoreSystem {
	return &ScoreSystem{}
}

func (s *ScoreSystem) Update(w *ecs.World, ctx *Context) {
	if ctx == nil {
		return
	}

	var total int64
	for _, evt := range ctx.Scores.Drain() {
		total += ScoreFor(ctx.Tuning.Score.PerSkull, ctx.Tuning.Score.PerChain, evt.Chain)
	}
	ctx.Score += total
}

func ScoreFor(perSkull, perChain int64, chain uint64) int64 {
	return perSkull + perChain*int64(chain)
}
