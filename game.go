package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/skulls/common"
	"github.com/milk9111/skulls/ecs"
	"github.com/milk9111/skulls/ecs/component"
	"github.com/milk9111/skulls/prefabs"
	"github.com/milk9111/skulls/session"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Game struct {
	frames int
	debug  bool

	session *session.Session
	input   *Input
	watcher *prefabs.Watcher

	menu  *Overlay
	pause *Overlay
	end   *Overlay

	palette palette
	flashes []flash
}

func NewGame(debug bool, seed *uint64) *Game {
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		log.Printf("failed to load tuning, using defaults: %v", err)
		tuning = prefabs.DefaultTuning()
	}

	s := session.New(tuning)
	if seed != nil {
		s.SetSeed(*seed)
	}

	g := &Game{
		debug:   debug,
		session: s,
		input:   NewInput(),
		palette: paletteFrom(tuning.Palette),
	}
	g.menu = NewMenuUI(g)
	g.pause = NewPauseUI(g)
	g.end = NewEndUI(g)

	if w, err := prefabs.NewWatcher(); err != nil {
		log.Printf("hot reload disabled: %v", err)
	} else {
		g.watcher = w
	}
	return g
}

func (g *Game) start() {
	if err := g.session.Start(); err != nil {
		log.Printf("failed to start: %v", err)
		return
	}
	g.flashes = g.flashes[:0]
}

func (g *Game) Update() error {
	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}
	g.pollReload()

	src := g.input.Update()
	g.session.Frame(1.0/float64(ebiten.TPS()), src)

	n := g.session.Notices()
	for _, d := range n.Detonations {
		g.flashes = append(g.flashes, flash{pos: d.Position, radius: d.Radius, left: flashTime})
	}
	if n.Died {
		log.Printf("player died, score %d", g.session.Score())
	}
	if !g.session.Paused() {
		g.flashes = updateFlashes(g.flashes, 1.0/float64(ebiten.TPS()))
	}

	if ui := g.overlay(); ui != nil {
		ui.UI.Update()
	}
	return nil
}

// pollReload applies edited tuning files. A file that fails to load leaves
// the current tuning in place.
func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change := <-g.watcher.Changes:
			tuning, err := prefabs.LoadTuning()
			if err != nil {
				log.Printf("reload %s: %v", change.Name, err)
				continue
			}
			g.session.SetTuning(tuning)
			g.palette = paletteFrom(tuning.Palette)
			log.Printf("reloaded %s", change.Name)
		case err := <-g.watcher.Errors:
			log.Printf("watch: %v", err)
		default:
			return
		}
	}
}

// overlay is the UI for the current session state, if any.
func (g *Game) overlay() *Overlay {
	switch g.session.State() {
	case session.StateMainMenu:
		return g.menu
	case session.StateEnd:
		g.end.SetDetail(fmt.Sprintf("Score %d    Kills %d", g.session.Score(), g.session.Kills()))
		return g.end
	}
	if g.session.Paused() {
		return g.pause
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	tuning := g.session.Tuning()
	screen.Fill(g.palette.background)

	v := newView(tuning.Arena, baseWidth, baseHeight)
	drawArena(screen, v, tuning.Arena, g.palette)

	if w := g.session.World(); w != nil {
		var tick uint64
		if ctx := g.session.Context(); ctx != nil {
			tick = ctx.Tick
		}
		drawWorld(screen, w, v, tuning, g.palette, g.session.Alpha(), tick)
		drawFlashes(screen, v, g.flashes, g.palette)
		if g.debug {
			drawPhysics(screen, g.session.Physics(), v)
		}
		ebitenutil.DebugPrint(screen, g.hud(w))
	}

	if ui := g.overlay(); ui != nil {
		ui.UI.Draw(screen)
	}
}

func (g *Game) hud(w *ecs.World) string {
	line := fmt.Sprintf("Score: %d    Kills: %d", g.session.Score(), g.session.Kills())
	e, _, err := ecs.Single(w, component.PlayerComponent.Kind())
	if err == nil {
		if hp, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
			line += fmt.Sprintf("    Health: %.0f", hp.Current)
		}
		if sg, ok := ecs.Get(w, e, component.ShotgunComponent.Kind()); ok {
			line += fmt.Sprintf("    Shots: %d (%s)", sg.Shots, sg.State.Phase)
		}
	}
	if g.debug {
		line += fmt.Sprintf("\nFPS: %.2f    Ticks: %d @ %d Hz    Entities: %d", ebiten.ActualFPS(), g.session.Context().Tick, common.TickRate, ecs.Len(w))
	}
	return line
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close stops the tuning watcher.
func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}
