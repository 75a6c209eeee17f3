package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/skulls/common"
	"github.com/milk9111/skulls/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "draw physics shapes and frame stats")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	tuningDir := flag.String("tuning", prefabs.Dir, "directory holding tuning.yaml and scripts/ overrides")
	seed := flag.Uint64("seed", 0, "fixed random seed for spawn positions (0 picks one per game)")
	flag.Parse()

	prefabs.Dir = *tuningDir

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetTPS(common.TickRate)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("Exploding Skulls")

	var fixed *uint64
	if *seed != 0 {
		fixed = seed
	}
	game := NewGame(*debug, fixed)
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Print(err)
	}
}
