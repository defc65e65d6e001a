package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/mbellows/notestrike/ecs/component"
	"github.com/mbellows/notestrike/prefabs"
)

func main() {
	mode := flag.String("mode", "music", "game mode: music or typing")
	tier := flag.String("difficulty", prefabs.DefaultTier, "difficulty tier in difficulty.yaml")
	seed := flag.Int64("seed", 0, "rng seed, 0 means time-based")
	mute := flag.Bool("mute", false, "disable audio cues")
	debug := flag.Bool("debug", false, "enable debug overlay and tuning hot reload")
	patternScript := flag.String("pattern-script", "", "tengo script in prefabs/scripts/ overriding boss movement")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("notestrike")

	game := NewGame(GameConfig{
		Mode:          component.ParseMode(*mode),
		Tier:          *tier,
		Seed:          *seed,
		Mute:          *mute,
		Debug:         *debug,
		PatternScript: *patternScript,
	})

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
