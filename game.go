package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"golang.design/x/clipboard"

	"github.com/mbellows/notestrike/common"
	"github.com/mbellows/notestrike/ecs"
	"github.com/mbellows/notestrike/ecs/component"
	"github.com/mbellows/notestrike/ecs/system"
	"github.com/mbellows/notestrike/prefabs"
)

// musicKeys maps the home row onto the current level's scale degrees, low
// to high.
var musicKeys = []ebiten.Key{
	ebiten.KeyA, ebiten.KeyS, ebiten.KeyD, ebiten.KeyF,
	ebiten.KeyJ, ebiten.KeyK, ebiten.KeyL, ebiten.KeySemicolon,
}

type GameConfig struct {
	Mode          component.Mode
	Tier          string
	Seed          int64
	Mute          bool
	Debug         bool
	PatternScript string
}

type Game struct {
	config GameConfig

	world    *ecs.World
	clock    *FixedClock
	tuning   *system.Tuning
	tokens   *system.TokenSource
	director *system.DirectorSystem
	resolver *system.ResolverSystem
	render   *system.RenderSystem

	watcher *prefabs.Watcher

	paused       bool
	pauseUI      *ebitenui.UI
	clipboardOK  bool
	summaryNotes string
}

func NewGame(config GameConfig) *Game {
	g := &Game{
		config: config,
		clock:  NewFixedClock(),
		render: system.NewRenderSystem(),
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
	} else {
		g.clipboardOK = true
	}

	if config.Debug {
		watcher, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("tuning watcher unavailable: %v", err)
		} else {
			g.watcher = watcher
		}
	}

	g.buildWorld()
	g.pauseUI = NewPauseUI(g)
	return g
}

// buildWorld assembles a fresh run: session and player entities plus the
// full system chain in tick order. Called at start and on restart.
func (g *Game) buildWorld() {
	seed := g.config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	g.tuning = system.NewTuning(g.config.Tier)
	g.tokens = system.NewTokenSource(g.config.Mode, g.tuning, rng)

	w := ecs.NewWorld()

	sessionEnt := ecs.CreateEntity(w)
	spec := g.tuning.Game
	if err := ecs.Add(w, sessionEnt, component.SessionComponent.Kind(), &component.Session{
		Mode:       g.config.Mode,
		Difficulty: g.config.Tier,
		Level:      1,
		Health:     spec.Player.MaxHealth,
		MaxHealth:  spec.Player.MaxHealth,
		Ammo: component.Ammo{
			Current:       spec.Ammo.Max,
			Max:           spec.Ammo.Max,
			RechargeTicks: g.tuning.RechargeTicks(),
		},
		WaveQuota:  g.tuning.WaveQuota(1),
		SpawnTimer: g.tuning.SpawnCadenceTicks(1),
	}); err != nil {
		log.Printf("session setup: %v", err)
	}

	player := ecs.CreateEntity(w)
	_ = ecs.Add(w, player, component.TransformComponent.Kind(), &component.Transform{
		Pos: cp.Vector{X: common.ArenaWidth / 2, Y: common.ArenaHeight / 2},
	})
	_ = ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{
		HitRadius: spec.Player.HitRadius,
	})

	g.director = system.NewDirectorSystem(g.tuning, g.tokens, rng)
	g.resolver = system.NewResolverSystem(g.tuning, g.tokens)
	bossMove := system.NewBossMoveSystem(g.tuning, rng)
	if g.config.PatternScript != "" {
		script, err := system.LoadPatternScript(g.config.PatternScript)
		if err != nil {
			log.Printf("pattern script %s: %v", g.config.PatternScript, err)
		} else {
			bossMove.SetPatternScript(script)
		}
	}
	audio := system.NewAudioSystem()
	audio.Muted = g.config.Mute

	w.AddSystem(g.director)
	w.AddSystem(system.NewSpawnSystem(g.tuning, g.tokens, rng))
	w.AddSystem(g.resolver)
	w.AddSystem(system.NewBossSystem(g.tuning, g.tokens))
	w.AddSystem(bossMove)
	w.AddSystem(system.NewHomingSystem())
	w.AddSystem(system.NewContactSystem())
	w.AddSystem(system.NewAttackSystem())
	w.AddSystem(system.NewPowerupSystem(g.tuning, g.tokens, rng))
	w.AddSystem(system.NewAmmoSystem(g.tuning))
	w.AddSystem(system.NewTTLSystem())
	w.AddSystem(audio)

	g.world = w
	g.summaryNotes = ""
}

func (g *Game) session() *component.Session {
	ent, ok := ecs.First(g.world, component.SessionComponent.Kind())
	if !ok {
		return nil
	}
	session, _ := ecs.Get(g.world, ent, component.SessionComponent.Kind())
	return session
}

func (g *Game) Update() error {
	g.drainWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
		if !g.paused {
			// Paused wall time must not turn into catch-up ticks.
			g.clock.Rebase(time.Now())
		}
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	session := g.session()
	if session == nil {
		return nil
	}

	if session.GameOver {
		g.updateGameOver(session)
		return nil
	}
	if session.LevelComplete {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.director.AdvanceLevel(g.world)
			g.clock.Rebase(time.Now())
		}
		return nil
	}

	g.readTokens(session)

	steps := g.clock.Advance(time.Now())
	for i := 0; i < steps; i++ {
		g.world.Update()
	}
	return nil
}

func (g *Game) updateGameOver(session *component.Session) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.buildWorld()
		g.clock.Rebase(time.Now())
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) && session.Summary != nil {
		text := summaryText(session.Summary)
		if g.clipboardOK {
			clipboard.Write(clipboard.FmtText, []byte(text))
			g.summaryNotes = "copied"
		} else {
			g.summaryNotes = "clipboard unavailable"
		}
	}
}

func summaryText(s *component.Summary) string {
	return fmt.Sprintf("notestrike: score %d, level %d, max combo %d, %s/%s",
		s.FinalScore, s.LevelReached, s.MaxCombo, s.Mode, s.Difficulty)
}

// readTokens converts just-pressed keys into resolver input.
func (g *Game) readTokens(session *component.Session) {
	if session.Mode == component.ModeTyping {
		for key := ebiten.KeyA; key <= ebiten.KeyZ; key++ {
			if inpututil.IsKeyJustPressed(key) {
				g.resolver.Enqueue(string(rune('A' + int(key-ebiten.KeyA))))
			}
		}
		return
	}

	notes := g.tokens.ScaleForLevel(session.Level).Notes
	for i, key := range musicKeys {
		if i >= len(notes) {
			break
		}
		if inpututil.IsKeyJustPressed(key) {
			g.resolver.Enqueue(notes[i])
		}
	}
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	reload := false
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("tuning change: %s", name)
			reload = true
		case err := <-g.watcher.Errors:
			log.Printf("tuning watcher: %v", err)
			return
		default:
			if reload {
				g.tuning.Reload()
			}
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)

	session := g.session()
	switch {
	case g.paused:
		g.pauseUI.Draw(screen)
	case session != nil && session.GameOver:
		g.drawGameOver(screen, session)
	case session != nil && session.LevelComplete:
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LEVEL %d CLEAR - press Enter", session.Level),
			int(common.ArenaWidth)/2-110, int(common.ArenaHeight)/2)
	}

	if g.config.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("tick %d  fps %.1f", g.world.Tick(), ebiten.ActualFPS()))
	}
}

func (g *Game) drawGameOver(screen *ebiten.Image, session *component.Session) {
	x := int(common.ArenaWidth)/2 - 140
	y := int(common.ArenaHeight)/2 - 60
	ebitenutil.DebugPrintAt(screen, "GAME OVER", x, y)
	if s := session.Summary; s != nil {
		ebitenutil.DebugPrintAt(screen, summaryText(s), x, y+24)
	}
	ebitenutil.DebugPrintAt(screen, "Enter: restart    C: copy result", x, y+48)
	if g.summaryNotes != "" {
		ebitenutil.DebugPrintAt(screen, g.summaryNotes, x, y+72)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.ArenaWidth, common.ArenaHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
