package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/mbellows/notestrike/common"
	"github.com/mbellows/notestrike/ecs"
	"github.com/mbellows/notestrike/ecs/component"
)

// RenderSystem draws a read-only snapshot of the world each displayed
// frame. It never mutates core state.
type RenderSystem struct {
	face text.Face
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{face: text.NewGoXFace(basicfont.Face7x13)}
}

var (
	colBackground = color.NRGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff}
	colPlayer     = color.NRGBA{R: 0x40, G: 0xc0, B: 0xe0, A: 0xff}
	colEnemy      = color.NRGBA{R: 0xd0, G: 0x50, B: 0x50, A: 0xff}
	colEnemyDying = color.NRGBA{R: 0x60, G: 0x30, B: 0x30, A: 0xff}
	colBoss       = color.NRGBA{R: 0xa0, G: 0x40, B: 0xc0, A: 0xff}
	colAttack     = color.NRGBA{R: 0xff, G: 0x90, B: 0x20, A: 0xc0}
	colText       = color.NRGBA{R: 0xe8, G: 0xe8, B: 0xe8, A: 0xff}
	colDim        = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	colHealth     = color.NRGBA{R: 0x50, G: 0xc0, B: 0x50, A: 0xff}
	colAmmo       = color.NRGBA{R: 0xe0, G: 0xc0, B: 0x40, A: 0xff}
)

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	screen.Fill(colBackground)

	r.drawPlayer(w, screen)
	r.drawEnemies(w, screen)
	r.drawAttacks(w, screen)
	r.drawBoss(w, screen)
	r.drawPowerup(w, screen)
	r.drawHUD(w, screen)
}

func (r *RenderSystem) drawPlayer(w *ecs.World, screen *ebiten.Image) {
	playerEnt, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	tf, _ := ecs.Get(w, playerEnt, component.TransformComponent.Kind())
	tag, _ := ecs.Get(w, playerEnt, component.PlayerTagComponent.Kind())
	if tf == nil || tag == nil {
		return
	}
	vector.DrawFilledCircle(screen, float32(tf.Pos.X), float32(tf.Pos.Y), float32(tag.HitRadius), colPlayer, true)
}

func (r *RenderSystem) drawEnemies(w *ecs.World, screen *ebiten.Image) {
	ecs.ForEach2(w,
		component.EnemyComponent.Kind(),
		component.TransformComponent.Kind(),
		func(_ ecs.Entity, enemy *component.Enemy, tf *component.Transform) {
			col := colEnemy
			if enemy.Dying {
				col = colEnemyDying
			}
			vector.DrawFilledCircle(screen, float32(tf.Pos.X), float32(tf.Pos.Y), 26, col, true)

			// Remaining token sequence, consumed prefix dimmed.
			x := tf.Pos.X - 10
			for i, token := range enemy.Tokens {
				c := colText
				if i < enemy.Progress {
					c = colDim
				}
				r.label(screen, token, x+float64(i)*28, tf.Pos.Y-44, c)
			}
		})
}

func (r *RenderSystem) drawAttacks(w *ecs.World, screen *ebiten.Image) {
	ecs.ForEach(w, component.AttackComponent.Kind(), func(_ ecs.Entity, attack *component.Attack) {
		vector.StrokeLine(screen,
			float32(attack.Origin.X), float32(attack.Origin.Y),
			float32(attack.Target.X), float32(attack.Target.Y),
			3, colAttack, true)
	})
}

func (r *RenderSystem) drawBoss(w *ecs.World, screen *ebiten.Image) {
	bossEnt, ok := ecs.First(w, component.BossComponent.Kind())
	if !ok {
		return
	}
	boss, _ := ecs.Get(w, bossEnt, component.BossComponent.Kind())
	tf, _ := ecs.Get(w, bossEnt, component.TransformComponent.Kind())
	if boss == nil || tf == nil {
		return
	}

	vector.DrawFilledCircle(screen, float32(tf.Pos.X), float32(tf.Pos.Y), 60, colBoss, true)

	switch boss.Phase {
	case component.BossCountdown:
		r.label(screen, fmt.Sprintf("%d", boss.CountdownValue), tf.Pos.X-4, tf.Pos.Y-90, colText)
	case component.BossRevealing, component.BossActive:
		if boss.TokensVisible || boss.Phase == component.BossActive {
			r.drawChallenge(screen, &boss.Challenge, tf.Pos.X-float64(len(boss.Challenge.Tokens))*16, tf.Pos.Y-100)
		}
		if boss.Phase == component.BossActive {
			// Charge bar fills toward the next attack.
			frac := common.Clamp(float64(boss.Charge)/float64(boss.ChargeTicks), 0, 1)
			vector.DrawFilledRect(screen, float32(tf.Pos.X-60), float32(tf.Pos.Y+72), float32(120*frac), 8, colAttack, false)
		}
		r.label(screen, fmt.Sprintf("HP %d", boss.Health), tf.Pos.X-20, tf.Pos.Y+90, colText)
	case component.BossDying:
		r.label(screen, "...", tf.Pos.X-8, tf.Pos.Y-90, colDim)
	}
}

func (r *RenderSystem) drawChallenge(screen *ebiten.Image, challenge *component.Challenge, x, y float64) {
	for i, token := range challenge.Tokens {
		col := colText
		if challenge.Mode == component.ModeTyping && i < challenge.Typed {
			col = colDim
		}
		if challenge.Mode == component.ModeMusic && challenge.Cleared[i] {
			col = colDim
		}
		r.label(screen, token, x+float64(i)*32, y, col)
	}
}

func (r *RenderSystem) drawPowerup(w *ecs.World, screen *ebiten.Image) {
	powerupEnt, ok := ecs.First(w, component.PowerupComponent.Kind())
	if !ok {
		return
	}
	powerup, _ := ecs.Get(w, powerupEnt, component.PowerupComponent.Kind())
	if powerup == nil {
		return
	}
	x := common.ArenaWidth - 340.0
	r.label(screen, fmt.Sprintf("powerup: %s", powerup.Effect), x, 40, colAmmo)
	r.drawChallenge(screen, &powerup.Challenge, x, 64)
	secs := float64(powerup.TimeoutTicks) / common.TickRate
	r.label(screen, fmt.Sprintf("%.1fs", secs), x, 88, colDim)
}

func (r *RenderSystem) drawHUD(w *ecs.World, screen *ebiten.Image) {
	sessionEnt, ok := ecs.First(w, component.SessionComponent.Kind())
	if !ok {
		return
	}
	session, _ := ecs.Get(w, sessionEnt, component.SessionComponent.Kind())
	if session == nil {
		return
	}

	r.label(screen, fmt.Sprintf("score %d", session.Score), 24, 28, colText)
	r.label(screen, fmt.Sprintf("level %d  wave %d/%d", session.Level, session.WaveDefeated, session.WaveQuota), 24, 52, colText)
	r.label(screen, fmt.Sprintf("combo %d  x%.1f", session.Combo.Streak, session.Combo.Multiplier()), 24, 76, colText)

	// Health bar.
	frac := common.Clamp(float64(session.Health)/float64(session.MaxHealth), 0, 1)
	vector.DrawFilledRect(screen, 24, 96, float32(240*frac), 12, colHealth, false)

	// Ammo pips.
	for i := 0; i < session.Ammo.Max; i++ {
		col := colDim
		if i < session.Ammo.Current {
			col = colAmmo
		}
		vector.DrawFilledCircle(screen, float32(30+i*22), 130, 7, col, true)
	}
}

func (r *RenderSystem) label(screen *ebiten.Image, s string, x, y float64, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, s, r.face, op)
}
