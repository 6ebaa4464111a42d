package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/canvasloop/internal/application/scene"
)

// Colors for rendering
var (
	colorText   = color.RGBA{220, 220, 230, 255}
	colorPlayer = color.RGBA{100, 200, 100, 255}
	colorEnemy  = color.RGBA{200, 100, 100, 255}
	colorBullet = color.RGBA{255, 240, 180, 255}
	colorBurst  = color.RGBA{255, 180, 60, 255}
)

const readyFrames = 90

// centerText draws s horizontally centered at height y.
func centerText(ctx scene.Context, s string, screenW int, y float64) {
	x := (float64(screenW) - ctx.MeasureText(s)) / 2
	ctx.FillText(s, x, y)
}

// splashScene is the designated start scene, shown while assets load.
type splashScene struct {
	scene.Base
	w    *world
	logo *ebiten.Image
}

func (s *splashScene) OnRender(ctx scene.Context) {
	ctx.Translate(float64(s.w.screenW)/2, float64(s.w.screenH)/2)
	ctx.DrawImage(s.logo, -8, -40)
	ctx.SetFillStyle(colorText)
	ctx.FillText("WAVE BREAKER", -ctx.MeasureText("WAVE BREAKER")/2, -8)
	ctx.FillText("LOADING...", -ctx.MeasureText("LOADING...")/2, 8)
}

// attractScene is the idle title loop. It resets the world on entry
// and completes when the player presses space.
type attractScene struct {
	scene.Base
	w       *world
	started bool
}

func (s *attractScene) OnInit() {
	s.started = false
	s.w.reset()
}

func (s *attractScene) OnRender(ctx scene.Context) {
	ctx.SetFillStyle(colorText)
	centerText(ctx, "WAVE BREAKER", s.w.screenW, 80)
	if s.w.clk.FrameCount()%60 < 40 {
		centerText(ctx, "PRESS SPACE TO START", s.w.screenW, 140)
	}
}

func (s *attractScene) OnKeyDown(key int) bool {
	if key == int(ebiten.KeySpace) {
		s.started = true
		return true
	}
	return false
}

func (s *attractScene) Complete() bool { return s.started }

// playScene is the gameplay scene, gated by a READY countdown
// interval on every entry.
type playScene struct {
	scene.Base
	w        *world
	interval *scene.Interval
}

func newPlayScene(w *world) *playScene {
	s := &playScene{w: w}
	s.interval = scene.NewInterval("ready", s.renderReady)
	return s
}

// renderReady counts the interval down and marks it complete; the
// engine switches to the normal render path on the next frame.
func (s *playScene) renderReady(iv *scene.Interval, ctx scene.Context) {
	iv.FrameCounter++
	if iv.FrameCounter >= readyFrames {
		iv.Complete = true
	}

	s.renderWorld(ctx)

	ctx.SetFillStyle(colorText)
	centerText(ctx, fmt.Sprintf("WAVE %d", s.w.wave), s.w.screenW, 100)
	remaining := (readyFrames-iv.FrameCounter)/30 + 1
	centerText(ctx, fmt.Sprintf("READY... %d", remaining), s.w.screenW, 120)
}

func (s *playScene) Playable() bool            { return true }
func (s *playScene) Interval() *scene.Interval { return s.interval }

func (s *playScene) OnInit() {
	s.w.spawnWave()
}

func (s *playScene) OnBeforeRender() {
	s.w.update(s.w.clk.Multiplier())
}

func (s *playScene) OnRender(ctx scene.Context) {
	s.renderWorld(ctx)
	s.renderHUD(ctx)
}

func (s *playScene) renderWorld(ctx scene.Context) {
	w := s.w

	if player := w.sprites.Image("player"); player != nil {
		ctx.DrawImage(player, w.player.Pos.X, w.player.Pos.Y)
	}

	enemySprite := w.sprites.Image("enemy")
	for _, e := range w.enemies {
		if enemySprite != nil {
			ctx.DrawImage(enemySprite, e.Pos.X, e.Pos.Y)
		}
	}

	ctx.SetFillStyle(colorBullet)
	for _, b := range w.bullets {
		ctx.FillRect(b.Pos.X, b.Pos.Y, bulletW, bulletH)
	}

	// Bursts fade out over their lifespan.
	for _, fx := range w.effects {
		ctx.Save()
		ctx.SetGlobalAlpha(fx.Value(1.0))
		ctx.SetFillStyle(colorBurst)
		ctx.FillRect(fx.Pos.X-2, fx.Pos.Y-2, enemyW+4, enemyH+4)
		ctx.Restore()
	}
}

func (s *playScene) renderHUD(ctx scene.Context) {
	ctx.SetFillStyle(colorText)
	ctx.FillText(fmt.Sprintf("SCORE %d", s.w.score), 8, 4)
	ctx.FillText(fmt.Sprintf("LIVES %d", s.w.lives), float64(s.w.screenW)-70, 4)
}

func (s *playScene) OnKeyDown(key int) bool {
	if key == int(ebiten.KeySpace) {
		s.w.fire()
		return true
	}
	return false
}

// Complete once the wave is cleared. A game over preempts this via
// the engine's end-scene transition.
func (s *playScene) Complete() bool {
	return len(s.w.enemies) == 0
}

// resultScene shows the cleared wave for a fixed number of frames,
// then hands the loop back to the attract scene.
type resultScene struct {
	scene.Base
	w      *world
	frames int
}

func (s *resultScene) OnInit() { s.frames = 0 }

func (s *resultScene) OnBeforeRender() { s.frames++ }

func (s *resultScene) OnRender(ctx scene.Context) {
	ctx.SetFillStyle(colorText)
	centerText(ctx, "WAVE CLEARED", s.w.screenW, 100)
	centerText(ctx, fmt.Sprintf("SCORE %d", s.w.score), s.w.screenW, 120)
}

func (s *resultScene) Complete() bool { return s.frames > 120 }

// gameOverScene is the designated end scene. A key press resets the
// world, which clears the game-over condition and lets the engine
// advance back into the attract loop.
type gameOverScene struct {
	scene.Base
	w       *world
	restart bool
}

func (s *gameOverScene) OnInit() { s.restart = false }

func (s *gameOverScene) OnRender(ctx scene.Context) {
	ctx.SetFillStyle(colorText)
	centerText(ctx, "GAME OVER", s.w.screenW, 100)
	centerText(ctx, fmt.Sprintf("SCORE %d", s.w.score), s.w.screenW, 120)
	if s.w.clk.FrameCount()%60 < 40 {
		centerText(ctx, "PRESS SPACE", s.w.screenW, 160)
	}
}

func (s *gameOverScene) OnKeyDown(key int) bool {
	if key == int(ebiten.KeySpace) {
		s.w.reset()
		s.restart = true
		return true
	}
	return false
}

func (s *gameOverScene) Complete() bool { return s.restart }
