package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/canvasloop/internal/application/clock"
	"github.com/younwookim/canvasloop/internal/domain/actor"
	"github.com/younwookim/canvasloop/internal/infrastructure/assets"
)

// Gameplay tuning
const (
	playerSpeed    = 3.0
	bulletSpeed    = 5.0
	enemyFallSpeed = 0.4
	enemyDrift     = 0.6
	maxBullets     = 3

	playerW, playerH = 16, 16
	enemyW, enemyH   = 12, 10
	bulletW, bulletH = 2, 6

	burstLifespan = 400 * time.Millisecond
)

// bullet is a player shot. It expires when spent on an enemy or once
// it leaves the top of the screen.
type bullet struct {
	actor.Base
	spent bool
}

func (b *bullet) Expired() bool {
	return b.spent || b.Pos.Y < -bulletH
}

// world holds the gameplay state shared by the demo scenes.
type world struct {
	clk     *clock.FrameClock
	sprites *assets.Prerenderer

	screenW int
	screenH int

	score int
	lives int
	wave  int

	player  actor.Base
	enemies []*actor.Enemy
	bullets []*bullet
	effects []*actor.Effect
}

func newWorld(clk *clock.FrameClock, sprites *assets.Prerenderer, screenW, screenH int) *world {
	w := &world{
		clk:     clk,
		sprites: sprites,
		screenW: screenW,
		screenH: screenH,
	}
	w.reset()
	return w
}

// reset returns the world to its attract-mode state.
func (w *world) reset() {
	w.score = 0
	w.lives = 3
	w.wave = 0
	w.enemies = nil
	w.bullets = nil
	w.effects = nil
}

func (w *world) gameOver() bool {
	return w.lives <= 0
}

// spawnWave places the next wave of enemies and resets the player.
func (w *world) spawnWave() {
	w.wave++
	w.enemies = nil
	w.bullets = nil
	w.effects = nil

	speed := enemyFallSpeed + 0.1*float64(w.wave-1)
	for row := 0; row < 2; row++ {
		for col := 0; col < 6; col++ {
			e := actor.NewEnemy(actor.Vec{
				X: float64(24 + col*48),
				Y: float64(16 + row*20),
			})
			drift := enemyDrift
			if (row+col)%2 == 1 {
				drift = -enemyDrift
			}
			e.Vel = actor.Vec{X: drift, Y: speed}
			w.enemies = append(w.enemies, e)
		}
	}

	w.player.Pos = actor.Vec{X: float64(w.screenW-playerW) / 2, Y: float64(w.screenH - playerH - 8)}
	w.player.Vel = actor.Vec{}
}

// fire spawns a bullet from the player if under the shot cap.
func (w *world) fire() {
	if len(w.bullets) >= maxBullets {
		return
	}
	b := &bullet{}
	b.Pos = actor.Vec{X: w.player.Pos.X + (playerW-bulletW)/2, Y: w.player.Pos.Y - bulletH}
	b.Vel = actor.Vec{Y: -bulletSpeed}
	w.bullets = append(w.bullets, b)
}

// update advances all actors by one frame. multiplier keeps world
// speed constant across irregular frame intervals.
func (w *world) update(multiplier float64) {
	vx := 0.0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		vx -= playerSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		vx += playerSpeed
	}
	w.player.Vel = actor.Vec{X: vx}
	w.player.Update(multiplier)
	if w.player.Pos.X < 0 {
		w.player.Pos.X = 0
	}
	if maxX := float64(w.screenW - playerW); w.player.Pos.X > maxX {
		w.player.Pos.X = maxX
	}

	for _, b := range w.bullets {
		b.Update(multiplier)
	}

	for _, e := range w.enemies {
		e.Update(multiplier)
		if e.Pos.X < 0 || e.Pos.X > float64(w.screenW-enemyW) {
			e.Vel.X = -e.Vel.X
		}
		if e.Pos.Y > float64(w.screenH) {
			// Slipped past the player.
			e.Alive = false
			w.lives--
		}
	}

	w.resolveHits()
	w.removeExpired()
}

// resolveHits destroys enemies struck by bullets and spawns a fading
// burst effect in their place.
func (w *world) resolveHits() {
	for _, b := range w.bullets {
		if b.spent {
			continue
		}
		for _, e := range w.enemies {
			if !e.Alive {
				continue
			}
			if overlaps(b.Pos.X, b.Pos.Y, bulletW, bulletH, e.Pos.X, e.Pos.Y, enemyW, enemyH) {
				if e.Hit(1) {
					w.score += 100
					burst := actor.NewEffect(e.Pos, burstLifespan, w.clk)
					w.effects = append(w.effects, burst)
				}
				b.spent = true
				break
			}
		}
	}
}

func (w *world) removeExpired() {
	w.enemies = filterExpired(w.enemies)
	w.bullets = filterExpired(w.bullets)
	w.effects = filterExpired(w.effects)
}

// filterExpired compacts a slice in place, dropping expired actors.
func filterExpired[T actor.Actor](list []T) []T {
	kept := list[:0]
	for _, a := range list {
		if !a.Expired() {
			kept = append(kept, a)
		}
	}
	return kept
}

func overlaps(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && ax+aw > bx && ay < by+bh && ay+ah > by
}
