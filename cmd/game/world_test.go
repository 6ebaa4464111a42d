package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/canvasloop/internal/application/clock"
	"github.com/younwookim/canvasloop/internal/domain/actor"
	"github.com/younwookim/canvasloop/internal/infrastructure/assets"
)

func newTestWorld() (*world, *clock.FakeSource) {
	src := clock.NewFakeSource(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	clk := clock.New(src)
	return newWorld(clk, assets.NewPrerenderer(), 320, 240), src
}

func TestWorld_SpawnWave(t *testing.T) {
	w, _ := newTestWorld()

	w.spawnWave()

	assert.Equal(t, 1, w.wave)
	assert.Len(t, w.enemies, 12)
	assert.Empty(t, w.bullets)
	assert.InDelta(t, float64(320-playerW)/2, w.player.Pos.X, 1e-9)
}

func TestWorld_FireCapped(t *testing.T) {
	w, _ := newTestWorld()
	w.spawnWave()

	for i := 0; i < 10; i++ {
		w.fire()
	}

	assert.Len(t, w.bullets, maxBullets)
}

func TestWorld_ResolveHits(t *testing.T) {
	w, _ := newTestWorld()
	w.spawnWave()
	w.enemies = w.enemies[:1]
	e := w.enemies[0]

	b := &bullet{}
	b.Pos = e.Pos
	w.bullets = append(w.bullets, b)

	w.resolveHits()

	assert.False(t, e.Alive)
	assert.True(t, b.spent)
	assert.Equal(t, 100, w.score)
	assert.Len(t, w.effects, 1, "burst spawned where the enemy died")

	w.removeExpired()
	assert.Empty(t, w.enemies)
	assert.Empty(t, w.bullets)
}

func TestWorld_BurstExpires(t *testing.T) {
	w, src := newTestWorld()
	w.effects = append(w.effects, actor.NewEffect(actor.Vec{}, burstLifespan, w.clk))

	w.removeExpired()
	assert.Len(t, w.effects, 1)

	// Advance the frame clock past the burst lifespan.
	src.Advance(burstLifespan + time.Millisecond)
	w.clk.Tick(src.Now())

	w.removeExpired()
	assert.Empty(t, w.effects)
}

func TestWorld_GameOver(t *testing.T) {
	w, _ := newTestWorld()

	assert.False(t, w.gameOver())
	w.lives = 0
	assert.True(t, w.gameOver())

	w.reset()
	assert.False(t, w.gameOver())
	assert.Equal(t, 0, w.score)
}

func TestBullet_ExpiresOffscreen(t *testing.T) {
	b := &bullet{}
	b.Pos = actor.Vec{X: 10, Y: 50}
	assert.False(t, b.Expired())

	b.Pos.Y = -bulletH - 1
	assert.True(t, b.Expired())
}
