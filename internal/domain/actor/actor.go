// Package actor provides the per-frame update/render/expire contracts
// for game objects.
//
// The hierarchy is flat: Base, Enemy and Effect are distinct types
// implementing the Actor interface, not subclasses. Games embed one of
// them and override what they need.
package actor

import (
	"time"

	"github.com/younwookim/canvasloop/internal/application/scene"
)

// Actor is the capability set shared by all game objects.
type Actor interface {
	// Update advances the actor by one frame. multiplier is the frame
	// clock's ratio of actual to ideal frame interval; all displacement
	// must scale by it so motion speed is frame-rate independent.
	Update(multiplier float64)

	// Render draws the actor onto ctx.
	Render(ctx scene.Context)

	// Expired reports whether the owner should remove this actor.
	Expired() bool
}

// FrameTimer supplies the current frame's start time. Satisfied by
// *clock.FrameClock.
type FrameTimer interface {
	FrameStart() time.Time
}

// Base is a plain positioned actor. It never expires; removal is the
// owner's responsibility.
type Base struct {
	Pos Vec
	Vel Vec
}

// Update applies velocity scaled by the frame multiplier.
func (a *Base) Update(multiplier float64) {
	a.Pos = a.Pos.Add(a.Vel.Scale(multiplier))
}

// Render is a no-op; concrete actors override it.
func (a *Base) Render(ctx scene.Context) {}

// Expired always reports false for the base actor.
func (a *Base) Expired() bool { return false }

// Enemy is a destructible actor.
type Enemy struct {
	Base
	Alive bool
}

// NewEnemy creates a live enemy at pos.
func NewEnemy(pos Vec) *Enemy {
	return &Enemy{Base: Base{Pos: pos}, Alive: true}
}

// Hit applies force to the enemy and reports whether it was destroyed.
// The base enemy ignores force and always dies; variants with health
// pools consume it and may return false while still alive.
func (e *Enemy) Hit(force int) bool {
	e.Alive = false
	return true
}

// Expired reports true once the enemy is no longer alive.
func (e *Enemy) Expired() bool { return !e.Alive }

// Effect is a time-bounded actor, typically a fade-out such as an
// explosion. Its lifetime is measured against the frame clock rather
// than raw wall time so that expiry lines up with frame boundaries.
type Effect struct {
	Base
	Lifespan time.Duration

	timer FrameTimer
	start time.Time
}

// NewEffect creates an effect at pos that expires lifespan after the
// current frame start.
func NewEffect(pos Vec, lifespan time.Duration, timer FrameTimer) *Effect {
	return &Effect{
		Base:     Base{Pos: pos},
		Lifespan: lifespan,
		timer:    timer,
		start:    timer.FrameStart(),
	}
}

// Expired reports true once the effect has outlived its lifespan.
func (e *Effect) Expired() bool {
	return e.timer.FrameStart().Sub(e.start) > e.Lifespan
}

// Value linearly fades v down to 0 over the effect's lifespan, clamped
// to [0, v] for any elapsed time including negative clock skew.
func (e *Effect) Value(v float64) float64 {
	elapsed := e.timer.FrameStart().Sub(e.start)
	if elapsed <= 0 {
		return v
	}
	if elapsed >= e.Lifespan {
		return 0
	}
	return v * (1 - float64(elapsed)/float64(e.Lifespan))
}
