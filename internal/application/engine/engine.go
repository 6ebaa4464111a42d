// Package engine provides the main loop: a frame scheduler and scene
// sequencer driving a single active scene through its
// init → play → complete → transition cycle.
//
// The loop is single-threaded and cooperative. One step runs to
// completion per display refresh: it resolves the active scene,
// performs exactly one render pass (normal or interval), ticks the
// frame clock, and computes the delay before the next step.
package engine

import (
	"errors"
	"time"

	"github.com/younwookim/canvasloop/internal/application/clock"
	"github.com/younwookim/canvasloop/internal/application/scene"
	"github.com/younwookim/canvasloop/internal/application/state"
)

// EndSceneIndex is the sceneIndex sentinel meaning the end scene is
// active.
const EndSceneIndex = -1

// Configuration errors reported by New.
var (
	ErrNoScenes  = errors.New("engine: at least one scene is required")
	ErrNoStart   = errors.New("engine: start scene is required")
	ErrNoEnd     = errors.New("engine: end scene is required")
	ErrNoContext = errors.New("engine: render context is required")
)

// Scheduler is the host's animation-callback primitive. The engine
// calls Schedule once per step and never concurrently. A delay of zero
// means "as soon as possible".
type Scheduler interface {
	Schedule(fn func(), delay time.Duration)
}

// Config assembles an Engine. Scenes, Start, End and Context are
// required; the rest default sensibly.
type Config struct {
	// Scenes is the ordered playback sequence. Order is significant:
	// completion of scenes[i] activates scenes[i+1], wrapping to 0.
	Scenes []scene.Scene

	// Start is shown before the loop begins, End upon game over.
	// Neither is part of the cyclic sequence.
	Start scene.Scene
	End   scene.Scene

	// Context is the shared render surface.
	Context scene.Context

	// Clock defaults to a system-time frame clock.
	Clock *clock.FrameClock

	// GameOver is polled every step; once true the end scene
	// activates. Defaults to never.
	GameOver func() bool

	// RenderHook, if set, runs inside the render bracket before the
	// scene or interval renderer (e.g. to clear the background).
	RenderHook func(ctx scene.Context)
}

// Engine owns the scene sequence and the frame clock and executes the
// per-frame step.
type Engine struct {
	scenes     []scene.Scene
	start, end scene.Scene
	ctx        scene.Context
	clk        *clock.FrameClock
	gameOver   func() bool
	renderHook func(scene.Context)

	sceneIndex  int
	current     scene.Scene
	phase       state.LoopPhase
	startInited bool
	sched       Scheduler
}

// New validates cfg and builds an Engine. It fails fast on a missing
// scene sequence, start scene, end scene or render context.
func New(cfg Config) (*Engine, error) {
	if len(cfg.Scenes) == 0 {
		return nil, ErrNoScenes
	}
	if cfg.Start == nil {
		return nil, ErrNoStart
	}
	if cfg.End == nil {
		return nil, ErrNoEnd
	}
	if cfg.Context == nil {
		return nil, ErrNoContext
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New(clock.SystemSource())
	}
	gameOver := cfg.GameOver
	if gameOver == nil {
		gameOver = func() bool { return false }
	}

	return &Engine{
		scenes:     cfg.Scenes,
		start:      cfg.Start,
		end:        cfg.End,
		ctx:        cfg.Context,
		clk:        clk,
		gameOver:   gameOver,
		renderHook: cfg.RenderHook,
		phase:      state.PhaseBoot,
	}, nil
}

// Step executes one frame and returns the delay the host should wait
// before the next step, clamped to zero on slow frames.
func (e *Engine) Step() time.Duration {
	frameStart := e.clk.Now()

	active := e.resolve()
	e.renderPass(active)
	e.current = active

	e.clk.Tick(frameStart)

	delay := clock.IdealFrameInterval - e.clk.Now().Sub(frameStart)
	if delay < 0 {
		delay = 0
	}
	return delay
}

// resolve picks the scene for this frame, activating a new one when
// the loop starts, the game ends, or the active scene completes.
func (e *Engine) resolve() scene.Scene {
	switch {
	case e.current == nil:
		// First ever frame.
		e.sceneIndex = 0
		e.activate(e.scenes[0])
		return e.scenes[0]

	case e.gameOver():
		if e.sceneIndex != EndSceneIndex {
			e.sceneIndex = EndSceneIndex
			e.activate(e.end)
		}
		return e.end

	case e.current.Interval().Done() && e.current.Complete():
		// Cyclic playback: past the last scene, wrap to the first.
		// The start scene is not re-run on wrap (attract-loop design).
		e.sceneIndex++
		if e.sceneIndex < 0 || e.sceneIndex >= len(e.scenes) {
			e.sceneIndex = 0
		}
		next := e.scenes[e.sceneIndex]
		e.activate(next)
		return next

	default:
		return e.current
	}
}

// activate makes s the active scene: OnInit runs, then the owned
// interval (if any) is reset so re-entered scenes start their interval
// phase from zero.
func (e *Engine) activate(s scene.Scene) {
	s.OnInit()
	if iv := s.Interval(); iv != nil {
		iv.Reset()
	}
}

// renderPass performs the frame's single render, bracketed by
// Save/Restore so a panicking renderer cannot leak transform or style
// state into later frames. The panic itself propagates to the host.
func (e *Engine) renderPass(s scene.Scene) {
	e.ctx.Save()
	defer e.ctx.Restore()

	iv := s.Interval()
	if iv.Done() {
		e.phase = state.PhaseNormal
		if e.sceneIndex == EndSceneIndex {
			e.phase = state.PhaseEnded
		}
		s.OnBeforeRender()
		if e.renderHook != nil {
			e.renderHook(e.ctx)
		}
		s.OnRender(e.ctx)
		return
	}

	e.phase = state.PhaseInterval
	if e.renderHook != nil {
		e.renderHook(e.ctx)
	}
	if iv.Renderer != nil {
		iv.Renderer(iv, e.ctx)
	}
}

// RenderStart draws the designated start scene. Hosts call it while
// assets preload, before the first Step; the scene is initialized on
// first use.
func (e *Engine) RenderStart() {
	if !e.startInited {
		e.activate(e.start)
		e.startInited = true
	}
	e.renderPass(e.start)
}

// Run drives the loop on sched until paused: each iteration executes
// one step, then waits for the scheduler to signal the next tick. The
// paused flag is checked between steps, so pausing stops the loop
// without aborting an in-flight step.
func (e *Engine) Run(sched Scheduler) {
	e.sched = sched
	for {
		delay := e.Step()
		if e.clk.Paused() {
			return
		}
		tick := make(chan struct{})
		sched.Schedule(func() { close(tick) }, delay)
		<-tick
	}
}

// Pause stops the loop after the current step.
func (e *Engine) Pause() {
	e.clk.SetPaused(true)
}

// Resume restarts a paused loop. The clock baseline moves to now so
// the paused wall time is not reported as one huge frame interval, and
// one step executes immediately to restore the cadence.
func (e *Engine) Resume() {
	if !e.clk.Paused() {
		return
	}
	e.clk.SetPaused(false)
	e.clk.ResetBaseline(e.clk.Now())
	if e.sched != nil {
		e.Run(e.sched)
		return
	}
	e.Step()
}

// KeyDown forwards a key press to the active scene and reports whether
// it was consumed. The input source must suppress default handling for
// consumed keys.
func (e *Engine) KeyDown(key int) bool {
	if e.current == nil {
		return false
	}
	return e.current.OnKeyDown(key)
}

// KeyUp forwards a key release to the active scene and reports whether
// it was consumed.
func (e *Engine) KeyUp(key int) bool {
	if e.current == nil {
		return false
	}
	return e.current.OnKeyUp(key)
}

// SceneIndex returns the active index, or EndSceneIndex when the end
// scene is showing.
func (e *Engine) SceneIndex() int { return e.sceneIndex }

// CurrentScene returns the active scene, nil before the first step.
func (e *Engine) CurrentScene() scene.Scene { return e.current }

// Clock returns the engine's frame clock.
func (e *Engine) Clock() *clock.FrameClock { return e.clk }

// Phase returns the loop phase of the most recent render pass.
func (e *Engine) Phase() state.LoopPhase { return e.phase }
