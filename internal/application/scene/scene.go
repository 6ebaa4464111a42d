// Package scene defines the Scene contract for game screens and the
// Interval sub-state used for transient phases such as level-start
// countdowns.
//
// Each game screen (splash, attract, playing, result, game over)
// implements the Scene interface. The engine drives exactly one active
// scene per frame and decides between the scene's normal render path
// and its interval render path.
package scene

// Scene represents a single unit of game state.
//
// The engine calls OnInit each time the scene becomes active (including
// revisits after cyclic wrap-around), then renders it once per frame.
// While the scene owns an Interval that is not complete, the interval
// renderer runs instead of OnBeforeRender/OnRender. Complete is polled
// every frame to decide whether to advance to the next scene.
type Scene interface {
	// Playable reports whether actor updates should run while this
	// scene is active. The owning game applies the policy; the engine
	// only exposes it.
	Playable() bool

	// OnInit is called when the scene becomes the active scene.
	OnInit()

	// OnBeforeRender runs before OnRender on normal-path frames.
	OnBeforeRender()

	// OnRender draws the scene onto ctx.
	OnRender(ctx Context)

	// OnKeyDown handles a key press, returning whether the key was
	// consumed. Consumed keys must not propagate to the host.
	OnKeyDown(key int) bool

	// OnKeyUp handles a key release, returning whether the key was
	// consumed.
	OnKeyUp(key int) bool

	// Complete reports whether the engine should advance to the next
	// scene. Only consulted once the interval (if any) is complete.
	Complete() bool

	// Interval returns the scene's transient sub-state, or nil if the
	// scene has none.
	Interval() *Interval
}

// Base provides do-nothing defaults for the Scene interface. Concrete
// scenes embed it and override what they need.
type Base struct{}

func (Base) Playable() bool      { return false }
func (Base) OnInit()             {}
func (Base) OnBeforeRender()     {}
func (Base) OnRender(Context)    {}
func (Base) OnKeyDown(int) bool  { return false }
func (Base) OnKeyUp(int) bool    { return false }
func (Base) Complete() bool      { return false }
func (Base) Interval() *Interval { return nil }
