package scene

// IntervalRenderer draws one frame of an interval phase. The renderer
// owns the interval's progress: it advances FrameCounter and flips
// Complete when the phase is over.
type IntervalRenderer func(iv *Interval, ctx Context)

// Interval is a resettable sub-state representing a transient rendering
// phase (e.g. a "press key to continue" banner) that blocks normal
// scene progression until complete.
//
// Interval is a dumb flag holder: apart from Reset it owns no
// mutation. The engine invokes Renderer once per frame while the
// interval is active, and the renderer decides when to mark it
// complete.
type Interval struct {
	Label        string
	Renderer     IntervalRenderer
	FrameCounter int
	Complete     bool
}

// NewInterval creates an interval with the given label and renderer.
func NewInterval(label string, renderer IntervalRenderer) *Interval {
	return &Interval{Label: label, Renderer: renderer}
}

// Reset zeroes the frame counter and clears the complete flag. Called
// every time the owning scene is (re-)initialized.
func (iv *Interval) Reset() {
	iv.FrameCounter = 0
	iv.Complete = false
}

// Done reports whether the interval no longer gates the scene. A nil
// interval is trivially done.
func (iv *Interval) Done() bool {
	return iv == nil || iv.Complete
}
