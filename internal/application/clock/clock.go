// Package clock tracks per-frame timing state for the game loop.
//
// A single FrameClock instance is owned by the engine. Movement code
// scales per-frame displacement by Multiplier so that motion speed is
// independent of the actual frame rate.
package clock

import "time"

// IdealFrameInterval is the target frame duration at 60 FPS (1000/60 ms).
const IdealFrameInterval = time.Second / 60

// minFrameInterval clamps the observed frame interval so the multiplier
// division can never see a zero or negative elapsed time.
const minFrameInterval = time.Millisecond

// fpsSamplePeriod is how often (in frames) the max-FPS diagnostic is
// recomputed from the most recent interval.
const fpsSamplePeriod = 16

// Source provides wall-clock time. The default implementation uses
// system time; tests inject a FakeSource to control timing
// deterministically.
type Source interface {
	Now() time.Time
}

type systemSource struct{}

func (systemSource) Now() time.Time { return time.Now() }

// SystemSource returns a Source backed by time.Now.
func SystemSource() Source { return systemSource{} }

// FakeSource is a deterministic, test-friendly Source.
type FakeSource struct {
	t time.Time
}

// NewFakeSource creates a FakeSource reporting the given start time.
func NewFakeSource(start time.Time) *FakeSource {
	return &FakeSource{t: start}
}

// Now returns the current fake time.
func (s *FakeSource) Now() time.Time { return s.t }

// Set moves the fake time to t.
func (s *FakeSource) Set(t time.Time) { s.t = t }

// Advance moves the fake time forward by d.
func (s *FakeSource) Advance(d time.Duration) { s.t = s.t.Add(d) }

// FrameClock holds the per-frame timing state: a monotonically
// increasing frame counter, the wall-clock start of the current frame,
// and the derived frame-rate multiplier.
type FrameClock struct {
	src Source

	frameCount int
	frameStart time.Time
	multiplier float64
	paused     bool
	maxFPS     int
}

// New creates a FrameClock reading time from src. The multiplier starts
// at 1 and the baseline at the current time.
func New(src Source) *FrameClock {
	return &FrameClock{
		src:        src,
		frameStart: src.Now(),
		multiplier: 1,
	}
}

// Now reads the current time from the underlying source.
func (c *FrameClock) Now() time.Time { return c.src.Now() }

// Tick records the completion of one frame that started at frameStart.
// It derives the frame interval from the previous frame start (clamped
// to a 1ms minimum), updates the multiplier, advances the frame count,
// and every 16th frame recomputes the max-FPS sample.
func (c *FrameClock) Tick(frameStart time.Time) {
	interval := frameStart.Sub(c.frameStart)
	if interval < minFrameInterval {
		interval = minFrameInterval
	}

	c.multiplier = float64(interval) / float64(IdealFrameInterval)
	c.frameStart = frameStart
	c.frameCount++

	if c.frameCount%fpsSamplePeriod == 0 {
		ms := float64(interval) / float64(time.Millisecond)
		c.maxFPS = int(1000 / ms)
	}
}

// ResetBaseline moves the frame-start baseline to now without counting
// the skipped wall time as an elapsed interval. Used on resume so a
// pause does not register as one huge frame.
func (c *FrameClock) ResetBaseline(now time.Time) {
	c.frameStart = now
}

// FrameCount returns the number of completed frames. It never resets.
func (c *FrameClock) FrameCount() int { return c.frameCount }

// FrameStart returns the wall-clock start of the current frame.
func (c *FrameClock) FrameStart() time.Time { return c.frameStart }

// Multiplier returns the ratio of the last observed frame interval to
// the ideal interval. Always strictly positive.
func (c *FrameClock) Multiplier() float64 { return c.multiplier }

// MaxFPS returns the most recent frame-rate diagnostic sample.
func (c *FrameClock) MaxFPS() int { return c.maxFPS }

// SetPaused flips the paused flag. While paused the engine stops
// re-arming the next step.
func (c *FrameClock) SetPaused(paused bool) { c.paused = paused }

// Paused reports whether the loop is paused.
func (c *FrameClock) Paused() bool { return c.paused }
