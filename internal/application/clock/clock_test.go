package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTick_MultiplierFromInterval(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	src := NewFakeSource(start)
	c := New(src)

	// An exactly ideal interval yields a multiplier of 1.
	src.Advance(IdealFrameInterval)
	c.Tick(src.Now())
	assert.InDelta(t, 1.0, c.Multiplier(), 1e-9)

	// A doubled interval yields a multiplier of 2.
	src.Advance(2 * IdealFrameInterval)
	c.Tick(src.Now())
	assert.InDelta(t, 2.0, c.Multiplier(), 1e-9)
}

func TestTick_ClampsZeroInterval(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	src := NewFakeSource(start)
	c := New(src)

	// No time elapsed: interval clamps to 1ms, multiplier stays positive.
	c.Tick(src.Now())
	assert.Greater(t, c.Multiplier(), 0.0)
	assert.InDelta(t, float64(time.Millisecond)/float64(IdealFrameInterval), c.Multiplier(), 1e-9)
}

func TestTick_ClampsBackwardClock(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	src := NewFakeSource(start)
	c := New(src)

	// Clock skew: frame start earlier than the previous one.
	src.Set(start.Add(-time.Second))
	c.Tick(src.Now())
	assert.Greater(t, c.Multiplier(), 0.0)
}

func TestTick_FrameCountMonotonic(t *testing.T) {
	src := NewFakeSource(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	c := New(src)

	for i := 1; i <= 100; i++ {
		src.Advance(IdealFrameInterval)
		c.Tick(src.Now())
		assert.Equal(t, i, c.FrameCount())
	}
}

func TestTick_MaxFPSSampledEvery16Frames(t *testing.T) {
	src := NewFakeSource(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	c := New(src)

	// 15 frames at 20ms: sample not yet taken.
	for i := 0; i < 15; i++ {
		src.Advance(20 * time.Millisecond)
		c.Tick(src.Now())
	}
	assert.Equal(t, 0, c.MaxFPS())

	// 16th frame at 20ms: floor(1000/20) = 50.
	src.Advance(20 * time.Millisecond)
	c.Tick(src.Now())
	assert.Equal(t, 50, c.MaxFPS())

	// Sample holds until the next 16-frame boundary.
	src.Advance(10 * time.Millisecond)
	c.Tick(src.Now())
	assert.Equal(t, 50, c.MaxFPS())
}

func TestResetBaseline_ExcludesSkippedTime(t *testing.T) {
	src := NewFakeSource(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	c := New(src)

	// A long pause, then a baseline reset followed by one ideal frame.
	src.Advance(5 * time.Second)
	c.ResetBaseline(src.Now())
	src.Advance(IdealFrameInterval)
	c.Tick(src.Now())

	assert.InDelta(t, 1.0, c.Multiplier(), 1e-9)
}

func TestPausedFlag(t *testing.T) {
	c := New(NewFakeSource(time.Now()))

	assert.False(t, c.Paused())
	c.SetPaused(true)
	assert.True(t, c.Paused())
	c.SetPaused(false)
	assert.False(t, c.Paused())
}
