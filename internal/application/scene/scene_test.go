package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterval_Reset(t *testing.T) {
	iv := NewInterval("ready", func(iv *Interval, ctx Context) {})
	iv.FrameCounter = 42
	iv.Complete = true

	iv.Reset()

	assert.Equal(t, 0, iv.FrameCounter)
	assert.False(t, iv.Complete)
}

func TestInterval_Done(t *testing.T) {
	var nilInterval *Interval
	assert.True(t, nilInterval.Done(), "nil interval never gates")

	iv := NewInterval("ready", nil)
	assert.False(t, iv.Done())

	iv.Complete = true
	assert.True(t, iv.Done())

	iv.Reset()
	assert.False(t, iv.Done(), "reset re-arms the gate")
}

func TestBase_Defaults(t *testing.T) {
	var b Base

	assert.False(t, b.Playable())
	assert.False(t, b.Complete())
	assert.Nil(t, b.Interval())
	assert.False(t, b.OnKeyDown(32))
	assert.False(t, b.OnKeyUp(32))
}
