package display

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeySink receives key transitions as numeric codes and reports
// whether each key was consumed. Satisfied by *engine.Engine.
type KeySink interface {
	KeyDown(key int) bool
	KeyUp(key int) bool
}

// Keyboard polls ebiten key state once per frame and forwards
// edge transitions to a KeySink. Key codes are the numeric values of
// ebiten.Key. Ebiten has no default key handling to suppress, so the
// consumed flag is only surfaced for callers that track it.
type Keyboard struct {
	pressed  []ebiten.Key
	released []ebiten.Key
}

// NewKeyboard creates a keyboard adapter.
func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// Dispatch forwards this frame's key transitions to sink.
func (k *Keyboard) Dispatch(sink KeySink) {
	k.pressed = inpututil.AppendJustPressedKeys(k.pressed[:0])
	for _, key := range k.pressed {
		sink.KeyDown(int(key))
	}

	k.released = inpututil.AppendJustReleasedKeys(k.released[:0])
	for _, key := range k.released {
		sink.KeyUp(int(key))
	}
}
