package scene

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Context is the 2D drawing surface handed to render hooks. It mirrors
// a canvas-style context: an explicit save/restore stack bracketing
// transform and style state, plus image and text primitives.
//
// Renderers must not rely on state surviving across frames; the engine
// brackets every render pass with Save/Restore so one renderer cannot
// leak transforms or styles into another.
type Context interface {
	// Save pushes the current transform and style state.
	Save()
	// Restore pops back to the most recently saved state.
	Restore()

	// Translate offsets the current transform by (dx, dy).
	Translate(dx, dy float64)
	// Rotate rotates the current transform by theta radians.
	Rotate(theta float64)

	// DrawImage draws img with its top-left corner at (x, y) under the
	// current transform and alpha.
	DrawImage(img *ebiten.Image, x, y float64)

	// FillRect fills an axis-aligned rectangle with the fill style.
	FillRect(x, y, w, h float64)

	// FillText draws s at (x, y) using the fill style.
	FillText(s string, x, y float64)
	// StrokeText draws s at (x, y) using the stroke style.
	StrokeText(s string, x, y float64)
	// MeasureText returns the advance width of s in pixels.
	MeasureText(s string) float64

	// SetFillStyle sets the color used by FillRect and FillText.
	SetFillStyle(c color.Color)
	// SetStrokeStyle sets the color used by StrokeText.
	SetStrokeStyle(c color.Color)
	// SetGlobalAlpha sets the alpha multiplier applied to subsequent
	// draws, clamped to [0, 1].
	SetGlobalAlpha(a float64)
}
