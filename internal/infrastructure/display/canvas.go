// Package display adapts ebiten to the engine's render and input
// interfaces.
package display

import (
	"image/color"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// debugFontWidth is the advance width of the ebitenutil debug font.
const debugFontWidth = 6

// drawState is one entry of the canvas save stack.
type drawState struct {
	geom   ebiten.GeoM
	fill   color.Color
	stroke color.Color
	alpha  float64
}

// Canvas implements scene.Context on top of an *ebiten.Image target.
// The target is swapped every frame by the host (ebiten hands Draw a
// fresh screen image); transform and style state live here, managed by
// an explicit save stack.
type Canvas struct {
	target *ebiten.Image
	cur    drawState
	stack  []drawState
}

// NewCanvas creates a canvas with an identity transform, white styles
// and full opacity. A target must be set before drawing.
func NewCanvas() *Canvas {
	return &Canvas{
		cur: drawState{
			fill:   color.White,
			stroke: color.White,
			alpha:  1,
		},
	}
}

// SetTarget points the canvas at the image subsequent draws hit.
func (c *Canvas) SetTarget(img *ebiten.Image) { c.target = img }

// Target returns the current draw target.
func (c *Canvas) Target() *ebiten.Image { return c.target }

// Save pushes the current transform and style state.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.cur)
}

// Restore pops back to the most recently saved state. Restoring with
// an empty stack is a no-op, as on a canvas context.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.cur = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Depth returns the save-stack depth.
func (c *Canvas) Depth() int { return len(c.stack) }

// Translate offsets the transform by (dx, dy) in local coordinates.
func (c *Canvas) Translate(dx, dy float64) {
	var m ebiten.GeoM
	m.Translate(dx, dy)
	m.Concat(c.cur.geom)
	c.cur.geom = m
}

// Rotate rotates the transform by theta radians in local coordinates.
func (c *Canvas) Rotate(theta float64) {
	var m ebiten.GeoM
	m.Rotate(theta)
	m.Concat(c.cur.geom)
	c.cur.geom = m
}

// DrawImage draws img with its top-left corner at (x, y) under the
// current transform and global alpha.
func (c *Canvas) DrawImage(img *ebiten.Image, x, y float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(c.cur.geom)
	op.ColorScale.ScaleAlpha(float32(c.cur.alpha))
	c.target.DrawImage(img, op)
}

// FillRect fills an axis-aligned rectangle with the fill style. The
// transform positions the rectangle; rotation is not applied to it.
func (c *Canvas) FillRect(x, y, w, h float64) {
	ax, ay := c.cur.geom.Apply(x, y)
	ebitenutil.DrawRect(c.target, ax, ay, w, h, applyAlpha(c.cur.fill, c.cur.alpha))
}

// FillText draws s at (x, y) in the debug font.
func (c *Canvas) FillText(s string, x, y float64) {
	ax, ay := c.cur.geom.Apply(x, y)
	ebitenutil.DebugPrintAt(c.target, s, int(ax), int(ay))
}

// StrokeText draws s at (x, y). The debug font has no outline variant,
// so this matches FillText.
func (c *Canvas) StrokeText(s string, x, y float64) {
	c.FillText(s, x, y)
}

// MeasureText returns the advance width of s in pixels.
func (c *Canvas) MeasureText(s string) float64 {
	return float64(utf8.RuneCountInString(s) * debugFontWidth)
}

// SetFillStyle sets the color used by FillRect and FillText.
func (c *Canvas) SetFillStyle(col color.Color) { c.cur.fill = col }

// SetStrokeStyle sets the color used by StrokeText.
func (c *Canvas) SetStrokeStyle(col color.Color) { c.cur.stroke = col }

// SetGlobalAlpha sets the alpha multiplier for subsequent draws,
// clamped to [0, 1].
func (c *Canvas) SetGlobalAlpha(a float64) {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	c.cur.alpha = a
}

// GlobalAlpha returns the current alpha multiplier.
func (c *Canvas) GlobalAlpha() float64 { return c.cur.alpha }

// applyAlpha scales all channels of col by a (pre-multiplied alpha).
func applyAlpha(col color.Color, a float64) color.Color {
	r, g, b, al := col.RGBA()
	return color.RGBA64{
		R: uint16(float64(r) * a),
		G: uint16(float64(g) * a),
		B: uint16(float64(b) * a),
		A: uint16(float64(al) * a),
	}
}
