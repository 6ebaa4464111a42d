package assets

import "github.com/hajimehoshi/ebiten/v2"

// Prerenderer produces named off-screen images by running registered
// renderers once, typically at startup. Scene renderers then draw the
// results instead of repainting procedural sprites every frame.
type Prerenderer struct {
	renderers []prerenderEntry
	images    map[string]*ebiten.Image
}

type prerenderEntry struct {
	id   string
	w, h int
	fn   func(img *ebiten.Image)
}

// NewPrerenderer creates an empty prerenderer.
func NewPrerenderer() *Prerenderer {
	return &Prerenderer{images: make(map[string]*ebiten.Image)}
}

// AddRenderer registers fn to paint a w×h image stored under id.
func (p *Prerenderer) AddRenderer(id string, w, h int, fn func(img *ebiten.Image)) {
	p.renderers = append(p.renderers, prerenderEntry{id: id, w: w, h: h, fn: fn})
}

// Execute runs every registered renderer onto a fresh image.
func (p *Prerenderer) Execute() {
	for _, r := range p.renderers {
		img := ebiten.NewImage(r.w, r.h)
		r.fn(img)
		p.images[r.id] = img
	}
}

// Image returns the prerendered image for id, or nil if Execute has
// not produced it.
func (p *Prerenderer) Image(id string) *ebiten.Image {
	return p.images[id]
}
