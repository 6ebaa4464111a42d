// Package assets provides startup-time image preloading and
// off-screen prerendering for scene renderers. Both run before the
// main loop begins.
package assets

import (
	"fmt"
	"image"
	"io/fs"

	_ "image/png" // registered for preloaded sprites

	"github.com/hajimehoshi/ebiten/v2"
)

// Preloader registers images to decode from a filesystem and fires a
// callback once every registered image has loaded.
type Preloader struct {
	fsys    fs.FS
	pending []pendingImage
	onLoad  func()
}

type pendingImage struct {
	dst  **ebiten.Image
	path string
}

// NewPreloader creates a preloader reading from fsys.
func NewPreloader(fsys fs.FS) *Preloader {
	return &Preloader{fsys: fsys}
}

// AddImage registers path for loading; the decoded image is stored
// into dst.
func (p *Preloader) AddImage(dst **ebiten.Image, path string) {
	p.pending = append(p.pending, pendingImage{dst: dst, path: path})
}

// OnLoad registers fn to run once all registered images have loaded.
func (p *Preloader) OnLoad(fn func()) {
	p.onLoad = fn
}

// Load decodes every registered image. On success the OnLoad callback
// fires; on failure loading stops at the first broken image.
func (p *Preloader) Load() error {
	for _, img := range p.pending {
		f, err := p.fsys.Open(img.path)
		if err != nil {
			return fmt.Errorf("failed to open image %s: %w", img.path, err)
		}
		decoded, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("failed to decode image %s: %w", img.path, err)
		}
		*img.dst = ebiten.NewImageFromImage(decoded)
	}

	if p.onLoad != nil {
		p.onLoad()
	}
	return nil
}
