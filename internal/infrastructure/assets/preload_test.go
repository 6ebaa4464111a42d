package assets

import (
	"bytes"
	"image"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encodePNG produces a small valid PNG for the fake filesystem.
func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func TestPreloader_LoadFiresCallbackAfterAllImages(t *testing.T) {
	fsys := fstest.MapFS{
		"player.png": &fstest.MapFile{Data: encodePNG(t, 8, 8)},
		"enemy.png":  &fstest.MapFile{Data: encodePNG(t, 4, 4)},
	}

	var player, enemy *ebiten.Image
	loaded := false

	p := NewPreloader(fsys)
	p.AddImage(&player, "player.png")
	p.AddImage(&enemy, "enemy.png")
	p.OnLoad(func() {
		loaded = true
		assert.NotNil(t, player, "callback runs after every image is set")
		assert.NotNil(t, enemy)
	})

	require.NoError(t, p.Load())
	assert.True(t, loaded)
}

func TestPreloader_MissingFile(t *testing.T) {
	var dst *ebiten.Image
	loaded := false

	p := NewPreloader(fstest.MapFS{})
	p.AddImage(&dst, "missing.png")
	p.OnLoad(func() { loaded = true })

	err := p.Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing.png")
	assert.False(t, loaded, "callback must not fire on failure")
}

func TestPreloader_BadImageData(t *testing.T) {
	fsys := fstest.MapFS{
		"broken.png": &fstest.MapFile{Data: []byte("not a png")},
	}

	var dst *ebiten.Image
	p := NewPreloader(fsys)
	p.AddImage(&dst, "broken.png")

	err := p.Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "broken.png")
}

func TestPreloader_NoImages(t *testing.T) {
	loaded := false
	p := NewPreloader(fstest.MapFS{})
	p.OnLoad(func() { loaded = true })

	require.NoError(t, p.Load())
	assert.True(t, loaded)
}

func TestPrerenderer_ImageBeforeExecute(t *testing.T) {
	p := NewPrerenderer()
	p.AddRenderer("sprite", 8, 8, func(img *ebiten.Image) {})

	assert.Nil(t, p.Image("sprite"), "nothing produced before Execute")
	assert.Nil(t, p.Image("unknown"))
}
