package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadGame(t *testing.T) {
	fsys := fstest.MapFS{
		"game.yaml": &fstest.MapFile{Data: []byte(`
display:
  screenWidth: 640
  screenHeight: 480
  scale: 1
  framerate: 30
window:
  title: Test Game
`)},
	}

	cfg, err := NewFSLoader(fsys).LoadGame()
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.Display.ScreenWidth)
	assert.Equal(t, 480, cfg.Display.ScreenHeight)
	assert.Equal(t, 1, cfg.Display.Scale)
	assert.Equal(t, 30, cfg.Display.Framerate)
	assert.Equal(t, "Test Game", cfg.Window.Title)
}

func TestLoadGame_Defaults(t *testing.T) {
	fsys := fstest.MapFS{
		"game.yaml": &fstest.MapFile{Data: []byte(`window: {}`)},
	}

	cfg, err := NewFSLoader(fsys).LoadGame()
	require.NoError(t, err)

	assert.Equal(t, 320, cfg.Display.ScreenWidth)
	assert.Equal(t, 240, cfg.Display.ScreenHeight)
	assert.Equal(t, 2, cfg.Display.Scale)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, "canvasloop", cfg.Window.Title)
}

func TestLoadGame_MissingFile(t *testing.T) {
	_, err := NewFSLoader(fstest.MapFS{}).LoadGame()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "game.yaml")
}

func TestLoadGame_MalformedYAML(t *testing.T) {
	fsys := fstest.MapFS{
		"game.yaml": &fstest.MapFile{Data: []byte("display: [not a map")},
	}

	_, err := NewFSLoader(fsys).LoadGame()
	assert.Error(t, err)
}
