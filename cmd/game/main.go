// Command game is a demo shooter built on the canvasloop engine: an
// attract loop, an interval-gated play scene, and a game-over branch.
package main

import (
	"image/color"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/canvasloop/internal/application/clock"
	"github.com/younwookim/canvasloop/internal/application/engine"
	"github.com/younwookim/canvasloop/internal/application/scene"
	"github.com/younwookim/canvasloop/internal/infrastructure/assets"
	"github.com/younwookim/canvasloop/internal/infrastructure/config"
	"github.com/younwookim/canvasloop/internal/infrastructure/display"
)

var colorBG = color.RGBA{26, 26, 46, 255}

// App adapts the engine to ebiten: ebiten paces the frames, so the
// step's delay hint is unused, and the canvas target is re-pointed at
// each fresh screen image.
type App struct {
	eng     *engine.Engine
	canvas  *display.Canvas
	keys    *display.Keyboard
	screenW int
	screenH int

	booted     bool
	resumeNext bool
}

// Update handles input. Implements ebiten.Game interface.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if a.eng.Clock().Paused() {
			a.resumeNext = true
		} else {
			a.eng.Pause()
		}
		return nil
	}
	if !a.eng.Clock().Paused() {
		a.keys.Dispatch(a.eng)
	}
	return nil
}

// Draw executes one engine step onto the screen. Implements
// ebiten.Game interface.
func (a *App) Draw(screen *ebiten.Image) {
	a.canvas.SetTarget(screen)

	if !a.booted {
		// One splash frame; a host streaming assets would call
		// RenderStart until its preloader finished.
		a.eng.RenderStart()
		a.booted = true
		return
	}

	if a.eng.Clock().Paused() {
		if a.resumeNext {
			a.resumeNext = false
			a.eng.Resume() // resets the clock baseline and runs one step
			return
		}
		ebitenutil.DebugPrintAt(screen, "PAUSED", a.screenW/2-18, a.screenH/2)
		return
	}

	a.eng.Step()
}

// Layout returns the game's logical screen dimensions. Implements
// ebiten.Game interface.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.screenW, a.screenH
}

// registerSprites prerenders the procedural sprites the scenes draw.
func registerSprites(pre *assets.Prerenderer) {
	pre.AddRenderer("player", playerW, playerH, func(img *ebiten.Image) {
		ebitenutil.DrawRect(img, 0, 6, playerW, playerH-6, colorPlayer)
		ebitenutil.DrawRect(img, playerW/2-2, 0, 4, 8, colorPlayer)
	})
	pre.AddRenderer("enemy", enemyW, enemyH, func(img *ebiten.Image) {
		ebitenutil.DrawRect(img, 0, 0, enemyW, enemyH, colorEnemy)
		ebitenutil.DrawRect(img, 2, 2, 2, 2, color.Black)
		ebitenutil.DrawRect(img, enemyW-4, 2, 2, 2, color.Black)
	})
}

func main() {
	// Load configuration from the embedded filesystem.
	cfgFS, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	cfg, err := config.NewFSLoader(cfgFS).LoadGame()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	clk := clock.New(clock.SystemSource())
	canvas := display.NewCanvas()
	sprites := assets.NewPrerenderer()
	registerSprites(sprites)

	w := newWorld(clk, sprites, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)

	// Preload embedded art, then prerender the procedural sprites.
	artFS, err := fs.Sub(assetFS, "assets")
	if err != nil {
		log.Fatalf("Failed to get asset subfs: %v", err)
	}
	var logo *ebiten.Image
	pre := assets.NewPreloader(artFS)
	pre.AddImage(&logo, "logo.png")
	pre.OnLoad(sprites.Execute)
	if err := pre.Load(); err != nil {
		log.Fatalf("Failed to preload assets: %v", err)
	}

	eng, err := engine.New(engine.Config{
		Scenes: []scene.Scene{
			&attractScene{w: w},
			newPlayScene(w),
			&resultScene{w: w},
		},
		Start:    &splashScene{w: w, logo: logo},
		End:      &gameOverScene{w: w},
		Context:  canvas,
		Clock:    clk,
		GameOver: w.gameOver,
		RenderHook: func(ctx scene.Context) {
			ctx.SetFillStyle(colorBG)
			ctx.FillRect(0, 0, float64(cfg.Display.ScreenWidth), float64(cfg.Display.ScreenHeight))
		},
	})
	if err != nil {
		log.Fatalf("Failed to build engine: %v", err)
	}

	app := &App{
		eng:     eng,
		canvas:  canvas,
		keys:    display.NewKeyboard(),
		screenW: cfg.Display.ScreenWidth,
		screenH: cfg.Display.ScreenHeight,
	}

	ebiten.SetWindowSize(cfg.Display.ScreenWidth*cfg.Display.Scale,
		cfg.Display.ScreenHeight*cfg.Display.Scale)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Display.Framerate)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
