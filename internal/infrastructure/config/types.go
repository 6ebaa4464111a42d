package config

// GameConfig is the root config for game.yaml
type GameConfig struct {
	Display DisplayConfig `yaml:"display"`
	Window  WindowConfig  `yaml:"window"`
}

// DisplayConfig configures the logical screen and frame pacing
type DisplayConfig struct {
	ScreenWidth  int `yaml:"screenWidth"`
	ScreenHeight int `yaml:"screenHeight"`
	Scale        int `yaml:"scale"`
	Framerate    int `yaml:"framerate"`
}

// WindowConfig configures the host window
type WindowConfig struct {
	Title string `yaml:"title"`
}

// applyDefaults fills zero values with sensible defaults
func (c *GameConfig) applyDefaults() {
	if c.Display.ScreenWidth == 0 {
		c.Display.ScreenWidth = 320
	}
	if c.Display.ScreenHeight == 0 {
		c.Display.ScreenHeight = 240
	}
	if c.Display.Scale == 0 {
		c.Display.Scale = 2
	}
	if c.Display.Framerate == 0 {
		c.Display.Framerate = 60
	}
	if c.Window.Title == "" {
		c.Window.Title = "canvasloop"
	}
}
