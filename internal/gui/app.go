package gui

import (
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/hyperclock/internal/clock"
	"github.com/san-kum/hyperclock/internal/config"
	"github.com/san-kum/hyperclock/internal/face"
	"github.com/san-kum/hyperclock/internal/input"
)

// Window is the raylib implementation of face.Backend.
type Window struct {
	Font      rl.Font
	BodySize  float32
	TitleSize float32
	fallback  bool
}

// initWindow opens a fixed-size window at the configured frame cap and
// disables the default exit key so only closing the window quits.
func initWindow(cfg *config.Config) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	rl.SetTargetFPS(int32(cfg.Window.FPS))
	rl.SetExitKey(0)
}

// loadFont loads the configured TTF. When the file is missing or raylib
// cannot load it, the built-in font is used at the fallback sizes.
func loadFont(fc config.FontConfig, log *slog.Logger) (rl.Font, float32, float32, bool) {
	if _, err := os.Stat(fc.Path); err == nil {
		font := rl.LoadFontEx(fc.Path, int32(fc.Large), nil, 0)
		if font.Texture.ID != 0 && font.Texture.ID != rl.GetFontDefault().Texture.ID {
			rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
			return font, fc.Small, fc.Large, false
		}
		log.Debug("font load failed, using built-in font", "path", fc.Path)
	} else {
		log.Debug("font not found, using built-in font", "path", fc.Path, "err", err)
	}
	return rl.GetFontDefault(), fc.FallbackSmall, fc.FallbackLarge, true
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config, log *slog.Logger) {
	initWindow(cfg)
	defer rl.CloseWindow()

	w := &Window{}
	w.Font, w.BodySize, w.TitleSize, w.fallback = loadFont(cfg.Font, log)
	if !w.fallback {
		defer rl.UnloadFont(w.Font)
	}

	coll := cfg.Hands.NewCollection()
	clk := clock.New(clock.Func(rl.GetTime))

	log.Info("window open", "width", cfg.Window.Width, "height", cfg.Window.Height, "fps", cfg.Window.FPS)
	face.NewLoop(w, face.NewLayout(cfg), coll, clk, cfg.Panel.ScrollSpeed, log).Run()
}

// Poll translates this frame's raylib input state into events.
func (w *Window) Poll() []input.Event {
	var evs []input.Event
	if rl.WindowShouldClose() {
		evs = append(evs, input.Event{Kind: input.Quit})
	}

	mouse := rl.GetMousePosition()
	x, y := float64(mouse.X), float64(mouse.Y)
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		evs = append(evs, input.Event{Kind: input.Press, X: x, Y: y})
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		evs = append(evs, input.Event{Kind: input.Wheel, X: x, Y: y, Delta: float64(wheel)})
	}
	return evs
}

// BeginFrame starts a raylib drawing pass.
func (w *Window) BeginFrame() { rl.BeginDrawing() }

// EndFrame swaps buffers; raylib waits out the rest of the frame budget set
// by SetTargetFPS.
func (w *Window) EndFrame() { rl.EndDrawing() }
