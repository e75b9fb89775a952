package config

import (
	"fmt"
	"math"
	"os"

	"github.com/san-kum/hyperclock/internal/hands"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth       = 800
	DefaultHeight      = 600
	DefaultTitle       = "Hyperclock"
	DefaultFPS         = 120
	DefaultHandLength  = 0.05
	DefaultBasePeriod  = 60.0
	DefaultDivisor     = 60.0
	DefaultBaseName    = "second hand (base)"
	DefaultScrollSpeed = 20.0
	DefaultFontPath    = "/usr/share/fonts/liberation/LiberationSans-Regular.ttf"
)

type Config struct {
	Window WindowConfig `yaml:"window"`
	Hands  HandsConfig  `yaml:"hands"`
	Panel  PanelConfig  `yaml:"panel"`
	Font   FontConfig   `yaml:"font"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	FPS    int    `yaml:"fps"`
}

type HandsConfig struct {
	LengthM    float64 `yaml:"length_m"`
	BasePeriod float64 `yaml:"base_period"`
	Divisor    float64 `yaml:"divisor"`
	BaseName   string  `yaml:"base_name"`
}

// Params returns the hand-model constants these settings describe.
func (h HandsConfig) Params() hands.Params {
	return hands.Params{LengthM: h.LengthM, Divisor: h.Divisor}
}

// NewCollection builds the starting collection holding only the base hand.
func (h HandsConfig) NewCollection() *hands.Collection {
	return hands.NewCollection(h.BaseName, h.BasePeriod, h.Params())
}

type PanelConfig struct {
	ScrollSpeed  float64 `yaml:"scroll_speed"`
	RowHeight    float64 `yaml:"row_height"`
	HeaderHeight float64 `yaml:"header_height"`
}

// FontConfig names the TTF used by the desktop window. Fallback sizes apply
// when the file cannot be loaded and the built-in font is used instead.
type FontConfig struct {
	Path          string  `yaml:"path"`
	Small         float32 `yaml:"small"`
	Large         float32 `yaml:"large"`
	FallbackSmall float32 `yaml:"fallback_small"`
	FallbackLarge float32 `yaml:"fallback_large"`
}

// DefaultConfig returns the compiled-in settings: an 800x600 window at
// 120 FPS and a 5 cm, 60 second base hand.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Title:  DefaultTitle,
			FPS:    DefaultFPS,
		},
		Hands: HandsConfig{
			LengthM:    DefaultHandLength,
			BasePeriod: DefaultBasePeriod,
			Divisor:    DefaultDivisor,
			BaseName:   DefaultBaseName,
		},
		Panel: PanelConfig{
			ScrollSpeed:  DefaultScrollSpeed,
			RowHeight:    80,
			HeaderHeight: 50,
		},
		Font: FontConfig{
			Path:          DefaultFontPath,
			Small:         20,
			Large:         30,
			FallbackSmall: 24,
			FallbackLarge: 36,
		},
	}
}

// Load reads a yaml file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects values that would break the hand model invariants:
// periods must stay positive and every added hand must be faster.
func (c *Config) Validate() error {
	h := c.Hands
	if !(h.BasePeriod > 0) || math.IsInf(h.BasePeriod, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidPeriod, h.BasePeriod)
	}
	if !(h.Divisor > 1) || math.IsInf(h.Divisor, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidDivisor, h.Divisor)
	}
	if !(h.LengthM > 0) || math.IsInf(h.LengthM, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidLength, h.LengthM)
	}
	w := c.Window
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidWindow, w.Width, w.Height)
	}
	if w.FPS <= 0 {
		return fmt.Errorf("%w: fps %d", ErrInvalidWindow, w.FPS)
	}
	return nil
}
