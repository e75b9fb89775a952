package config

import (
	"fmt"
	"sort"
)

// Presets override the hand settings of the default config.
var Presets = map[string]HandsConfig{
	"wristwatch": {LengthM: 0.008, BasePeriod: 60, Divisor: 60, BaseName: "second hand (wrist)"},
	"tower":      {LengthM: 4.2, BasePeriod: 3600, Divisor: 60, BaseName: "minute hand (tower)"},
	"turbo":      {LengthM: 0.05, BasePeriod: 60, Divisor: 1000, BaseName: "second hand (turbo)"},
}

// GetPreset returns the default config with the named preset applied, or nil.
func GetPreset(name string) *Config {
	h, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Hands = h
	return cfg
}

// Apply replaces c's hand settings with the named preset.
func (c *Config) Apply(name string) error {
	h, ok := Presets[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	c.Hands = h
	return nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
