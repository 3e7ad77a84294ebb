package config

import "sort"

// Preset is a named starting point for the lab. Zero fields leave the
// defaults alone.
type Preset struct {
	Description string
	Turns       int
	Speed       float64
	FPS         int
	Playing     bool
	SampleEvery int
}

var Presets = map[string]Preset{
	"classroom": {
		Description: "5 turns, magnet parked at the coil",
		Turns:       5,
		Speed:       1,
	},
	"fast": {
		Description: "quick oscillation through a heavy coil",
		Turns:       15,
		Speed:       3,
		Playing:     true,
	},
	"dense": {
		Description: "20 turns, every tick charted",
		Turns:       20,
		Speed:       1.5,
		Playing:     true,
		SampleEvery: 1,
	},
	"slow": {
		Description: "single turn, slow sweep",
		Turns:       1,
		Speed:       0.5,
		FPS:         30,
		Playing:     true,
	},
}

func (p Preset) Apply(cfg *Config) {
	if p.Turns != 0 {
		cfg.Controls.Turns = p.Turns
	}
	if p.Speed != 0 {
		cfg.Controls.Speed = p.Speed
	}
	if p.FPS != 0 {
		cfg.Controls.FPS = p.FPS
	}
	if p.SampleEvery != 0 {
		cfg.Physics.SampleEvery = p.SampleEvery
	}
	cfg.Controls.Playing = p.Playing
}

// GetPreset returns the defaults with the named preset applied, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	p.Apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
