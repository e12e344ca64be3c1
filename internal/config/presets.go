package config

import "sort"

// Presets are named configurations. "roche" draws line contours of the
// negated potential for a 1:40 mass ratio with the axes hidden; "binary"
// draws filled contours for a 1:2 ratio with log-extrema levels.
var Presets = map[string]*Config{
	"roche": {
		M1: 1, M2: 40, Distance: 1, G: 1,
		Grid:   GridConfig{Resolution: 100, Extent: 1.3},
		Levels: LevelsConfig{Strategy: "hybrid", Count: 55},
		Negate: true, HideAxes: true,
		Output: "roche.png",
	},
	"binary": {
		M1: 5, M2: 10, Distance: 100, G: 1,
		Grid:   GridConfig{Resolution: 100, Extent: 1.3},
		Levels: LevelsConfig{Strategy: "log-extrema", Count: 10},
		Filled: true,
		Output: "binary.png",
	},
	"equal": {
		M1: 1, M2: 1, Distance: 1, G: 1,
		Grid:   GridConfig{Resolution: 200, Extent: 1.5},
		Levels: LevelsConfig{Strategy: "linear", Count: 30},
		Output: "equal.png",
	},
	"earth-moon": {
		M1: 5.972e24, M2: 7.342e22, Distance: 3.844e8, G: 6.674e-11,
		Grid:   GridConfig{Resolution: 200, Extent: 1.3},
		Levels: LevelsConfig{Strategy: "linear", Count: 40},
		Title:  "Earth-Moon",
		Output: "earth-moon.png",
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
