package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration, used when the
// embedded YAML cannot be parsed.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Engine: EngineConfig{
			MaxLevel:      25,
			StartLevel:    0,
			Leveling:      true,
			GravityStepMs: 15,
			MaxCatchUp:    5,
		},
		Features: FeaturesConfig{
			Grid:           true,
			Hold:           true,
			HoldLimit:      true,
			LandingPreview: true,
			PieceQueue:     true,
		},
		Touch: TouchConfig{
			ColumnPx:  8,
			RowPx:     16,
			SlideGain: 1.3,
		},
		Colors: ColorsConfig{
			T: "#A000B8",
			O: "#D0D000",
			Z: "#AA0A00",
			S: "#00C000",
			I: "#00A0D0",
			L: "#F0B000",
			J: "#0020D0",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
