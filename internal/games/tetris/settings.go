package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetra/internal/config"
)

// TouchSettings convert terminal pointer positions into the pixel space the
// gesture thresholds are expressed in.
type TouchSettings struct {
	ColumnPx  float64 // pixels per terminal column
	RowPx     float64 // pixels per terminal row
	SlideGain float64 // drag amplification for slides
}

// Settings configure a Game. See DefaultSettings.
type Settings struct {
	MaxLevel    int
	StartLevel  int
	Leveling    bool
	GravityStep time.Duration // gravity interval is (MaxLevel+1-level) steps
	MaxCatchUp  int           // engine updates allowed per frame
	Toggles     Toggles
	Palette     Palette
	Touch       TouchSettings
}

// DefaultSettings returns the stock game settings.
func DefaultSettings() Settings {
	return Settings{
		MaxLevel:    DefaultMaxLevel,
		StartLevel:  0,
		Leveling:    true,
		GravityStep: 15 * time.Millisecond,
		MaxCatchUp:  5,
		Toggles:     DefaultToggles(),
		Palette:     DefaultPalette(),
		Touch:       TouchSettings{ColumnPx: 8, RowPx: 16, SlideGain: 1.3},
	}
}

// SettingsFromConfig converts a loaded configuration into game settings.
func SettingsFromConfig(cfg config.TetrisConfig) (Settings, error) {
	if err := cfg.Validate(); err != nil {
		return Settings{}, err
	}
	colors, err := cfg.Colors.ParseColors()
	if err != nil {
		return Settings{}, err
	}

	return Settings{
		MaxLevel:    cfg.Engine.MaxLevel,
		StartLevel:  cfg.Engine.StartLevel,
		Leveling:    cfg.Engine.Leveling,
		GravityStep: time.Duration(cfg.Engine.GravityStepMs) * time.Millisecond,
		MaxCatchUp:  cfg.Engine.MaxCatchUp,
		Toggles: Toggles{
			Grid:      cfg.Features.Grid,
			Hold:      cfg.Features.Hold,
			HoldLimit: cfg.Features.HoldLimit,
			Landing:   cfg.Features.LandingPreview,
			Queue:     cfg.Features.PieceQueue,
		},
		Palette: Palette(colors),
		Touch: TouchSettings{
			ColumnPx:  cfg.Touch.ColumnPx,
			RowPx:     cfg.Touch.RowPx,
			SlideGain: cfg.Touch.SlideGain,
		},
	}, nil
}
