// Package config provides YAML-based game configuration loading and
// difficulty presets for Tetra.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-tetra/internal/core"
)

// TetrisConfig contains all configuration for the game.
type TetrisConfig struct {
	Engine   EngineConfig   `yaml:"engine"`
	Features FeaturesConfig `yaml:"features"`
	Touch    TouchConfig    `yaml:"touch"`
	Colors   ColorsConfig   `yaml:"colors"`
}

// EngineConfig defines leveling and gravity timing.
type EngineConfig struct {
	MaxLevel      int  `yaml:"max_level"`
	StartLevel    int  `yaml:"start_level"`
	Leveling      bool `yaml:"leveling"`
	GravityStepMs int  `yaml:"gravity_step_ms"`
	MaxCatchUp    int  `yaml:"max_catch_up"`
}

// FeaturesConfig holds the initial state of the runtime toggles.
type FeaturesConfig struct {
	Grid           bool `yaml:"grid"`
	Hold           bool `yaml:"hold"`
	HoldLimit      bool `yaml:"hold_limit"`
	LandingPreview bool `yaml:"landing_preview"`
	PieceQueue     bool `yaml:"piece_queue"`
}

// TouchConfig maps terminal mouse positions to gesture pixels.
type TouchConfig struct {
	ColumnPx  float64 `yaml:"column_px"`
	RowPx     float64 `yaml:"row_px"`
	SlideGain float64 `yaml:"slide_gain"`
}

// ColorsConfig holds the piece colors as hex strings.
type ColorsConfig struct {
	T string `yaml:"t"`
	O string `yaml:"o"`
	Z string `yaml:"z"`
	S string `yaml:"s"`
	I string `yaml:"i"`
	L string `yaml:"l"`
	J string `yaml:"j"`
}

// Ordered returns the colors in T, O, Z, S, I, L, J order.
func (c ColorsConfig) Ordered() [7]string {
	return [7]string{c.T, c.O, c.Z, c.S, c.I, c.L, c.J}
}

// ParseColors parses every piece color. The empty-cell color (opaque black)
// is rejected since it would make locked cells indistinguishable from holes.
func (c ColorsConfig) ParseColors() ([7]core.RGBA, error) {
	var out [7]core.RGBA
	for i, hex := range c.Ordered() {
		name := string("tozsilj"[i])
		rgba, err := core.ParseHex(hex)
		if err != nil {
			return out, fmt.Errorf("config: colors.%s: %w", name, err)
		}
		if rgba == core.Black {
			return out, fmt.Errorf("config: colors.%s: %s is reserved for empty cells", name, hex)
		}
		out[i] = rgba
	}
	return out, nil
}

// Validate reports every out-of-range field.
func (c TetrisConfig) Validate() error {
	var errs []error
	e := c.Engine
	if e.MaxLevel <= 0 {
		errs = append(errs, fmt.Errorf("engine.max_level must be positive, got %d", e.MaxLevel))
	}
	if e.StartLevel < 0 || e.StartLevel > e.MaxLevel {
		errs = append(errs, fmt.Errorf("engine.start_level must be within [0, %d], got %d", e.MaxLevel, e.StartLevel))
	}
	if e.GravityStepMs <= 0 {
		errs = append(errs, fmt.Errorf("engine.gravity_step_ms must be positive, got %d", e.GravityStepMs))
	}
	if e.MaxCatchUp <= 0 {
		errs = append(errs, fmt.Errorf("engine.max_catch_up must be positive, got %d", e.MaxCatchUp))
	}
	if c.Touch.ColumnPx <= 0 || c.Touch.RowPx <= 0 {
		errs = append(errs, errors.New("touch.column_px and touch.row_px must be positive"))
	}
	if c.Touch.SlideGain <= 0 {
		errs = append(errs, fmt.Errorf("touch.slide_gain must be positive, got %g", c.Touch.SlideGain))
	}
	if _, err := c.Colors.ParseColors(); err != nil {
		errs = append(errs, errors.New(strings.TrimPrefix(err.Error(), "config: ")))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
