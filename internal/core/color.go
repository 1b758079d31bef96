package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA is a 4-channel color value. Board cells and screen cells are colored
// with it; the renderer turns it into a terminal color via its hex form.
type RGBA struct {
	R, G, B, A uint8
}

// Common colors used by the HUD and as board sentinels.
var (
	Black     = RGBA{0, 0, 0, 255}
	White     = RGBA{255, 255, 255, 255}
	Gray      = RGBA{128, 128, 128, 255}
	DarkGray  = RGBA{64, 64, 64, 255}
	Red       = RGBA{223, 0, 0, 255}
	Yellow    = RGBA{240, 208, 0, 255}
	Cyan      = RGBA{0, 160, 208, 255}
	NoColor   = RGBA{}
	Highlight = RGBA{128, 128, 208, 255}
)

// NewRGBA creates an opaque color from its red, green and blue channels.
func NewRGBA(r, g, b uint8) RGBA {
	return RGBA{R: r, G: g, B: b, A: 255}
}

// Equal reports whether all four channels match.
func (c RGBA) Equal(other RGBA) bool {
	return c == other
}

// IsZero reports whether c is the zero value (no color set).
func (c RGBA) IsZero() bool {
	return c == NoColor
}

// Hex formats the color as "#rrggbb", dropping alpha.
func (c RGBA) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hex()
}

// HexAlpha formats the color as "#rrggbbaa".
func (c RGBA) HexAlpha() string {
	return fmt.Sprintf("%s%02x", c.Hex(), c.A)
}

// String implements fmt.Stringer.
func (c RGBA) String() string {
	return c.HexAlpha()
}

// ParseHex parses "#rgb", "#rrggbb" or "#rrggbbaa" (leading '#' optional).
// Colors without an alpha component are opaque.
func ParseHex(s string) (RGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}

	alpha := uint8(255)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return RGBA{}, fmt.Errorf("core: invalid alpha in color %q: %w", s, err)
		}
		alpha = uint8(a)
		s = s[:7]
	}

	if len(s) != 4 && len(s) != 7 {
		return RGBA{}, fmt.Errorf("core: invalid color %q", s)
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return RGBA{}, fmt.Errorf("core: invalid color %q: %w", s, err)
	}

	r, g, b := c.RGB255()
	return RGBA{R: r, G: g, B: b, A: alpha}, nil
}

// MustParseHex is like ParseHex but panics on malformed input.
// Intended for package-level color tables.
func MustParseHex(s string) RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
