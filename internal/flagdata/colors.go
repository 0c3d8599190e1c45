package flagdata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseHexColor converts "#RRGGBB" or "RRGGBB" to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %q", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return tcell.NewHexColor(int32(rgb)), nil
}

// Palette returns the flag's colours as tcell colours.
// Colours that fail to parse fall back to white.
func (f *Flag) Palette() []tcell.Color {
	palette := make([]tcell.Color, len(f.Colors))
	for i, hex := range f.Colors {
		color, err := ParseHexColor(hex)
		if err != nil {
			color = tcell.ColorWhite
		}
		palette[i] = color
	}
	return palette
}
