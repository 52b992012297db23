package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Theme maps palette positions onto the roles the keyboard UI needs.
type Theme struct {
	Palette *Palette
}

func New(palette *Palette) *Theme {
	return &Theme{Palette: palette}
}

// Color roles mapped to palette positions (0-1)
const (
	RoleBG      = 0.0 // deep violet
	RoleSurface = 0.1
	RoleMuted   = 0.25
	RoleFG      = 0.55 // readable on the dark end
	RoleAccent  = 0.7
	RoleActive  = 0.85
	RoleWarning = 1.0
)

func (t *Theme) BG() lipgloss.Color     { return rgbToLipgloss(t.Palette.Lookup(RoleBG)) }
func (t *Theme) FG() lipgloss.Color     { return rgbToLipgloss(t.Palette.Lookup(RoleFG)) }
func (t *Theme) Muted() lipgloss.Color  { return rgbToLipgloss(t.Palette.Lookup(RoleMuted)) }
func (t *Theme) Accent() lipgloss.Color { return rgbToLipgloss(t.Palette.Lookup(RoleAccent)) }
func (t *Theme) Active() lipgloss.Color { return rgbToLipgloss(t.Palette.Lookup(RoleActive)) }

// Key faces. White keys render light, black keys dark, and a pressed key
// takes the color of its MPE channel so chords read as distinct voices.

func (t *Theme) WhiteKey() lipgloss.Color { return lipgloss.Color("#e8e4f0") }
func (t *Theme) BlackKey() lipgloss.Color { return lipgloss.Color("#1a1423") }

// ChannelColor spreads the MPE note channels 2-16 across the palette.
func (t *Theme) ChannelColor(ch uint8) lipgloss.Color {
	if ch < 2 {
		return t.Accent()
	}
	norm := float64(ch-2) / 14.0
	return rgbToLipgloss(t.Palette.Lookup(norm*0.6 + 0.4)) // keep to the bright end
}

// Color returns lipgloss color for any normalized value 0-1
func (t *Theme) Color(norm float64) lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(norm))
}

func rgbToLipgloss(c RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]))
}

// RGBToColor converts a raw override color from a KeyModel.
func RGBToColor(c [3]uint8) lipgloss.Color {
	return rgbToLipgloss(RGB(c))
}
