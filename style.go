package gogauge

import (
	"image/color"
	"strings"
)

// Color represents an ARGB color.
type Color struct {
	ARGB string // 8-character hex string, e.g., "FF000000" for black
}

// Predefined colors.
var (
	ColorBlack = Color{ARGB: "FF000000"}
	ColorWhite = Color{ARGB: "FFFFFFFF"}
)

// NewColor creates a new Color from an ARGB hex string.
// Accepts 6-char RGB (e.g. "FF0000") or 8-char ARGB (e.g. "FFFF0000").
// A leading "#" is stripped automatically.
func NewColor(argb string) Color {
	argb = strings.TrimPrefix(argb, "#")
	if len(argb) == 6 {
		argb = "FF" + argb
	}
	argb = strings.ToUpper(argb)
	if !isValidARGB(argb) {
		return Color{ARGB: "FF000000"} // fallback to black
	}
	return Color{ARGB: argb}
}

// isValidARGB checks that s is exactly 8 hex characters.
func isValidARGB(s string) bool {
	if len(s) != 8 {
		return false
	}
	for _, c := range s {
		if !((c >= '0' && c <= '9') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}

// GetRed returns the red component (0-255).
func (c Color) GetRed() uint8 {
	return parseHexByte(c.ARGB, 2)
}

// GetGreen returns the green component (0-255).
func (c Color) GetGreen() uint8 {
	return parseHexByte(c.ARGB, 4)
}

// GetBlue returns the blue component (0-255).
func (c Color) GetBlue() uint8 {
	return parseHexByte(c.ARGB, 6)
}

// GetAlpha returns the alpha component (0-255).
func (c Color) GetAlpha() uint8 {
	return parseHexByte(c.ARGB, 0)
}

// ToRGBA converts the color to the standard library representation.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{
		R: c.GetRed(),
		G: c.GetGreen(),
		B: c.GetBlue(),
		A: c.GetAlpha(),
	}
}

// parseHexByte parses two hex characters at offset into a uint8.
// Returns 0 on any error (out of range, invalid chars).
func parseHexByte(s string, offset int) uint8 {
	if offset+2 > len(s) {
		return 0
	}
	h := hexVal(s[offset])
	l := hexVal(s[offset+1])
	if h < 0 || l < 0 {
		return 0
	}
	return uint8(h<<4 | l)
}

func hexVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return -1
	}
}

// Theme collects the colors and fixed text/face geometry shared by a
// family of gauges. FaceRadius 0 disables the inner face circle, leaving
// the zone slices fully visible (used by the horizon gauge).
type Theme struct {
	Background        Color
	BackgroundOutline Color
	BackgroundWidth   float64

	Face        Color
	FaceOutline Color
	FaceWidth   float64
	FaceRadius  float64

	MajorTick Color
	MinorTick Color
	Label     Color
	Title     Color
	Subtitle  Color

	HubFill    Color
	HubOutline Color
	HubRadius  float64

	TitleY    float64
	SubtitleY float64

	LabelSize    float64
	TitleSize    float64
	SubtitleSize float64
}

// LightTheme is the white-faced look used by the zone gauges
// (thrust, engine, positive, weight, negative, fuel).
func LightTheme() Theme {
	return Theme{
		Background:        ColorWhite,
		BackgroundOutline: NewColor("#cccccc"),
		BackgroundWidth:   3,
		Face:              ColorWhite,
		FaceOutline:       NewColor("#cccccc"),
		FaceWidth:         2,
		FaceRadius:        100,
		MajorTick:         ColorBlack,
		MinorTick:         NewColor("#666666"),
		Label:             ColorBlack,
		Title:             ColorBlack,
		Subtitle:          NewColor("#666666"),
		HubFill:           NewColor("#cccccc"),
		HubOutline:        ColorBlack,
		HubRadius:         15,
		TitleY:            70,
		SubtitleY:         330,
		LabelSize:         14,
		TitleSize:         18,
		SubtitleSize:      13,
	}
}

// DarkTheme is the dark metallic cockpit look used by the compass and
// horizon gauges.
func DarkTheme() Theme {
	return Theme{
		Background:        NewColor("#1a1a2e"),
		BackgroundOutline: NewColor("#0f3460"),
		BackgroundWidth:   3,
		Face:              NewColor("#16213e"),
		FaceOutline:       NewColor("#0f3460"),
		FaceWidth:         2,
		FaceRadius:        140,
		MajorTick:         NewColor("#e94560"),
		MinorTick:         NewColor("#533483"),
		Label:             ColorWhite,
		Title:             ColorWhite,
		Subtitle:          NewColor("#aaaaaa"),
		HubFill:           NewColor("#2d2d44"),
		HubOutline:        NewColor("#e94560"),
		HubRadius:         15,
		TitleY:            80,
		SubtitleY:         320,
		LabelSize:         14,
		TitleSize:         18,
		SubtitleSize:      13,
	}
}
