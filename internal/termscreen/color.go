package termscreen

// ColorKind distinguishes the three ways a cell color can be specified.
type ColorKind int

const (
	// ColorDefault defers to the renderer's default foreground/background.
	ColorDefault ColorKind = iota
	// ColorPalette indexes into the 256-entry palette.
	ColorPalette
	// ColorTrueColor carries explicit RGBA, with an optional palette index
	// the renderer may fall back to if true color is unsupported.
	ColorTrueColor
)

// Color is a tagged union mirroring the wire-level SGR color specs: the
// default pen color, a palette index (0-255), or explicit RGBA with an
// optional palette fallback hint.
type Color struct {
	Kind            ColorKind
	PaletteIndex    uint8
	R, G, B, A      uint8
	HasFallbackHint bool
	FallbackIndex   uint8
}

// Default is the renderer-chosen default color.
var Default = Color{Kind: ColorDefault}

// FromPaletteIndex builds a palette-indexed color.
func FromPaletteIndex(idx uint8) Color {
	return Color{Kind: ColorPalette, PaletteIndex: idx}
}

// FromTrueColor builds a 24-bit color with no palette fallback.
func FromTrueColor(r, g, b, a uint8) Color {
	return Color{Kind: ColorTrueColor, R: r, G: g, B: b, A: a}
}

// FromTrueColorWithFallback builds a 24-bit color carrying a palette index
// the renderer may substitute if it cannot render true color directly.
func FromTrueColorWithFallback(r, g, b, a, fallback uint8) Color {
	return Color{Kind: ColorTrueColor, R: r, G: g, B: b, A: a, HasFallbackHint: true, FallbackIndex: fallback}
}

// Palette is the standard 256-color table: 16 named ANSI colors, a 6x6x6
// color cube, and a 24-step grayscale ramp.
var Palette [256]struct{ R, G, B uint8 }

func init() {
	named := [16][3]uint8{
		{0, 0, 0}, {205, 49, 49}, {13, 188, 121}, {229, 229, 16},
		{36, 114, 200}, {188, 63, 188}, {17, 168, 205}, {229, 229, 229},
		{102, 102, 102}, {241, 76, 76}, {35, 209, 139}, {245, 245, 67},
		{59, 142, 234}, {214, 112, 214}, {41, 184, 219}, {255, 255, 255},
	}
	for i, c := range named {
		Palette[i].R, Palette[i].G, Palette[i].B = c[0], c[1], c[2]
	}

	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				Palette[i].R = uint8(r * 51)
				Palette[i].G = uint8(g * 51)
				Palette[i].B = uint8(b * 51)
				i++
			}
		}
	}

	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		Palette[232+j].R, Palette[232+j].G, Palette[232+j].B = gray, gray, gray
	}
}
