package dispatch

import (
	"github.com/lhenry-dev/shellshot-go/internal/action"
	"github.com/lhenry-dev/shellshot-go/internal/termscreen"
)

func dispatchSGR(screen *termscreen.Screen, sgr action.SGR) {
	switch sgr.Kind {
	case action.SGRReset:
		screen.Apply(termscreen.AllAttributesChange())
	case action.SGRIntensity:
		v := sgr.Intensity
		screen.ApplyAttribute(termscreen.AttributeChange{Intensity: &v})
	case action.SGRUnderline:
		v := sgr.Underline
		screen.ApplyAttribute(termscreen.AttributeChange{Underline: &v})
	case action.SGRInverse:
		v := sgr.Bool
		screen.ApplyAttribute(termscreen.AttributeChange{Inverse: &v})
	case action.SGRItalic:
		v := sgr.Bool
		screen.ApplyAttribute(termscreen.AttributeChange{Italic: &v})
	case action.SGRStrikethrough:
		v := sgr.Bool
		screen.ApplyAttribute(termscreen.AttributeChange{Strikethrough: &v})
	case action.SGRInvisible:
		v := sgr.Bool
		screen.ApplyAttribute(termscreen.AttributeChange{Invisible: &v})
	case action.SGRForeground:
		v := colorSpecToColor(sgr.Color)
		screen.ApplyAttribute(termscreen.AttributeChange{Foreground: &v})
	case action.SGRBackground:
		v := colorSpecToColor(sgr.Color)
		screen.ApplyAttribute(termscreen.AttributeChange{Background: &v})
	case action.SGRIgnored:
		// Blink, Font, Overline, VerticalAlign, UnderlineColor: unsupported.
	}
}

// colorSpecToColor performs the one conversion the spec calls out
// explicitly: a bare TrueColor gains a palette-index fallback hint, the
// nearest of the 16 named ANSI colors (see nearestPaletteIndex), so a
// renderer that cannot do true color can still
// degrade to something in the palette instead of the default.
func colorSpecToColor(c action.ColorSpec) termscreen.Color {
	switch c.Kind {
	case action.ColorSpecPaletteIndex:
		return termscreen.FromPaletteIndex(c.PaletteIndex)
	case action.ColorSpecTrueColor:
		return termscreen.FromTrueColorWithFallback(c.R, c.G, c.B, c.A, nearestPaletteIndex(c.R, c.G, c.B))
	default:
		return termscreen.Default
	}
}

// nearestPaletteIndex picks a reasonable degrade target: the closest of
// the 16 named ANSI colors by simple channel distance.
func nearestPaletteIndex(r, g, b uint8) uint8 {
	best := uint8(0)
	bestDist := -1
	for i := 0; i < 16; i++ {
		p := termscreen.Palette[i]
		dr := int(p.R) - int(r)
		dg := int(p.G) - int(g)
		db := int(p.B) - int(b)
		dist := dr*dr + dg*dg + db*db
		if bestDist == -1 || dist < bestDist {
			bestDist = dist
			best = uint8(i)
		}
	}
	return best
}
