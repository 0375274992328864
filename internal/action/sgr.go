package action

import "github.com/lhenry-dev/shellshot-go/internal/termscreen"

// SGRKind tags which SGR (Select Graphic Rendition) sub-operation a CSI
// sequence requested.
type SGRKind int

const (
	SGRReset SGRKind = iota
	SGRIntensity
	SGRUnderline
	SGRInverse
	SGRItalic
	SGRStrikethrough
	SGRInvisible
	SGRForeground
	SGRBackground
	SGRIgnored // Blink, Font, Overline, VerticalAlign, UnderlineColor
)

// SGR carries the decoded payload for one SGR sub-operation.
type SGR struct {
	Kind      SGRKind
	Intensity termscreen.Intensity
	Underline termscreen.UnderlineStyle
	Bool      bool
	Color     ColorSpec
}
