package termscreen

// Intensity is the SGR bold/dim/normal tri-state.
type Intensity int

const (
	IntensityNormal Intensity = iota
	IntensityBold
	IntensityDim
)

// UnderlineStyle distinguishes the underline variants SGR 4/21 and the
// extended Kitty-style underline subparameters can select.
type UnderlineStyle int

const (
	UnderlineNone UnderlineStyle = iota
	UnderlineSingle
	UnderlineDouble
	UnderlineCurly
	UnderlineDotted
	UnderlineDashed
)

// Pen is the set of attributes applied to subsequently printed characters.
// A fresh Pen is the all-default state SGR Reset restores.
type Pen struct {
	Foreground     Color
	Background     Color
	Intensity      Intensity
	Underline      UnderlineStyle
	UnderlineColor Color
	Italic         bool
	Strikethrough  bool
	Inverse        bool
	Invisible      bool
	Blink          bool
}

// NewPen returns the default pen: default colors, no attributes set.
func NewPen() Pen {
	return Pen{Foreground: Default, Background: Default, UnderlineColor: Default}
}
