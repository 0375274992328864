package action

// ColorSpecKind tags a ColorSpec's variant.
type ColorSpecKind int

const (
	ColorSpecDefault ColorSpecKind = iota
	ColorSpecPaletteIndex
	ColorSpecTrueColor
)

// ColorSpec is the color as parsed off the wire, before dispatch converts
// it into a termscreen.Color (where a bare TrueColor gains the
// default-palette fallback hint).
type ColorSpec struct {
	Kind         ColorSpecKind
	PaletteIndex uint8
	R, G, B, A   uint8
}

// DefaultColorSpec is the "use the pen default" spec.
var DefaultColorSpec = ColorSpec{Kind: ColorSpecDefault}

// PaletteColorSpec builds a palette-indexed spec.
func PaletteColorSpec(idx uint8) ColorSpec {
	return ColorSpec{Kind: ColorSpecPaletteIndex, PaletteIndex: idx}
}

// TrueColorSpec builds an explicit RGBA spec.
func TrueColorSpec(r, g, b, a uint8) ColorSpec {
	return ColorSpec{Kind: ColorSpecTrueColor, R: r, G: g, B: b, A: a}
}
