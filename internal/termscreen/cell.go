package termscreen

// Cell is one grid position: a codepoint, its display width (1, or 2 for
// the leading half of a wide character), and the pen it was written with.
// The trailing half of a wide character is a sentinel cell with Width 0
// so the renderer and cursor math can skip it without special-casing
// every caller.
type Cell struct {
	Char  rune
	Width int
	Pen   Pen
}

// wideSpacer marks the sentinel cell trailing a 2-column-wide glyph.
const wideSpacer = 0

// NewCell returns a blank cell: a space, default pen, width 1.
func NewCell() Cell {
	return Cell{Char: ' ', Width: 1, Pen: NewPen()}
}

// IsBlank reports whether the cell is the initial space-with-default-pen
// state, used by auto-crop to find the bounding box of real content.
func (c Cell) IsBlank() bool {
	return c.Char == ' ' && c.Pen.Background.Kind == ColorDefault
}

func spacerCell() Cell {
	return Cell{Char: rune(wideSpacer), Width: 0, Pen: NewPen()}
}
