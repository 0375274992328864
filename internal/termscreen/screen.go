// Package termscreen implements the fixed-size virtual terminal grid: a
// cols x rows array of attributed Cells, a cursor, the current pen, and
// the saved-cursor stack. It knows nothing about byte streams or escape
// sequences; internal/dispatch translates parsed actions into calls here.
package termscreen

import (
	"strings"

	"github.com/unilibs/uniwidth"
)

// savedCursorCeiling bounds the save/restore stack. Pushing beyond it is a
// no-op: the oldest entries are not evicted to make room, since a program
// that saves the cursor a thousand times without restoring is almost
// certainly misbehaving and further saves carry no useful information.
const savedCursorCeiling = 1024

type savedCursor struct {
	x, y int
}

// Screen is the terminal's single display buffer: a fixed grid of cells,
// the cursor, the pen new writes use, and the save/restore cursor stack.
// The stack lives on Screen (not behind a package-level mutex) since it
// shares Screen's lifetime and is only ever touched from the dispatch
// goroutine that owns the Screen.
type Screen struct {
	cols, rows int
	grid       [][]Cell
	cursorX    int
	cursorY    int
	pen        Pen
	saved      []savedCursor
}

// New builds a Screen of the given size, every cell blank, cursor at (0,0).
func New(cols, rows int) *Screen {
	s := &Screen{cols: cols, rows: rows, pen: NewPen()}
	s.grid = make([][]Cell, rows)
	for y := range s.grid {
		s.grid[y] = newBlankRow(cols)
	}
	return s
}

func newBlankRow(cols int) []Cell {
	row := make([]Cell, cols)
	for x := range row {
		row[x] = NewCell()
	}
	return row
}

// Dimensions returns the current column and row count.
func (s *Screen) Dimensions() (cols, rows int) {
	return s.cols, s.rows
}

// CursorPosition returns the cursor's current (x, y).
func (s *Screen) CursorPosition() (x, y int) {
	return s.cursorX, s.cursorY
}

// SetCursor moves the cursor, clamping x to [0, cols] (it may transiently
// equal cols just before a wrap) and y to [0, rows).
func (s *Screen) SetCursor(x, y int) {
	s.cursorX = clamp(x, 0, s.cols)
	s.cursorY = clamp(y, 0, s.rows-1)
}

// Pen returns the current pen (copy; attribute mutation happens via
// SetPen/ApplyAttribute).
func (s *Screen) Pen() Pen {
	return s.pen
}

// SetPen replaces the current pen wholesale (used by SGR Reset).
func (s *Screen) SetPen(p Pen) {
	s.pen = p
}

// ApplyAttribute mutates only the fields present in a, leaving the rest
// of the pen untouched.
func (s *Screen) ApplyAttribute(a AttributeChange) {
	if a.Intensity != nil {
		s.pen.Intensity = *a.Intensity
	}
	if a.Underline != nil {
		s.pen.Underline = *a.Underline
	}
	if a.UnderlineColor != nil {
		s.pen.UnderlineColor = *a.UnderlineColor
	}
	if a.Inverse != nil {
		s.pen.Inverse = *a.Inverse
	}
	if a.Italic != nil {
		s.pen.Italic = *a.Italic
	}
	if a.Strikethrough != nil {
		s.pen.Strikethrough = *a.Strikethrough
	}
	if a.Invisible != nil {
		s.pen.Invisible = *a.Invisible
	}
	if a.Blink != nil {
		s.pen.Blink = *a.Blink
	}
	if a.Foreground != nil {
		s.pen.Foreground = *a.Foreground
	}
	if a.Background != nil {
		s.pen.Background = *a.Background
	}
}

// ScreenLines returns a view of each row's cells, top to bottom.
func (s *Screen) ScreenLines() [][]Cell {
	return s.grid
}

// Cell returns the cell at (x, y); callers are expected to stay in bounds.
func (s *Screen) Cell(x, y int) Cell {
	return s.grid[y][x]
}

// SetCell writes a cell directly at an explicit position, bypassing
// pen/cursor/wrap logic. Out-of-bounds positions are ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if y < 0 || y >= s.rows || x < 0 || x >= s.cols {
		return
	}
	s.grid[y][x] = c
}

// Resize changes the grid dimensions, truncating or zero-padding rows and
// columns, and clamps the cursor into the new bounds.
func (s *Screen) Resize(cols, rows int) {
	newGrid := make([][]Cell, rows)
	for y := range newGrid {
		if y < len(s.grid) {
			newGrid[y] = resizeRow(s.grid[y], cols)
		} else {
			newGrid[y] = newBlankRow(cols)
		}
	}
	s.grid = newGrid
	s.cols, s.rows = cols, rows
	s.SetCursor(s.cursorX, s.cursorY)
}

func resizeRow(row []Cell, cols int) []Cell {
	out := make([]Cell, cols)
	for x := range out {
		if x < len(row) {
			out[x] = row[x]
		} else {
			out[x] = NewCell()
		}
	}
	return out
}

// PushSavedCursor saves the current cursor position. Pushes beyond
// savedCursorCeiling are silently dropped.
func (s *Screen) PushSavedCursor() {
	if len(s.saved) >= savedCursorCeiling {
		return
	}
	s.saved = append(s.saved, savedCursor{x: s.cursorX, y: s.cursorY})
}

// PopSavedCursor restores the most recently saved cursor position. Popping
// an empty stack is a no-op, matching a bare RestoreCursor with no prior save.
func (s *Screen) PopSavedCursor() {
	if len(s.saved) == 0 {
		return
	}
	top := s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
	s.SetCursor(top.x, top.y)
}

// WriteRune writes a single codepoint at the cursor with the current pen,
// advancing the cursor and wrapping/scrolling as needed. Zero-width
// combining runes do not advance the cursor and are not stored: they are
// not attached to the preceding cell (see attachCombining).
func (s *Screen) WriteRune(r rune) {
	width := uniwidth.RuneWidth(r)
	if width == 0 {
		s.attachCombining(r)
		return
	}

	if s.cursorX >= s.cols {
		s.wrapLine()
	}

	// A wide character that would straddle the last column is squeezed
	// onto the next line as a unit rather than split across the wrap.
	if width == 2 && s.cursorX == s.cols-1 {
		s.wrapLine()
	}

	s.grid[s.cursorY][s.cursorX] = Cell{Char: r, Width: width, Pen: s.pen}
	s.cursorX++
	if width == 2 {
		s.grid[s.cursorY][s.cursorX] = spacerCell()
		s.cursorX++
	}
}

// attachCombining handles a zero-width rune (combining marks) by leaving
// the preceding cell and cursor untouched. Cell stores a single codepoint
// rather than a grapheme cluster, so the combining mark itself is dropped
// instead of merged into the base character's glyph.
func (s *Screen) attachCombining(r rune) {}

// WriteString writes a contiguous printable run (a PrintString batch).
func (s *Screen) WriteString(str string) {
	for _, r := range str {
		s.WriteRune(r)
	}
}

// wrapLine advances the cursor to the start of the next line, scrolling
// the grid up by one row (discarding the top line) if already on the
// last row.
func (s *Screen) wrapLine() {
	s.cursorX = 0
	if s.cursorY+1 == s.rows {
		s.scrollUp()
		return
	}
	s.cursorY++
}

func (s *Screen) scrollUp() {
	copy(s.grid, s.grid[1:])
	s.grid[s.rows-1] = newBlankRow(s.cols)
}

// CarriageReturn moves the cursor to column 0.
func (s *Screen) CarriageReturn() {
	s.cursorX = 0
}

// LineFeed moves the cursor down one row, scrolling if already at the
// bottom, without touching the column (used for LF/VT/FF).
func (s *Screen) LineFeed() {
	if s.cursorY+1 == s.rows {
		s.scrollUp()
		return
	}
	s.cursorY++
}

// Tab advances the cursor to the next multiple-of-8 column strictly
// greater than the current column, clamped to the last column.
func (s *Screen) Tab() {
	next := (s.cursorX/8 + 1) * 8
	s.cursorX = clamp(next, 0, s.cols-1)
}

// ReverseTab retreats the cursor to the previous multiple-of-8 column,
// saturating at column 0.
func (s *Screen) ReverseTab() {
	if s.cursorX == 0 {
		return
	}
	prev := ((s.cursorX - 1) / 8) * 8
	s.cursorX = clamp(prev, 0, s.cols-1)
}

// DestructiveBackspace moves left one column (saturating at 0, never
// wrapping to the previous line), writes a space there (which advances
// the cursor like any printed character), then moves left again
// (saturating at 0 once more) — the two-step VT100 backspace-erase idiom.
// The net effect is one column left with that column blanked. At column 0
// this overwrites column 0 with a space and the cursor stays put; it never
// touches column −1.
func (s *Screen) DestructiveBackspace() {
	if s.cursorX > 0 {
		s.cursorX--
	}
	s.grid[s.cursorY][s.cursorX] = Cell{Char: ' ', Width: 1, Pen: s.pen}
	s.cursorX++
	if s.cursorX > 0 {
		s.cursorX--
	}
}

// ReverseIndex moves the cursor up one row; at the top row it is a no-op
// (no scroll-down, since the spec excludes true scrollback).
func (s *Screen) ReverseIndex() {
	if s.cursorY == 0 {
		return
	}
	s.cursorY--
}

// EraseCharacters overwrites n cells starting at the cursor with spaces
// in the current pen, then restores the cursor to its original position.
func (s *Screen) EraseCharacters(n int) {
	x, y := s.cursorX, s.cursorY
	for i := 0; i < n && x+i < s.cols; i++ {
		s.grid[y][x+i] = Cell{Char: ' ', Width: 1, Pen: s.pen}
	}
	s.SetCursor(x, y)
}

// Apply routes a Change to the matching mutation.
func (s *Screen) Apply(c Change) {
	switch c.Kind {
	case ChangeText:
		s.WriteString(c.Text)
	case ChangeCursorPosition:
		x := c.CursorX.Resolve(s.cursorX, s.cols)
		y := c.CursorY.Resolve(s.cursorY, s.rows-1)
		s.SetCursor(x, y)
	case ChangeAttribute:
		s.ApplyAttribute(c.Attribute)
	case ChangeAllAttributes:
		s.SetPen(NewPen())
	}
}

// ScreenCharsToString renders the grid as plain text, one line per row,
// trailing spacer cells omitted. Intended for tests, not rendering.
func (s *Screen) ScreenCharsToString() string {
	var b strings.Builder
	for y, row := range s.grid {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, cell := range row {
			if cell.Width == 0 {
				continue
			}
			b.WriteRune(cell.Char)
		}
	}
	return b.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
