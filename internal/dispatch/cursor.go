package dispatch

import (
	"fmt"
	"io"

	"github.com/lhenry-dev/shellshot-go/internal/action"
	"github.com/lhenry-dev/shellshot-go/internal/termscreen"
)

func dispatchCursor(screen *termscreen.Screen, w io.Writer, c action.Cursor) {
	switch c.Kind {
	case action.CursorCharacterAbsolute, action.CursorCharacterPositionAbsolute:
		x, y := screen.CursorPosition()
		screen.SetCursor(termscreen.Absolute(c.Col).Resolve(x, colsMax(screen)), y)
	case action.CursorLinePositionAbsolute:
		x, y := screen.CursorPosition()
		screen.SetCursor(x, termscreen.Absolute(c.Row).Resolve(y, rowsMax(screen)))
	case action.CursorPosition, action.CursorCharacterAndLinePosition:
		screen.SetCursor(
			termscreen.Absolute(c.Col).Resolve(0, colsMax(screen)),
			termscreen.Absolute(c.Row).Resolve(0, rowsMax(screen)),
		)

	case action.CursorUp:
		x, y := screen.CursorPosition()
		screen.SetCursor(x, termscreen.Relative(-c.N).Resolve(y, rowsMax(screen)))
	case action.CursorDown:
		x, y := screen.CursorPosition()
		screen.SetCursor(x, termscreen.Relative(c.N).Resolve(y, rowsMax(screen)))
	case action.CursorLeft:
		x, y := screen.CursorPosition()
		screen.SetCursor(termscreen.Relative(-c.N).Resolve(x, colsMax(screen)), y)
	case action.CursorRight:
		x, y := screen.CursorPosition()
		screen.SetCursor(termscreen.Relative(c.N).Resolve(x, colsMax(screen)), y)
	case action.CursorCharacterPositionForward:
		x, y := screen.CursorPosition()
		screen.SetCursor(termscreen.Relative(c.N).Resolve(x, colsMax(screen)), y)
	case action.CursorCharacterPositionBackward:
		x, y := screen.CursorPosition()
		screen.SetCursor(termscreen.Relative(-c.N).Resolve(x, colsMax(screen)), y)
	case action.CursorLinePositionForward:
		x, y := screen.CursorPosition()
		screen.SetCursor(x, termscreen.Relative(c.N).Resolve(y, rowsMax(screen)))
	case action.CursorLinePositionBackward:
		x, y := screen.CursorPosition()
		screen.SetCursor(x, termscreen.Relative(-c.N).Resolve(y, rowsMax(screen)))

	case action.CursorForwardTabulation:
		for i := 0; i < c.N; i++ {
			screen.Tab()
		}
	case action.CursorBackwardTabulation:
		for i := 0; i < c.N; i++ {
			screen.ReverseTab()
		}
	case action.CursorNextLine:
		_, y := screen.CursorPosition()
		screen.SetCursor(0, termscreen.Relative(c.N).Resolve(y, rowsMax(screen)))
	case action.CursorPrecedingLine:
		_, y := screen.CursorPosition()
		screen.SetCursor(0, termscreen.Relative(-c.N).Resolve(y, rowsMax(screen)))

	case action.CursorSaveCursor:
		screen.PushSavedCursor()
	case action.CursorRestoreCursor:
		screen.PopSavedCursor()

	case action.CursorRequestActivePositionReport:
		x, y := screen.CursorPosition()
		// Write errors on the reply path are swallowed: the child may
		// have already exited or stopped reading its pty master.
		_, _ = fmt.Fprintf(w, "\x1b[%d;%dR", y+1, x+1)
		if f, ok := w.(interface{ Flush() error }); ok {
			_ = f.Flush()
		}

	case action.CursorOther:
		// TabulationClear, inbound ActivePositionReport, TabulationControl,
		// LineTabulation, margin ops, CursorStyle: accepted, no-op.
	}
}

func colsMax(s *termscreen.Screen) int {
	cols, _ := s.Dimensions()
	return cols
}

func rowsMax(s *termscreen.Screen) int {
	_, rows := s.Dimensions()
	return rows - 1
}
