// Package dispatch applies parsed TerminalActions to a termscreen.Screen,
// writing reply bytes (cursor position reports, color query echoes) to an
// io.Writer as a side effect. Dispatch handlers never fail: an
// unsupported action variant is simply a no-op, matching the recovery
// policy that only read/spawn errors upstream are fatal.
package dispatch

import (
	"io"

	"github.com/lhenry-dev/shellshot-go/internal/action"
	"github.com/lhenry-dev/shellshot-go/internal/termscreen"
)

// Dispatch routes a single TerminalAction to the screen/writer mutation
// its kind describes.
func Dispatch(screen *termscreen.Screen, w io.Writer, a action.TerminalAction) {
	switch a.Kind {
	case action.KindPrint:
		screen.WriteRune(a.Char)
	case action.KindPrintString:
		screen.WriteString(a.Text)
	case action.KindControl:
		dispatchControl(screen, a.Control)
	case action.KindCSISGR:
		dispatchSGR(screen, a.SGR)
	case action.KindCSICursor:
		dispatchCursor(screen, w, a.Cursor)
	case action.KindCSIEdit:
		dispatchEdit(screen, a.Edit)
	case action.KindOSC:
		dispatchOSC(screen, w, a.OSC)
	default:
		// Mode, Device, Mouse, Window, Keyboard, CharacterPath,
		// Unspecified, and Ignored (Esc/DCS/Sixel/Kitty/XTGETTCAP) are
		// all no-ops.
	}
}
