package dispatch

import (
	"github.com/lhenry-dev/shellshot-go/internal/action"
	"github.com/lhenry-dev/shellshot-go/internal/termscreen"
)

func dispatchControl(screen *termscreen.Screen, c action.ControlCode) {
	switch c {
	case action.ControlLF:
		screen.CarriageReturn()
		screen.LineFeed()
	case action.ControlCR:
		screen.CarriageReturn()
	case action.ControlHT:
		screen.Tab()
	case action.ControlBS:
		screen.DestructiveBackspace()
	case action.ControlRI:
		screen.ReverseIndex()
	default:
		// NUL, BEL, ENQ, DEL, and everything else not named above: no-op.
	}
}
