package dispatch

import (
	"fmt"
	"io"

	"github.com/lhenry-dev/shellshot-go/internal/action"
	"github.com/lhenry-dev/shellshot-go/internal/termscreen"
)

func dispatchOSC(screen *termscreen.Screen, w io.Writer, o action.OSC) {
	switch o.Kind {
	case action.OSCChangeDynamicColors:
		dispatchChangeDynamicColors(screen, w, o)
	case action.OSCResetDynamicColor:
		resetDynamicColor(screen, o.Target)
	case action.OSCResetColors:
		// Palette index resets: the screen does not retain a mutable
		// copy of the palette, so there is nothing to reset beyond the
		// pen colors already covered by ResetDynamicColor.
	case action.OSCOther:
		// Window title, hyperlink, selection, notifications, iTerm,
		// FinalTerm, cwd, rxvt, ConEmu, unspecified: no-op.
	}
}

func dispatchChangeDynamicColors(screen *termscreen.Screen, w io.Writer, o action.OSC) {
	for i, req := range o.Requests {
		target := targetAt(o.First, i)

		if req.IsQuery {
			// Write errors on the reply path are swallowed per the spec's
			// recovery policy: a query the child never reads is harmless.
			_, _ = fmt.Fprintf(w, "\x1b]%d;?\x1b\\", int(targetNumber(target)))
			if f, ok := w.(interface{ Flush() error }); ok {
				_ = f.Flush()
			}
			continue
		}

		c := colorSpecToColor(req.Color)
		switch target {
		case action.TargetTextForeground:
			pen := screen.Pen()
			pen.Foreground = c
			screen.SetPen(pen)
		case action.TargetTextBackground:
			pen := screen.Pen()
			pen.Background = c
			screen.SetPen(pen)
		default:
			// TextCursorColor, Mouse{Foreground,Background},
			// Tektronix{Foreground,Background,Cursor},
			// Highlight{Foreground,Background}: accepted, no-op.
		}
	}
}

func resetDynamicColor(screen *termscreen.Screen, target action.DynamicColorTarget) {
	switch target {
	case action.TargetTextForeground:
		pen := screen.Pen()
		pen.Foreground = termscreen.Default
		screen.SetPen(pen)
	case action.TargetTextBackground:
		pen := screen.Pen()
		pen.Background = termscreen.Default
		screen.SetPen(pen)
	default:
		// Other targets: no observable state to reset.
	}
}

// targetAt resolves the i-th request's target: ChangeDynamicColors
// addresses first+i by numeric identity.
func targetAt(first action.DynamicColorTarget, i int) action.DynamicColorTarget {
	return targetForNumber(targetNumber(first) + i)
}

func targetNumber(t action.DynamicColorTarget) int {
	switch t {
	case action.TargetTextForeground:
		return 10
	case action.TargetTextBackground:
		return 11
	case action.TargetTextCursor:
		return 12
	case action.TargetMouseForeground:
		return 13
	case action.TargetMouseBackground:
		return 14
	case action.TargetTektronixForeground:
		return 15
	case action.TargetTektronixBackground:
		return 16
	case action.TargetHighlightBackground:
		return 17
	case action.TargetTektronixCursor:
		return 18
	case action.TargetHighlightForeground:
		return 19
	default:
		return -1
	}
}

func targetForNumber(n int) action.DynamicColorTarget {
	switch n {
	case 10:
		return action.TargetTextForeground
	case 11:
		return action.TargetTextBackground
	case 12:
		return action.TargetTextCursor
	case 13:
		return action.TargetMouseForeground
	case 14:
		return action.TargetMouseBackground
	case 15:
		return action.TargetTektronixForeground
	case 16:
		return action.TargetTektronixBackground
	case 17:
		return action.TargetHighlightBackground
	case 18:
		return action.TargetTektronixCursor
	case 19:
		return action.TargetHighlightForeground
	default:
		return action.TargetOther
	}
}
