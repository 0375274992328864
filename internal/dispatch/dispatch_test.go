package dispatch

import (
	"bytes"
	"testing"

	"github.com/lhenry-dev/shellshot-go/internal/action"
	"github.com/lhenry-dev/shellshot-go/internal/termscreen"
)

func TestDispatchPlainText(t *testing.T) {
	screen := termscreen.New(20, 5)
	var buf bytes.Buffer
	Dispatch(screen, &buf, action.PrintString("Hello World"))

	if got := screen.ScreenCharsToString(); got[:11] != "Hello World" {
		t.Fatalf("got %q", got[:11])
	}
}

func TestDispatchDestructiveBackspaceSequence(t *testing.T) {
	screen := termscreen.New(10, 3)
	var buf bytes.Buffer
	Dispatch(screen, &buf, action.PrintString("AB"))
	Dispatch(screen, &buf, action.Control(action.ControlBS))
	Dispatch(screen, &buf, action.PrintString("C"))

	x, y := screen.CursorPosition()
	if x != 2 || y != 0 {
		t.Fatalf("got (%d,%d), want (2,0)", x, y)
	}
	if got := screen.Cell(1, 0).Char; got != 'C' {
		t.Fatalf("got %q, want C", got)
	}
}

func TestDispatchCursorSaveRestore(t *testing.T) {
	screen := termscreen.New(20, 10)
	var buf bytes.Buffer
	Dispatch(screen, &buf, action.TerminalAction{Kind: action.KindCSICursor, Cursor: action.Cursor{Kind: action.CursorSaveCursor}})
	screen.SetCursor(1, 1)
	Dispatch(screen, &buf, action.TerminalAction{Kind: action.KindCSICursor, Cursor: action.Cursor{Kind: action.CursorRight, N: 5}})
	Dispatch(screen, &buf, action.TerminalAction{Kind: action.KindCSICursor, Cursor: action.Cursor{Kind: action.CursorRestoreCursor}})

	x, y := screen.CursorPosition()
	if x != 0 || y != 0 {
		t.Fatalf("got (%d,%d), want (0,0)", x, y)
	}
}

func TestDispatchSGRBoldRed(t *testing.T) {
	screen := termscreen.New(10, 3)
	var buf bytes.Buffer
	Dispatch(screen, &buf, action.TerminalAction{Kind: action.KindCSISGR, SGR: action.SGR{Kind: action.SGRIntensity, Intensity: termscreen.IntensityBold}})
	Dispatch(screen, &buf, action.TerminalAction{Kind: action.KindCSISGR, SGR: action.SGR{Kind: action.SGRForeground, Color: action.PaletteColorSpec(1)}})
	Dispatch(screen, &buf, action.PrintString("X"))

	cell := screen.Cell(0, 0)
	if cell.Pen.Intensity != termscreen.IntensityBold {
		t.Fatalf("expected bold intensity, got %+v", cell.Pen)
	}
	if cell.Pen.Foreground != termscreen.FromPaletteIndex(1) {
		t.Fatalf("expected palette index 1 foreground, got %+v", cell.Pen.Foreground)
	}
}

func TestDispatchTabThenReverseTab(t *testing.T) {
	screen := termscreen.New(40, 3)
	var buf bytes.Buffer
	Dispatch(screen, &buf, action.Control(action.ControlHT))
	x, _ := screen.CursorPosition()
	if x != 8 {
		t.Fatalf("got x=%d after tab, want 8", x)
	}
	Dispatch(screen, &buf, action.TerminalAction{Kind: action.KindCSICursor, Cursor: action.Cursor{Kind: action.CursorBackwardTabulation, N: 1}})
	x, _ = screen.CursorPosition()
	if x != 0 {
		t.Fatalf("got x=%d after reverse tab, want 0", x)
	}
}

func TestDispatchCarriageReturnOverwrite(t *testing.T) {
	screen := termscreen.New(10, 3)
	var buf bytes.Buffer
	Dispatch(screen, &buf, action.PrintString("ABCDE"))
	Dispatch(screen, &buf, action.Control(action.ControlCR))
	Dispatch(screen, &buf, action.PrintString("XY"))

	if got := screen.ScreenCharsToString(); got[:5] != "XYCDE" {
		t.Fatalf("got %q, want XYCDE", got[:5])
	}
}

func TestDispatchRequestActivePositionReportWritesBack(t *testing.T) {
	screen := termscreen.New(80, 24)
	screen.SetCursor(4, 2)
	var buf bytes.Buffer
	Dispatch(screen, &buf, action.TerminalAction{Kind: action.KindCSICursor, Cursor: action.Cursor{Kind: action.CursorRequestActivePositionReport}})

	if got, want := buf.String(), "\x1b[3;5R"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDispatchOSCResetForegroundTwiceIsIdempotent(t *testing.T) {
	screen := termscreen.New(10, 3)
	var buf bytes.Buffer
	Dispatch(screen, &buf, action.TerminalAction{Kind: action.KindOSC, OSC: action.OSC{Kind: action.OSCResetDynamicColor, Target: action.TargetTextForeground}})
	first := screen.Pen()
	Dispatch(screen, &buf, action.TerminalAction{Kind: action.KindOSC, OSC: action.OSC{Kind: action.OSCResetDynamicColor, Target: action.TargetTextForeground}})
	second := screen.Pen()

	if first != second {
		t.Fatalf("expected idempotent reset, got %+v then %+v", first, second)
	}
}
