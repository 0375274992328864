package action

import (
	"testing"

	"github.com/lhenry-dev/shellshot-go/internal/termscreen"
)

func TestProcessSGRCompoundSequence(t *testing.T) {
	sgrs := processSGR([]int{1, 31})
	if len(sgrs) != 2 {
		t.Fatalf("got %d sgrs, want 2", len(sgrs))
	}
	if sgrs[0].Kind != SGRIntensity || sgrs[0].Intensity != termscreen.IntensityBold {
		t.Fatalf("sgrs[0] = %+v, want bold intensity", sgrs[0])
	}
	if sgrs[1].Kind != SGRForeground || sgrs[1].Color != PaletteColorSpec(1) {
		t.Fatalf("sgrs[1] = %+v, want red foreground", sgrs[1])
	}
}

func TestProcessSGRExtendedTrueColor(t *testing.T) {
	sgrs := processSGR([]int{38, 2, 10, 20, 30})
	if len(sgrs) != 1 {
		t.Fatalf("got %d sgrs, want 1", len(sgrs))
	}
	want := TrueColorSpec(10, 20, 30, 255)
	if sgrs[0].Kind != SGRForeground || sgrs[0].Color != want {
		t.Fatalf("got %+v, want foreground %+v", sgrs[0], want)
	}
}

func TestProcessSGRExtendedPaletteIndex(t *testing.T) {
	sgrs := processSGR([]int{48, 5, 200})
	if len(sgrs) != 1 || sgrs[0].Kind != SGRBackground || sgrs[0].Color != PaletteColorSpec(200) {
		t.Fatalf("got %+v", sgrs)
	}
}

func TestClassifyCSICursorPositionIsZeroBased(t *testing.T) {
	a := classifyCSI('H', nil, []int{1, 1})
	if a.Cursor.Row != 0 || a.Cursor.Col != 0 {
		t.Fatalf("got row=%d col=%d, want 0,0 for 1-based input 1;1", a.Cursor.Row, a.Cursor.Col)
	}
}

func TestClassifyCSILinePositionAbsoluteIsZeroBasedWithNoOffset(t *testing.T) {
	a := classifyCSI('d', nil, []int{0})
	if a.Cursor.Kind != CursorLinePositionAbsolute || a.Cursor.Row != 0 {
		t.Fatalf("got %+v", a.Cursor)
	}
}

func TestClassifyCSIEraseCharacter(t *testing.T) {
	a := classifyCSI('X', nil, []int{5})
	if a.Kind != KindCSIEdit || a.Edit.Kind != EditEraseCharacter || a.Edit.N != 5 {
		t.Fatalf("got %+v", a)
	}
}

func TestClassifyOSCResetDynamicColorTarget(t *testing.T) {
	a := classifyOSC([][]byte{[]byte("110")})
	if a.OSC.Kind != OSCResetDynamicColor || a.OSC.Target != TargetTextForeground {
		t.Fatalf("got %+v", a.OSC)
	}
}

func TestClassifyOSCChangeDynamicColorsQuery(t *testing.T) {
	a := classifyOSC([][]byte{[]byte("10"), []byte("?")})
	if a.OSC.Kind != OSCChangeDynamicColors || a.OSC.First != TargetTextForeground {
		t.Fatalf("got %+v", a.OSC)
	}
	if len(a.OSC.Requests) != 1 || !a.OSC.Requests[0].IsQuery {
		t.Fatalf("expected a single query request, got %+v", a.OSC.Requests)
	}
}

func TestClassifyOSCChangeDynamicColorsHexValue(t *testing.T) {
	a := classifyOSC([][]byte{[]byte("11"), []byte("#102030")})
	if len(a.OSC.Requests) != 1 {
		t.Fatalf("got %d requests", len(a.OSC.Requests))
	}
	want := TrueColorSpec(0x10, 0x20, 0x30, 255)
	if a.OSC.Requests[0].Color != want {
		t.Fatalf("got %+v, want %+v", a.OSC.Requests[0].Color, want)
	}
}
