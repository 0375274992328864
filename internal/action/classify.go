package action

import "github.com/lhenry-dev/shellshot-go/internal/termscreen"

// dispatchCSI routes a CSI final byte (plus its leading intermediate, if
// any) to a TerminalAction. For 'm' (SGR) a single wire sequence can carry
// several attribute changes at once ("\x1b[1;31m" sets both intensity and
// foreground), so SGR emits one action per sub-code directly into the
// sink rather than returning a single value.
func (p *performer) dispatchCSI(final rune, intermediates []byte, ps []int) {
	if final == 'm' {
		for _, sgr := range processSGR(ps) {
			p.emit(TerminalAction{Kind: KindCSISGR, SGR: sgr})
		}
		if len(ps) == 0 {
			p.emit(TerminalAction{Kind: KindCSISGR, SGR: SGR{Kind: SGRReset}})
		}
		return
	}

	p.emit(classifyCSI(final, intermediates, ps))
}

func classifyCSI(final rune, intermediates []byte, ps []int) TerminalAction {
	priv := hasIntermediate(intermediates, '?')

	switch final {
	case 'A':
		return TerminalAction{Kind: KindCSICursor, Cursor: Cursor{Kind: CursorUp, N: paramOr(ps, 0, 1)}}
	case 'B':
		return TerminalAction{Kind: KindCSICursor, Cursor: Cursor{Kind: CursorDown, N: paramOr(ps, 0, 1)}}
	case 'C':
		return TerminalAction{Kind: KindCSICursor, Cursor: Cursor{Kind: CursorRight, N: paramOr(ps, 0, 1)}}
	case 'D':
		return TerminalAction{Kind: KindCSICursor, Cursor: Cursor{Kind: CursorLeft, N: paramOr(ps, 0, 1)}}
	case 'E':
		return TerminalAction{Kind: KindCSICursor, Cursor: Cursor{Kind: CursorNextLine, N: paramOr(ps, 0, 1)}}
	case 'F':
		return TerminalAction{Kind: KindCSICursor, Cursor: Cursor{Kind: CursorPrecedingLine, N: paramOr(ps, 0, 1)}}
	case 'G':
		return TerminalAction{Kind: KindCSICursor, Cursor: Cursor{Kind: CursorCharacterAbsolute, Col: zeroBased(paramOr(ps, 0, 1))}}
	case 'H', 'f':
		row := zeroBased(paramOr(ps, 0, 1))
		col := zeroBased(paramOr(ps, 1, 1))
		kind := CursorPosition
		if final == 'f' {
			kind = CursorCharacterAndLinePosition
		}
		return TerminalAction{Kind: KindCSICursor, Cursor: Cursor{Kind: kind, Row: row, Col: col}}
	case 'I':
		return TerminalAction{Kind: KindCSICursor, Cursor: Cursor{Kind: CursorForwardTabulation, N: paramOr(ps, 0, 1)}}
	case 'Z':
		return TerminalAction{Kind: KindCSICursor, Cursor: Cursor{Kind: CursorBackwardTabulation, N: paramOr(ps, 0, 1)}}
	case 'd':
		// LinePositionAbsolute: zero-based, no OneBased conversion — see
		// the resolution note in the design ledger for why this differs
		// from the sibling absolute variants.
		return TerminalAction{Kind: KindCSICursor, Cursor: Cursor{Kind: CursorLinePositionAbsolute, Row: paramOr(ps, 0, 0)}}
	case 'e':
		return TerminalAction{Kind: KindCSICursor, Cursor: Cursor{Kind: CursorLinePositionForward, N: paramOr(ps, 0, 1)}}
	case 'a':
		return TerminalAction{Kind: KindCSICursor, Cursor: Cursor{Kind: CursorCharacterPositionForward, N: paramOr(ps, 0, 1)}}
	case 'j':
		return TerminalAction{Kind: KindCSICursor, Cursor: Cursor{Kind: CursorCharacterPositionBackward, N: paramOr(ps, 0, 1)}}
	case 'k':
		return TerminalAction{Kind: KindCSICursor, Cursor: Cursor{Kind: CursorLinePositionBackward, N: paramOr(ps, 0, 1)}}
	case 's':
		return TerminalAction{Kind: KindCSICursor, Cursor: Cursor{Kind: CursorSaveCursor}}
	case 'u':
		if len(intermediates) == 0 {
			return TerminalAction{Kind: KindCSICursor, Cursor: Cursor{Kind: CursorRestoreCursor}}
		}
		return TerminalAction{Kind: KindCSIKeyboard}
	case 'n':
		if paramOr(ps, 0, 0) == 6 {
			return TerminalAction{Kind: KindCSICursor, Cursor: Cursor{Kind: CursorRequestActivePositionReport}}
		}
		return TerminalAction{Kind: KindCSIDevice}
	case 'g', 'W':
		return TerminalAction{Kind: KindCSICursor, Cursor: Cursor{Kind: CursorOther}}

	case 'X':
		return TerminalAction{Kind: KindCSIEdit, Edit: Edit{Kind: EditEraseCharacter, N: paramOr(ps, 0, 1)}}
	case '@', 'P', 'K', 'J', 'L', 'M', 'S', 'T', 'b':
		return TerminalAction{Kind: KindCSIEdit, Edit: Edit{Kind: EditOther}}

	case 'h', 'l':
		if priv && isMouseMode(paramOr(ps, 0, -1)) {
			return TerminalAction{Kind: KindCSIMouse}
		}
		return TerminalAction{Kind: KindCSIMode}
	case 'c':
		return TerminalAction{Kind: KindCSIDevice}
	case 't':
		return TerminalAction{Kind: KindCSIWindow}
	case 'p', 'q':
		return TerminalAction{Kind: KindCSICursor, Cursor: Cursor{Kind: CursorOther}}

	default:
		return TerminalAction{Kind: KindCSIUnspecified}
	}
}

func zeroBased(n int) int {
	if n <= 0 {
		return 0
	}
	return n - 1
}

func hasIntermediate(intermediates []byte, b byte) bool {
	for _, x := range intermediates {
		if x == b {
			return true
		}
	}
	return false
}

func isMouseMode(mode int) bool {
	switch mode {
	case 9, 1000, 1001, 1002, 1003, 1005, 1006, 1015, 1016:
		return true
	default:
		return false
	}
}

// processSGR decodes the semicolon-separated SGR parameter list into one
// SGR value per sub-code, expanding the extended-color forms
// "38;2;r;g;b"/"38;5;n" and "48;2;r;g;b"/"48;5;n".
func processSGR(ps []int) []SGR {
	var out []SGR
	for i := 0; i < len(ps); i++ {
		code := ps[i]
		switch code {
		case 0:
			out = append(out, SGR{Kind: SGRReset})
		case 1:
			out = append(out, SGR{Kind: SGRIntensity, Intensity: termscreen.IntensityBold})
		case 2:
			out = append(out, SGR{Kind: SGRIntensity, Intensity: termscreen.IntensityDim})
		case 22:
			out = append(out, SGR{Kind: SGRIntensity, Intensity: termscreen.IntensityNormal})
		case 3:
			out = append(out, SGR{Kind: SGRItalic, Bool: true})
		case 23:
			out = append(out, SGR{Kind: SGRItalic, Bool: false})
		case 4:
			out = append(out, SGR{Kind: SGRUnderline, Underline: termscreen.UnderlineSingle})
		case 21:
			out = append(out, SGR{Kind: SGRUnderline, Underline: termscreen.UnderlineDouble})
		case 24:
			out = append(out, SGR{Kind: SGRUnderline, Underline: termscreen.UnderlineNone})
		case 7:
			out = append(out, SGR{Kind: SGRInverse, Bool: true})
		case 27:
			out = append(out, SGR{Kind: SGRInverse, Bool: false})
		case 8:
			out = append(out, SGR{Kind: SGRInvisible, Bool: true})
		case 28:
			out = append(out, SGR{Kind: SGRInvisible, Bool: false})
		case 9:
			out = append(out, SGR{Kind: SGRStrikethrough, Bool: true})
		case 29:
			out = append(out, SGR{Kind: SGRStrikethrough, Bool: false})
		case 5, 6, 50, 51, 52, 53, 58, 59:
			// Blink, Font, Overline, VerticalAlign, UnderlineColor: unsupported, ignored.
			out = append(out, SGR{Kind: SGRIgnored})
		case 30, 31, 32, 33, 34, 35, 36, 37:
			out = append(out, SGR{Kind: SGRForeground, Color: PaletteColorSpec(uint8(code - 30))})
		case 90, 91, 92, 93, 94, 95, 96, 97:
			out = append(out, SGR{Kind: SGRForeground, Color: PaletteColorSpec(uint8(code-90) + 8)})
		case 39:
			out = append(out, SGR{Kind: SGRForeground, Color: DefaultColorSpec})
		case 40, 41, 42, 43, 44, 45, 46, 47:
			out = append(out, SGR{Kind: SGRBackground, Color: PaletteColorSpec(uint8(code - 40))})
		case 100, 101, 102, 103, 104, 105, 106, 107:
			out = append(out, SGR{Kind: SGRBackground, Color: PaletteColorSpec(uint8(code-100) + 8)})
		case 49:
			out = append(out, SGR{Kind: SGRBackground, Color: DefaultColorSpec})
		case 38, 48:
			spec, consumed := decodeExtendedColor(ps[i+1:])
			i += consumed
			kind := SGRForeground
			if code == 48 {
				kind = SGRBackground
			}
			out = append(out, SGR{Kind: kind, Color: spec})
		}
	}
	return out
}

// decodeExtendedColor parses the tail of an extended SGR color code
// ("2;r;g;b" or "5;n") and returns how many of rest it consumed.
func decodeExtendedColor(rest []int) (ColorSpec, int) {
	if len(rest) == 0 {
		return DefaultColorSpec, 0
	}
	switch rest[0] {
	case 2:
		if len(rest) >= 4 {
			return TrueColorSpec(uint8(rest[1]), uint8(rest[2]), uint8(rest[3]), 255), 4
		}
	case 5:
		if len(rest) >= 2 {
			return PaletteColorSpec(uint8(rest[1])), 2
		}
	}
	return DefaultColorSpec, len(rest)
}

// classifyOSC routes an OSC parameter list to a TerminalAction.
func classifyOSC(raw [][]byte) TerminalAction {
	if len(raw) == 0 {
		return TerminalAction{Kind: KindOSC, OSC: OSC{Kind: OSCOther}}
	}

	first := atoiBytes(raw[0])

	switch {
	case first >= 10 && first <= 19:
		return classifyChangeDynamicColors(first, raw[1:])
	case first == 110 || first == 111 || first == 112:
		return TerminalAction{Kind: KindOSC, OSC: OSC{Kind: OSCResetDynamicColor, Target: targetForNumber(first - 100)}}
	case first == 104:
		return TerminalAction{Kind: KindOSC, OSC: OSC{Kind: OSCResetColors, Indexes: parseIndexes(raw[1:])}}
	default:
		return TerminalAction{Kind: KindOSC, OSC: OSC{Kind: OSCOther}}
	}
}

func classifyChangeDynamicColors(first int, colorArgs [][]byte) TerminalAction {
	requests := make([]DynamicColorRequest, 0, len(colorArgs))
	for _, arg := range colorArgs {
		if string(arg) == "?" {
			requests = append(requests, DynamicColorRequest{IsQuery: true})
			continue
		}
		if spec, ok := parseXParseColor(string(arg)); ok {
			requests = append(requests, DynamicColorRequest{Color: spec})
			continue
		}
		requests = append(requests, DynamicColorRequest{Color: DefaultColorSpec})
	}
	return TerminalAction{
		Kind: KindOSC,
		OSC:  OSC{Kind: OSCChangeDynamicColors, First: targetForNumber(first), Requests: requests},
	}
}

func targetForNumber(n int) DynamicColorTarget {
	switch n {
	case 10:
		return TargetTextForeground
	case 11:
		return TargetTextBackground
	case 12:
		return TargetTextCursor
	case 13:
		return TargetMouseForeground
	case 14:
		return TargetMouseBackground
	case 15:
		return TargetTektronixForeground
	case 16:
		return TargetTektronixBackground
	case 17:
		return TargetHighlightBackground
	case 18:
		return TargetTektronixCursor
	case 19:
		return TargetHighlightForeground
	default:
		return TargetOther
	}
}

func atoiBytes(b []byte) int {
	n := 0
	for _, c := range b {
		if c < '0' || c > '9' {
			return n
		}
		n = n*10 + int(c-'0')
	}
	return n
}

func parseIndexes(args [][]byte) []int {
	out := make([]int, 0, len(args))
	for _, a := range args {
		out = append(out, atoiBytes(a))
	}
	return out
}

// parseXParseColor accepts the two forms dynamic-color set sequences
// actually use in the wild: "rgb:rr/gg/bb" and "#rrggbb".
func parseXParseColor(s string) (ColorSpec, bool) {
	if len(s) == 7 && s[0] == '#' {
		r, ok1 := hexByte(s[1:3])
		g, ok2 := hexByte(s[3:5])
		b, ok3 := hexByte(s[5:7])
		if ok1 && ok2 && ok3 {
			return TrueColorSpec(r, g, b, 255), true
		}
	}
	if len(s) >= 12 && s[:4] == "rgb:" {
		parts := s[4:]
		segs := splitN(parts, '/', 3)
		if len(segs) == 3 {
			r, ok1 := hexByte(segs[0][:2])
			g, ok2 := hexByte(segs[1][:2])
			b, ok3 := hexByte(segs[2][:2])
			if ok1 && ok2 && ok3 {
				return TrueColorSpec(r, g, b, 255), true
			}
		}
	}
	return ColorSpec{}, false
}

func hexByte(s string) (uint8, bool) {
	if len(s) != 2 {
		return 0, false
	}
	v := 0
	for _, c := range s {
		v *= 16
		switch {
		case c >= '0' && c <= '9':
			v += int(c - '0')
		case c >= 'a' && c <= 'f':
			v += int(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v += int(c-'A') + 10
		default:
			return 0, false
		}
	}
	return uint8(v), true
}

func splitN(s string, sep byte, n int) []string {
	out := make([]string, 0, n)
	start := 0
	for i := 0; i < len(s) && len(out) < n-1; i++ {
		if s[i] == sep {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}
