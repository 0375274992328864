package action

import (
	"strings"

	"github.com/danielgatis/go-vte/vte"
)

// Parser tokenizes a byte stream into TerminalActions. It wraps
// vte.Parser (the same tokenizer family alacritty/wezterm build on) for
// the mechanical job of splitting C0/C1 controls, CSI, OSC, ESC, and DCS
// sequences out of arbitrary byte slices — including ones that split a
// sequence mid-stream — and layers semantic classification (which CSI
// final byte means "cursor move" vs "edit" vs "SGR", which OSC number
// means "dynamic color") on top of vte's raw params/intermediates/final
// triples.
//
// State (a partially parsed CSI/OSC/DCS sequence, and a pending run of
// contiguous printable characters not yet flushed into a PrintString)
// persists across Parse calls, so a sequence split across two Write
// calls from the pty still produces exactly the actions a single call
// with the concatenated bytes would.
type Parser struct {
	inner     *vte.Parser
	performer *performer
}

// NewParser returns a Parser ready to consume bytes from the start of a
// stream.
func NewParser() *Parser {
	p := &performer{}
	return &Parser{inner: vte.NewParser(), performer: p}
}

// Parse feeds chunk through the tokenizer, appending every TerminalAction
// it produces to *sink. chunk may be any slice, including one that ends
// mid-sequence; the remainder is buffered internally until completed by a
// later call.
func (p *Parser) Parse(chunk []byte, sink *[]TerminalAction) {
	p.performer.sink = sink
	for _, b := range chunk {
		p.inner.Advance(p.performer, b)
	}
	p.performer.sink = nil
}

// Flush emits any accumulated printable run as a final PrintString. Call
// this once after the byte stream is exhausted (EOF): without it, a
// trailing printable run with no following control/CSI/OSC byte to
// interrupt it would never be appended to a sink.
func (p *Parser) Flush(sink *[]TerminalAction) {
	p.performer.sink = sink
	p.performer.flushPending()
	p.performer.sink = nil
}

// performer implements vte.Performer, translating tokenizer callbacks
// into TerminalActions appended to the current sink.
type performer struct {
	sink    *[]TerminalAction
	pending strings.Builder
}

func (p *performer) emit(a TerminalAction) {
	p.flushPending()
	*p.sink = append(*p.sink, a)
}

func (p *performer) flushPending() {
	if p.pending.Len() == 0 {
		return
	}
	*p.sink = append(*p.sink, PrintString(p.pending.String()))
	p.pending.Reset()
}

// Print accumulates a contiguous printable run; it is flushed into a
// single PrintString action as soon as a non-print event interrupts it.
func (p *performer) Print(r rune) {
	p.pending.WriteRune(r)
}

// Execute handles C0/C1 control bytes.
func (p *performer) Execute(b byte) {
	var code ControlCode
	switch b {
	case 0x0A, 0x0B, 0x0C, 0x85: // LF, VT, FF, NEL (C1) all behave as CRLF
		code = ControlLF
	case 0x0D: // CR
		code = ControlCR
	case 0x09: // HT
		code = ControlHT
	case 0x08: // BS
		code = ControlBS
	default:
		code = ControlOther
	}
	p.emit(Control(code))
}

// Hook/Put/Unhook (DCS) are entirely ignored per spec: DCS carries Sixel
// and similar image protocols this module does not render.
func (p *performer) Hook(params *vte.Params, intermediates []byte, ignore bool, action rune) {
	p.emit(Ignored())
}

func (p *performer) Put(b byte) {}

func (p *performer) Unhook() {}

// EscDispatch covers bare ESC sequences (not CSI/OSC/DCS). ESC M (Reverse
// Index) is the one bare escape spec.md gives behavior to; everything else
// is a no-op.
func (p *performer) EscDispatch(intermediates []byte, ignore bool, b byte) {
	if len(intermediates) == 0 && b == 'M' {
		p.emit(Control(ControlRI))
		return
	}
	p.emit(Ignored())
}

// OscDispatch classifies OSC sequences by their leading numeric
// parameter into dynamic-color operations or a no-op bucket.
func (p *performer) OscDispatch(params [][]byte, bellTerminated bool) {
	p.emit(classifyOSC(params))
}

// CsiDispatch classifies CSI sequences by final byte (and, for 'm',
// leaves sub-decoding to the SGR classifier) into the CSI sub-families
// the spec enumerates: SGR, Cursor, Edit, Mode, Device, Mouse, Window,
// Keyboard, CharacterPath, or Unspecified.
func (p *performer) CsiDispatch(params *vte.Params, intermediates []byte, ignore bool, action rune) {
	if ignore {
		p.emit(TerminalAction{Kind: KindCSIUnspecified})
		return
	}
	ps := csiParams(params)
	p.dispatchCSI(action, intermediates, ps)
}

// csiParams flattens vte's possibly-subparameterized Params into the
// first value of each top-level group, which is sufficient for every CSI
// sequence this module gives semantic meaning to.
func csiParams(params *vte.Params) []int {
	if params == nil {
		return nil
	}
	var out []int
	for _, group := range params.Iter() {
		if len(group) == 0 {
			continue
		}
		out = append(out, int(group[0]))
	}
	return out
}

func paramOr(ps []int, idx int, def int) int {
	if idx < len(ps) {
		return ps[idx]
	}
	return def
}
