// Package action turns a raw byte stream into the tagged TerminalAction
// sequence internal/dispatch consumes. It wraps a VT state-machine
// tokenizer (github.com/danielgatis/go-vte) rather than hand-rolling one,
// and layers the semantic CSI/OSC classification spec'd by the terminal
// this module renders screenshots of on top of the tokenizer's raw
// params/intermediates/final-byte triples.
package action

// Kind tags which field of a TerminalAction is meaningful.
type Kind int

const (
	KindPrint Kind = iota
	KindPrintString
	KindControl
	KindCSISGR
	KindCSICursor
	KindCSIEdit
	KindCSIMode
	KindCSIDevice
	KindCSIMouse
	KindCSIWindow
	KindCSIKeyboard
	KindCSICharacterPath
	KindCSIUnspecified
	KindOSC
	KindIgnored // Esc / DCS / Sixel / Kitty image / XTGETTCAP
)

// ControlCode names the C0/C1 control codes dispatch gives distinct
// handling to; everything else collapses to ControlOther.
type ControlCode int

const (
	ControlLF ControlCode = iota
	ControlVT
	ControlFF
	ControlNEL
	ControlCR
	ControlHT
	ControlBS
	ControlRI
	ControlOther
)

// TerminalAction is the tagged union the parser emits and dispatch
// consumes, one value per logical terminal operation.
type TerminalAction struct {
	Kind    Kind
	Char    rune
	Text    string
	Control ControlCode
	SGR     SGR
	Cursor  Cursor
	Edit    Edit
	OSC     OSC
}

// Print builds a single print action.
func Print(r rune) TerminalAction { return TerminalAction{Kind: KindPrint, Char: r} }

// PrintString builds a batched contiguous printable run.
func PrintString(s string) TerminalAction { return TerminalAction{Kind: KindPrintString, Text: s} }

// Control builds a control-code action.
func Control(c ControlCode) TerminalAction { return TerminalAction{Kind: KindControl, Control: c} }

// Ignored builds a no-op action (Esc/DCS/Sixel/Kitty/XTGETTCAP).
func Ignored() TerminalAction { return TerminalAction{Kind: KindIgnored} }
