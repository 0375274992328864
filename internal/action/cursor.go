package action

// CursorKind tags which cursor-movement CSI variant was parsed.
type CursorKind int

const (
	// Absolute moves: zero-based operand coordinate.
	CursorCharacterAbsolute CursorKind = iota
	CursorCharacterPositionAbsolute
	CursorLinePositionAbsolute
	CursorPosition
	CursorCharacterAndLinePosition

	// Relative moves: saturate at grid edges.
	CursorUp
	CursorDown
	CursorLeft
	CursorRight
	CursorCharacterPositionForward
	CursorCharacterPositionBackward
	CursorLinePositionForward
	CursorLinePositionBackward

	CursorForwardTabulation
	CursorBackwardTabulation
	CursorNextLine
	CursorPrecedingLine

	CursorSaveCursor
	CursorRestoreCursor
	CursorRequestActivePositionReport

	// Accepted but no-op: TabulationClear, inbound ActivePositionReport,
	// TabulationControl, LineTabulation, margin ops, CursorStyle.
	CursorOther
)

// Cursor carries the decoded payload for a cursor-movement CSI sequence.
// Row/Col are the zero-based coordinates of the absolute variants; N is
// the count for every relative move (Up/Down/Left/Right and the
// CharacterPosition/LinePosition Forward/Backward pairs), tabulation, and
// NextLine/PrecedingLine.
type Cursor struct {
	Kind CursorKind
	Row  int
	Col  int
	N    int
}
