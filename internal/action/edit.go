package action

// EditKind tags which CSI "edit" variant was parsed. Only EraseCharacter
// has observable behavior; DeleteCharacter, DeleteLine, EraseInLine,
// EraseInDisplay, InsertCharacter, InsertLine, ScrollUp, ScrollDown, and
// Repeat are accepted but are no-ops.
type EditKind int

const (
	EditEraseCharacter EditKind = iota
	EditOther
)

// Edit carries the decoded payload for a CSI "edit" sequence.
type Edit struct {
	Kind EditKind
	N    int
}
