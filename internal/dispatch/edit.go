package dispatch

import (
	"github.com/lhenry-dev/shellshot-go/internal/action"
	"github.com/lhenry-dev/shellshot-go/internal/termscreen"
)

func dispatchEdit(screen *termscreen.Screen, e action.Edit) {
	switch e.Kind {
	case action.EditEraseCharacter:
		screen.EraseCharacters(e.N)
	case action.EditOther:
		// DeleteCharacter, DeleteLine, EraseInLine, EraseInDisplay,
		// InsertCharacter, InsertLine, ScrollUp, ScrollDown, Repeat: no-op.
	}
}
