// Package builder drives the read-parse-dispatch loop that turns a pty's
// byte stream into a finished Screen: pull bytes from the reader, tokenize
// them, dispatch each resulting action against the screen, and once the
// stream is exhausted, auto-crop any dimension the caller left to Auto.
package builder

import (
	"bufio"
	"errors"
	"io"

	"github.com/lhenry-dev/shellshot-go/internal/action"
	"github.com/lhenry-dev/shellshot-go/internal/dimension"
	"github.com/lhenry-dev/shellshot-go/internal/dispatch"
	"github.com/lhenry-dev/shellshot-go/internal/shellshoterr"
	"github.com/lhenry-dev/shellshot-go/internal/termscreen"
)

const readChunkSize = 4096

// Builder constructs the final Screen for one command run.
type Builder struct {
	Cols dimension.Dimension
	Rows dimension.Dimension
}

// Run reads from r until EOF, dispatching every action it tokenizes
// against a freshly built Screen, writing any reply bytes (cursor
// position reports, color echoes) to w. It returns the final,
// auto-cropped Screen. I/O errors other than EOF are fatal; dispatch
// itself never fails.
func (b Builder) Run(r *bufio.Reader, w io.Writer) (*termscreen.Screen, error) {
	cols := int(b.Cols.Resolve(250))
	rows := int(b.Rows.Resolve(500))
	screen := termscreen.New(cols, rows)

	parser := action.NewParser()
	buf := make([]byte, readChunkSize)
	var actions []action.TerminalAction

	for {
		n, err := r.Read(buf)
		if n > 0 {
			actions = actions[:0]
			parser.Parse(buf[:n], &actions)
			for _, a := range actions {
				dispatch.Dispatch(screen, w, a)
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, shellshoterr.Wrap(shellshoterr.ErrIO, "reading pty output", err)
		}
	}

	actions = actions[:0]
	parser.Flush(&actions)
	for _, a := range actions {
		dispatch.Dispatch(screen, w, a)
	}

	if b.Cols.IsAuto() || b.Rows.IsAuto() {
		c, r2 := screen.Dimensions()
		newCols, newRows := autoCropDimensions(screen)
		if b.Cols.IsAuto() {
			c = newCols
		}
		if b.Rows.IsAuto() {
			r2 = newRows
		}
		screen.Resize(c, r2)
	}

	return screen, nil
}

// autoCropDimensions computes the bounding box of real content: the
// smallest width/height, measured from (0,0), that still contains every
// non-blank cell. Only trailing blank rows/columns are trimmed — the
// origin never moves, matching the upstream resize behavior this is
// ported from, which only ever shrinks from the max index downward. If no
// cell has content, both are 0, matching the original implementation's
// `resize_surface` fold (`.unwrap_or(0)`) on a fully blank screen.
func autoCropDimensions(screen *termscreen.Screen) (cols, rows int) {
	lines := screen.ScreenLines()
	maxCol := 0
	lastNonBlankRow := -1

	for y, row := range lines {
		for x := len(row) - 1; x >= 0; x-- {
			if !row[x].IsBlank() {
				if x+1 > maxCol {
					maxCol = x + 1
				}
				lastNonBlankRow = y
				break
			}
		}
	}

	return maxCol, lastNonBlankRow + 1
}
