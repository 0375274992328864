package main

import (
	"time"

	"github.com/lhenry-dev/shellshot-go/internal/dimension"
	"github.com/lhenry-dev/shellshot-go/internal/shellshoterr"
)

// decorationKind selects which WindowDecoration capability set to render with.
type decorationKind string

const (
	decorationClassic decorationKind = "classic"
	decorationNone    decorationKind = "none"
)

// config is the CLI's resolved input: the command to run under the pty,
// how to size and time-box it, and where the resulting image goes.
type config struct {
	Command    []string
	Quiet      bool
	Decoration decorationKind
	Output     string
	Clipboard  bool
	Width      dimension.Dimension
	Height     dimension.Dimension
	Timeout    time.Duration
}

// validate enforces the mutual-exclusion and non-emptiness rules the spec
// places on CLI input: a non-empty command, and output xor clipboard.
func (c config) validate() error {
	if len(c.Command) == 0 {
		return shellshoterr.New(shellshoterr.ErrEmptyCommand, "no command given")
	}
	if c.Output != "" && c.Clipboard {
		return shellshoterr.New(shellshoterr.ErrSave, "--output and --clipboard are mutually exclusive")
	}
	if c.Output == "" && !c.Clipboard {
		return shellshoterr.New(shellshoterr.ErrSave, "one of --output or --clipboard is required")
	}
	return nil
}
