// Package shellshoterr defines the fatal error taxonomy shared across the
// pty-to-image pipeline, mirroring the component error table in the spec
// this module was built from: one sentinel per failure kind, carried in an
// Error whose Unwrap exposes both the sentinel and any cause, so callers can
// match via errors.Is while still carrying human context.
package shellshoterr

import "errors"

// Sentinel kinds. Timeout is informational: hitting it still yields a
// partial Screen and a successful render, it is only surfaced for logging.
var (
	ErrEmptyCommand    = errors.New("command must not be empty")
	ErrPtyOpen         = errors.New("failed to open pty")
	ErrCloneReader     = errors.New("failed to clone pty reader")
	ErrTakeWriter      = errors.New("failed to take pty writer")
	ErrSpawnChild      = errors.New("failed to spawn child process")
	ErrIO              = errors.New("i/o error")
	ErrThreadJoin      = errors.New("failed to join worker goroutine")
	ErrTerminalBuilder = errors.New("terminal builder error")
	ErrTimeout         = errors.New("command timed out")
	ErrFontLoad        = errors.New("failed to load font")
	ErrCanvasInit      = errors.New("failed to initialize canvas")
	ErrImageCreation   = errors.New("failed to create image")
	ErrSave            = errors.New("failed to save output")
	ErrClipboard       = errors.New("failed to write to clipboard")
)

// Error wraps a sentinel kind with contextual detail, matching the
// one-struct-per-failure shape of the original implementation's error enum
// without inventing a parallel type per kind.
type Error struct {
	Kind    error
	Context string
	Cause   error
}

// New builds an Error with a human-readable context string and no cause.
func New(kind error, context string) *Error {
	return &Error{Kind: kind, Context: context}
}

// Wrap builds an Error from a lower-level cause.
func Wrap(kind error, context string, cause error) *Error {
	return &Error{Kind: kind, Context: context, Cause: cause}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Kind.Error() + ": " + e.Context + ": " + e.Cause.Error()
	}
	if e.Context != "" {
		return e.Kind.Error() + ": " + e.Context
	}
	return e.Kind.Error()
}

// Unwrap exposes both the sentinel kind and the underlying cause to
// errors.Is/errors.As chains.
func (e *Error) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Kind, e.Cause}
	}
	return []error{e.Kind}
}

// IsInformational reports whether the error kind is Timeout, the only
// kind that does not abort the run: the caller still gets a Screen.
func IsInformational(err error) bool {
	return errors.Is(err, ErrTimeout)
}
