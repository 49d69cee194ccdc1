package header

import "errors"

// Errors returned (or, for misuse, panicked) by Block and Line.
var (
	// ErrLineOpen is the panic value used when a Block is asked for a new Line
	// or asked to close while the previous Line has not been closed yet.
	ErrLineOpen = errors.New("header line still open")

	// ErrClosed is returned when writing to or closing a Line or Block that has
	// already been closed. Block.Line() panics with it when called on a closed
	// Block.
	ErrClosed = errors.New("header already closed")
)
