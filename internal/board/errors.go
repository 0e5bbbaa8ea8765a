package board

import "errors"

// Sentinel errors returned by parsing and validation routines. Callers
// should use errors.Is against these rather than comparing strings.
var (
	ErrInvalidFEN    = errors.New("invalid FEN")
	ErrInvalidMove   = errors.New("invalid move")
	ErrInvalidSquare = errors.New("invalid square")
)
