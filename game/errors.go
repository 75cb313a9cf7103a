package game

import "errors"

// Rejection reasons for submitted actions. An action either applies in full
// or returns one of these (usually wrapped with detail) and leaves the state
// untouched.
var (
	ErrGameOver           = errors.New("game is already over")
	ErrNotYourTurn        = errors.New("not your turn")
	ErrOutOfBounds        = errors.New("coordinate out of bounds")
	ErrNoPieceAtSource    = errors.New("no piece at source coordinate")
	ErrNotOwner           = errors.New("piece belongs to another player")
	ErrIllegalDestination = errors.New("destination is not a legal move")
	ErrIllegalAlienOp     = errors.New("illegal alien operation")
)
