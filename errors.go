package backgammon

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidIndex   = errors.New("invalid point index")
	ErrInvalidMove    = errors.New("invalid move")
	ErrGameNotOver    = errors.New("game not over")
	ErrDieUnavailable = errors.New("die value not available")
	ErrInvalidState   = errors.New("action not allowed in current game state")
)

// Reason describes why a move was rejected.
type Reason int8

const (
	ReasonNone Reason = iota
	ReasonUnknownPlayer
	ReasonDieOutOfRange
	ReasonBarNeeded
	ReasonWrongBar
	ReasonOutOfRange
	ReasonEmptyOrigin
	ReasonOpponentChecker
	ReasonBlocked
	ReasonCannotBearOff
	ReasonGameOver
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonUnknownPlayer:
		return "player is not seated at this board"
	case ReasonDieOutOfRange:
		return "die must be between 1 and 6"
	case ReasonBarNeeded:
		return "checkers on the bar must enter first"
	case ReasonWrongBar:
		return "origin is the other player's bar"
	case ReasonOutOfRange:
		return "origin is not a point"
	case ReasonEmptyOrigin:
		return "no checker to move"
	case ReasonOpponentChecker:
		return "checker belongs to the opponent"
	case ReasonBlocked:
		return "destination is blocked"
	case ReasonCannotBearOff:
		return "cannot bear off"
	case ReasonGameOver:
		return "game is over"
	default:
		return fmt.Sprintf("Reason(%d)", int8(r))
	}
}

// MoveError is returned for rejected moves. It matches ErrInvalidMove with errors.Is.
type MoveError struct {
	Origin Origin
	Die    int8
	Reason Reason
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("invalid move from %s with %d: %s", e.Origin, e.Die, e.Reason)
}

func (e *MoveError) Unwrap() error {
	return ErrInvalidMove
}

// RejectionReason extracts the Reason from a move error, or ReasonNone.
func RejectionReason(err error) Reason {
	var moveErr *MoveError
	if errors.As(err, &moveErr) {
		return moveErr.Reason
	}
	return ReasonNone
}
