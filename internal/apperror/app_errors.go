package apperror

import "errors"

var (
	ErrInvalidMove  = errors.New("invalid move")
	ErrInvalidState = errors.New("invalid board state for search")
	ErrGameFinished = errors.New("game is already finished")
	ErrNotYourTurn  = errors.New("it's not your turn")
	ErrGameNotFound = errors.New("game not found")
)
