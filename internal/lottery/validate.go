package lottery

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid draw history")
	ErrUnknownGame  = errors.New("unknown game")
)

// InvalidInputError reports a draw history of the wrong length.
type InvalidInputError struct {
	Game Game
	Want int
	Got  int
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: %s needs exactly %d numbers, got %d", ErrInvalidInput, e.Game, e.Want, e.Got)
}

func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }

// validateDraw only checks the count; duplicates and range are the caller's business.
func validateDraw(r Rules, draw []int) error {
	if len(draw) != r.DrawSize {
		return &InvalidInputError{Game: r.Game, Want: r.DrawSize, Got: len(draw)}
	}
	return nil
}
