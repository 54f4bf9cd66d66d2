package mines

import "errors"

var (
	ErrInvalidParams = errors.New("invalid game params")
	ErrOutOfBounds   = errors.New("cell out of bounds")
	ErrGameEnded     = errors.New("game has ended")
)

// AssertionError reports a broken internal invariant.
type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}
