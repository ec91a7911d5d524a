package list

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfBounds is returned (wrapped) by every operation given an index outside its valid range.
var ErrIndexOutOfBounds = errors.New("index out of bounds")

func outOfBounds(op string, index int) error {
	return fmt.Errorf("%w: %s %d", ErrIndexOutOfBounds, op, index)
}
