package search

import (
	"errors"
	"fmt"
)

// ErrTooManyFields is returned when a dataset has more fields than a
// selection mask can address.
var ErrTooManyFields = errors.New("too many fields")

// PanicError wraps a panic recovered inside an enumeration worker.
type PanicError struct {
	Worker int
	Value  any
	Stack  []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("search worker %d panicked: %v", e.Worker, e.Value)
}
