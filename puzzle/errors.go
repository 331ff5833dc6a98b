package puzzle

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownPuzzle is returned for ids that were never registered.
var ErrUnknownPuzzle = errors.New("unrecognized puzzle")

// ErrorSet defines a list of one or more errors and is itself an error.
type ErrorSet []error

func (e ErrorSet) Len() int {
	return len(e)
}

func (e *ErrorSet) Append(args ...error) {
	*e = append(*e, args...)
}

func (e ErrorSet) Error() string {
	var sb strings.Builder
	for _, err := range e {
		sb.WriteString(err.Error() + "\n")
	}
	return sb.String()
}

// Is reports whether any error in the set matches target.
func (e ErrorSet) Is(target error) bool {
	for _, err := range e {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
