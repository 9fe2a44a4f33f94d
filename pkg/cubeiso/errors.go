package cubeiso

import (
	"errors"
	"fmt"
)

// ErrAmbiguousRequest indicates that not exactly one of the percentage and
// isovalue requests was provided.
var ErrAmbiguousRequest = errors.New("exactly one of percent or isovalue must be requested")

// InvalidSignError indicates an unrecognized sign selector.
type InvalidSignError struct {
	Sign string
}

func (e *InvalidSignError) Error() string {
	return fmt.Sprintf("invalid sign %q (must be %q or %q)", e.Sign, SignPositive, SignNegative)
}
