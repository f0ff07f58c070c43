package life

import (
	"errors"
	"fmt"

	"neon-life/pkg/core"
)

var (
	// ErrOutOfBounds is matched by every *OutOfBoundsError.
	ErrOutOfBounds = errors.New("life: coordinates out of bounds")
	// ErrInvalidDimensions reports a non-positive width or height.
	ErrInvalidDimensions = errors.New("life: invalid dimensions")
	// ErrInvalidDensity reports a fill probability outside [0, 1].
	ErrInvalidDensity = errors.New("life: density outside [0,1]")
	// ErrUnknownBoundary reports an unrecognised boundary policy name.
	ErrUnknownBoundary = errors.New("life: unknown boundary policy")
	// ErrUnknownRule reports an unrecognised rule variant name.
	ErrUnknownRule = errors.New("life: unknown rule variant")
)

// OutOfBoundsError describes a coordinate access outside the grid.
type OutOfBoundsError struct {
	X, Y int
	Size core.Size
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("life: (%d,%d) outside %v grid", e.X, e.Y, e.Size)
}

// Is lets errors.Is match the ErrOutOfBounds sentinel.
func (e *OutOfBoundsError) Is(target error) bool { return target == ErrOutOfBounds }

func checkDimensions(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}
	return nil
}
