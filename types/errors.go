package types

import "errors"

var (
	ErrDegenerateGeometry = errors.New("types: degenerate geometry")
)
