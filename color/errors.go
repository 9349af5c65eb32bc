package color

import "errors"

var (
	// ErrInvalidHex is returned for hex strings that are not 3 or 6 hex digits
	ErrInvalidHex = errors.New("invalid hex color")

	// ErrInvalidColor is returned by Parse for unrecognized notations
	ErrInvalidColor = errors.New("invalid color")
)
