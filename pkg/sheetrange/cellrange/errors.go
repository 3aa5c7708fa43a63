package cellrange

import "github.com/cockroachdb/errors"

// ErrInvalidRange indicates a range whose start bound exceeds its end bound
// or whose bounds fall below 1.
var ErrInvalidRange = errors.New("invalid range")

// ErrInvalidReference indicates text that is not a valid A1 reference.
var ErrInvalidReference = errors.New("invalid cell reference")
