package fraction

import "errors"

// Error kinds returned by this package. Returned errors wrap one of these
// with context, so callers should test with errors.Is.
var (
	ErrInvalidConstruction = errors.New("denominator can't be zero")
	ErrDivideByZero        = errors.New("division by zero")
	ErrOverflow            = errors.New("integer overflow")
	ErrMalformedInput      = errors.New("malformed input")
)
