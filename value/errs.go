package value

import "errors"

// ErrWire indicates a wire form that does not describe a valid Value.
var ErrWire = errors.New("malformed wire value")
