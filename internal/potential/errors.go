package potential

import "errors"

// ErrParameterBounds indicates a mass, separation or gravitational constant
// that is not a positive finite number.
var ErrParameterBounds = errors.New("potential: parameter out of valid bounds")
