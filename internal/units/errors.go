package units

import "errors"

// ErrUnitMismatch indicates two operands whose physical units cannot be
// reconciled. Fatal: detected eagerly, never coerced.
var ErrUnitMismatch = errors.New("units: incompatible units")
