package colonymat

import "errors"

// ErrInvalidDimension indicates a requested matrix dimension is non-positive.
var ErrInvalidDimension = errors.New("colonymat: dimension must be > 0")

// ErrIndexOutOfBounds indicates a row or column index outside [0, n).
var ErrIndexOutOfBounds = errors.New("colonymat: index out of bounds")

// ErrDimensionMismatch indicates two matrices have incompatible sizes for
// an elementwise operation.
var ErrDimensionMismatch = errors.New("colonymat: dimension mismatch")
