package sopfile

import "errors"

// ErrMissingEdgeWeightSection indicates the file never declared an
// EDGE_WEIGHT_SECTION.
var ErrMissingEdgeWeightSection = errors.New("sopfile: missing EDGE_WEIGHT_SECTION")

// ErrMalformedDimension indicates the line following EDGE_WEIGHT_SECTION
// was not a positive integer.
var ErrMalformedDimension = errors.New("sopfile: malformed dimension line")

// ErrTruncatedMatrix indicates the file ended before N rows of the weight
// matrix were read.
var ErrTruncatedMatrix = errors.New("sopfile: truncated weight matrix")

// ErrMalformedRow indicates a matrix row did not contain N integers.
var ErrMalformedRow = errors.New("sopfile: malformed matrix row")
