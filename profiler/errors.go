package profiler

import "errors"

// ErrNoMeasurements indicates Analyze was called for an id that was never
// started and stopped at least once.
var ErrNoMeasurements = errors.New("profiler: no measurements recorded for id")
