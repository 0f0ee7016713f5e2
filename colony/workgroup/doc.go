// Package workgroup implements the accelerator-style colony engine: ants
// advance concurrently across a backend.Device using bitmask eligibility
// instead of integer counters (spec.md §4.1.1's "per-ant work-group"
// variant). Grounded on the original tool's depmask/samplemask OpenCL
// kernels, reworked onto backend.Dispatch instead of a real device queue.
package workgroup
