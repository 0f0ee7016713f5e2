// Package backend abstracts the compute device a colony engine runs on
// (spec.md §4.4). The original tool dispatched work to an OpenCL device
// selected at startup; no OpenCL or CUDA binding in this module's dependency
// corpus has genuine grounded usage, so this package re-expresses the same
// device/program/buffer/dispatch responsibilities as a goroutine worker
// pool built on golang.org/x/sync/errgroup. A work-group colony engine asks
// SelectDevice for a Device, then uses Dispatch to fan work out across it;
// a sequential engine never touches this package.
package backend
