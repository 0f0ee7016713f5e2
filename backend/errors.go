package backend

import "errors"

// ErrBackendUnavailable indicates no device of the requested Kind could be
// selected (spec.md §7).
var ErrBackendUnavailable = errors.New("backend: no device available for requested kind")

// ErrUnknownContainerFormat indicates an unrecognized kernel container
// format. DetectContainerFormat does not return it: a payload whose magic
// number matches neither SPIR-V byte order is classified as FormatSource.
var ErrUnknownContainerFormat = errors.New("backend: unrecognized kernel container format")
