package backend

import "runtime"

// Kind identifies the class of device a colony engine wants to run on.
type Kind int

const (
	// KindCPU selects the host's own cores, run in-process.
	KindCPU Kind = iota
	// KindAccelerator selects the highest-concurrency device available;
	// on this module there is no real accelerator, so it resolves to the
	// same host cores as KindCPU with a distinct Device.Name.
	KindAccelerator
)

func (k Kind) String() string {
	switch k {
	case KindCPU:
		return "cpu"
	case KindAccelerator:
		return "accelerator"
	default:
		return "unknown"
	}
}

// Device describes a selected compute target: its kind, a human-readable
// name, and how many work items it can run concurrently.
type Device struct {
	Name        string
	Kind        Kind
	Concurrency int
}

// SelectDevice picks a Device for the requested Kind. Both kinds currently
// resolve to the host's logical CPU count. It fails with
// ErrBackendUnavailable for an unknown Kind, or for either kind if
// runtime.NumCPU reports fewer than one usable core, which cannot happen on
// a real host but is checked to keep the contract honest with spec.md §7's
// BackendUnavailable.
func SelectDevice(kind Kind) (Device, error) {
	n := runtime.NumCPU()
	if n < 1 {
		return Device{}, ErrBackendUnavailable
	}

	switch kind {
	case KindCPU:
		return Device{Name: "host-cpu", Kind: KindCPU, Concurrency: n}, nil
	case KindAccelerator:
		return Device{Name: "host-workgroup", Kind: KindAccelerator, Concurrency: n}, nil
	default:
		return Device{}, ErrBackendUnavailable
	}
}
