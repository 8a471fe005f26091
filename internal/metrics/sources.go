package metrics

import "context"

// Per-family source contracts. The aggregator depends only on these,
// never on a concrete adapter, so tests can swap in fakes and a failing
// family can be isolated without touching the others.
//
// Sample implementations must return an error instead of panicking; the
// aggregator converts any error into the nil "no data" sentinel for that
// family only.

// CPUSource samples CPU usage and topology.
type CPUSource interface {
	Sample(ctx context.Context) (*CPUInfo, error)
}

// MemorySource samples physical and swap memory.
type MemorySource interface {
	Sample(ctx context.Context) (*MemoryInfo, error)
}

// DiskSource enumerates mounted filesystems in a deterministic order.
type DiskSource interface {
	Sample(ctx context.Context) ([]DiskInfo, error)
}

// NetworkSource samples aggregate network counters and derives rates.
type NetworkSource interface {
	Sample(ctx context.Context) (*NetworkInfo, error)
}

// GPUSource samples the GPU. Supported is probed exactly once at startup;
// when it reports false the aggregator omits the GPU section from every
// snapshot without ever calling Sample.
type GPUSource interface {
	Supported() bool
	Sample(ctx context.Context) (*GPUInfo, error)
}

// SystemSource samples general host information.
type SystemSource interface {
	Sample(ctx context.Context) (*SystemInfo, error)
}
