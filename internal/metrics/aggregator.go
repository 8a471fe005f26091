package metrics

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"litemon/internal/config"
)

// Aggregator assembles one Snapshot per sampling tick from the per-family
// sources. A failing family degrades to its nil "no data" section; it
// never aborts the tick or disturbs the other families.
type Aggregator struct {
	cpu     CPUSource
	memory  MemorySource
	disks   DiskSource
	network NetworkSource
	gpu     GPUSource
	system  SystemSource

	// gpuSupported is the result of the one-time startup probe. When false
	// the GPU source is never sampled again.
	gpuSupported bool

	// lastTimestamp enforces strictly increasing snapshot timestamps even
	// on coarse clocks.
	mu            sync.Mutex
	lastTimestamp time.Time

	log zerolog.Logger
}

// NewAggregator creates an aggregator backed by the real OS adapters.
func NewAggregator(ctx context.Context, cfg *config.Config, log zerolog.Logger) *Aggregator {
	return NewAggregatorWithSources(
		NewCPUAdapter(ctx),
		NewMemoryAdapter(),
		NewDiskAdapter(cfg.Disk.ExcludeFstypes),
		NewNetworkAdapter(),
		NewGPUAdapter(ctx, cfg.GPU.Enabled),
		NewSystemAdapter(),
		log,
	)
}

// NewAggregatorWithSources creates an aggregator from explicit sources.
// The GPU probe happens here, once; tests use this to inject fakes.
func NewAggregatorWithSources(cpu CPUSource, memory MemorySource, disks DiskSource, network NetworkSource, gpu GPUSource, system SystemSource, log zerolog.Logger) *Aggregator {
	supported := gpu != nil && gpu.Supported()
	if !supported {
		log.Info().Msg("gpu unsupported, omitting from all snapshots")
	}

	return &Aggregator{
		cpu:          cpu,
		memory:       memory,
		disks:        disks,
		network:      network,
		gpu:          gpu,
		system:       system,
		gpuSupported: supported,
		log:          log,
	}
}

// GPUSupported reports whether snapshots will carry a GPU section.
func (a *Aggregator) GPUSupported() bool {
	return a.gpuSupported
}

// Tick samples every family once and assembles an immutable Snapshot.
// Families are sampled concurrently so one slow OS query (typically disk
// enumeration) cannot delay the rest.
func (a *Aggregator) Tick(ctx context.Context) *Snapshot {
	snapshot := &Snapshot{Timestamp: a.nextTimestamp()}

	var wg sync.WaitGroup
	sample := func(family string, fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				a.log.Warn().Err(err).Str("family", family).Msg("sample failed")
			}
		}()
	}

	sample("cpu", func() (err error) {
		snapshot.CPU, err = a.cpu.Sample(ctx)
		return err
	})
	sample("memory", func() (err error) {
		snapshot.Memory, err = a.memory.Sample(ctx)
		return err
	})
	sample("disk", func() (err error) {
		snapshot.Disks, err = a.disks.Sample(ctx)
		return err
	})
	sample("network", func() (err error) {
		snapshot.Network, err = a.network.Sample(ctx)
		return err
	})
	sample("system", func() (err error) {
		snapshot.System, err = a.system.Sample(ctx)
		return err
	})
	if a.gpuSupported {
		sample("gpu", func() (err error) {
			snapshot.GPU, err = a.gpu.Sample(ctx)
			return err
		})
	}

	wg.Wait()
	return snapshot
}

// nextTimestamp returns a timestamp strictly greater than any previous one.
func (a *Aggregator) nextTimestamp() time.Time {
	a.mu.Lock()
	defer a.mu.Unlock()

	ts := time.Now()
	if !ts.After(a.lastTimestamp) {
		ts = a.lastTimestamp.Add(time.Nanosecond)
	}
	a.lastTimestamp = ts
	return ts
}
