package metrics

import "time"

// Snapshot is one immutable, fully-assembled set of metric readings for a
// single sampling tick. A nil family section (or nil Disks slice) is the
// "no data" sentinel: the family's adapter failed or is unsupported for
// this tick. Snapshots are never mutated after construction; each tick
// produces a new one that replaces the previous pointer wholesale.
type Snapshot struct {
	Timestamp time.Time
	CPU       *CPUInfo
	Memory    *MemoryInfo
	Disks     []DiskInfo
	Network   *NetworkInfo
	GPU       *GPUInfo // nil if no GPU, GPU disabled, or the read failed
	System    *SystemInfo
}

// CPUInfo contains overall and per-core CPU usage.
type CPUInfo struct {
	Model        string
	Percent      float64
	FrequencyMHz float64
	// Cores is ordered by the OS's stable logical core enumeration;
	// index i refers to the same physical core on every tick.
	Cores []CoreInfo
}

// CoreInfo contains usage for a single logical core.
type CoreInfo struct {
	Percent      float64
	FrequencyMHz float64
}

// MemoryInfo contains physical and swap memory usage.
type MemoryInfo struct {
	UsedBytes      uint64
	TotalBytes     uint64
	SwapUsedBytes  uint64
	SwapTotalBytes uint64
}

// UsedPercent returns physical memory usage as a percentage.
func (m MemoryInfo) UsedPercent() float64 {
	if m.TotalBytes == 0 {
		return 0
	}
	return float64(m.UsedBytes) / float64(m.TotalBytes) * 100
}

// SwapPercent returns swap usage as a percentage.
func (m MemoryInfo) SwapPercent() float64 {
	if m.SwapTotalBytes == 0 {
		return 0
	}
	return float64(m.SwapUsedBytes) / float64(m.SwapTotalBytes) * 100
}

// DiskInfo contains usage for a single mounted filesystem.
type DiskInfo struct {
	Mount      string
	Device     string
	Fstype     string
	UsedBytes  uint64
	TotalBytes uint64
	Removable  bool
}

// UsedPercent returns disk usage as a percentage.
func (d DiskInfo) UsedPercent() float64 {
	if d.TotalBytes == 0 {
		return 0
	}
	return float64(d.UsedBytes) / float64(d.TotalBytes) * 100
}

// NetworkInfo contains aggregate network I/O across all interfaces.
// Rates are bytes per second derived from consecutive counter readings.
type NetworkInfo struct {
	RxRate  float64
	TxRate  float64
	RxTotal uint64
	TxTotal uint64
}

// GPUInfo contains usage for the first GPU (typically from nvidia-smi).
type GPUInfo struct {
	Name        string
	Percent     float64
	Temperature int
	MemoryUsed  uint64
	MemoryTotal uint64
}

// MemoryPercent returns VRAM usage as a percentage.
func (g GPUInfo) MemoryPercent() float64 {
	if g.MemoryTotal == 0 {
		return 0
	}
	return float64(g.MemoryUsed) / float64(g.MemoryTotal) * 100
}

// SystemInfo contains general host information for the dashboard header.
type SystemInfo struct {
	Hostname string
	OS       string
	Uptime   time.Duration
}
