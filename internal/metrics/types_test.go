package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryInfo_UsedPercent(t *testing.T) {
	m := MemoryInfo{UsedBytes: 4 << 30, TotalBytes: 16 << 30}
	assert.InDelta(t, 25.0, m.UsedPercent(), 0.001)

	assert.Zero(t, MemoryInfo{}.UsedPercent())
}

func TestMemoryInfo_SwapPercent(t *testing.T) {
	m := MemoryInfo{SwapUsedBytes: 1 << 30, SwapTotalBytes: 2 << 30}
	assert.InDelta(t, 50.0, m.SwapPercent(), 0.001)

	// No swap configured at all
	assert.Zero(t, MemoryInfo{SwapUsedBytes: 0, SwapTotalBytes: 0}.SwapPercent())
}

func TestDiskInfo_UsedPercent(t *testing.T) {
	d := DiskInfo{UsedBytes: 90, TotalBytes: 100}
	assert.InDelta(t, 90.0, d.UsedPercent(), 0.001)

	assert.Zero(t, DiskInfo{}.UsedPercent())
}

func TestGPUInfo_MemoryPercent(t *testing.T) {
	g := GPUInfo{MemoryUsed: 2048, MemoryTotal: 10240}
	assert.InDelta(t, 20.0, g.MemoryPercent(), 0.001)

	assert.Zero(t, GPUInfo{}.MemoryPercent())
}
