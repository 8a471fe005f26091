package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"litemon/internal/metrics"
)

func TestHistory_PushAndGet(t *testing.T) {
	h := NewHistory(10)

	for i := 1; i <= 3; i++ {
		h.Push(&metrics.Snapshot{
			CPU:     &metrics.CPUInfo{Percent: float64(i * 10)},
			Memory:  &metrics.MemoryInfo{UsedBytes: uint64(i), TotalBytes: 100},
			Network: &metrics.NetworkInfo{RxRate: float64(i * 100), TxRate: float64(i)},
		})
	}

	assert.Equal(t, []float64{10, 20, 30}, h.CPU(10))
	assert.Equal(t, []float64{1, 2, 3}, h.Memory(10))

	rx, tx := h.NetworkRates(10)
	assert.Equal(t, []float64{100, 200, 300}, rx)
	assert.Equal(t, []float64{1, 2, 3}, tx)
}

func TestHistory_MissingFamiliesSkipped(t *testing.T) {
	h := NewHistory(10)

	h.Push(&metrics.Snapshot{CPU: &metrics.CPUInfo{Percent: 50}})
	h.Push(&metrics.Snapshot{}) // every family failed this tick
	h.Push(&metrics.Snapshot{CPU: &metrics.CPUInfo{Percent: 60}})

	// The gap tick contributes nothing; values stay contiguous.
	assert.Equal(t, []float64{50, 60}, h.CPU(10))
	assert.Nil(t, h.Memory(10))
	assert.Nil(t, h.GPU(10))
}

func TestHistory_NilSnapshot(t *testing.T) {
	h := NewHistory(10)
	h.Push(nil)
	assert.Nil(t, h.CPU(10))
}

func TestHistory_GPUOnlyWhenPresent(t *testing.T) {
	h := NewHistory(10)

	h.Push(&metrics.Snapshot{GPU: &metrics.GPUInfo{Percent: 33}})
	h.Push(&metrics.Snapshot{})
	h.Push(&metrics.Snapshot{GPU: &metrics.GPUInfo{Percent: 44}})

	assert.Equal(t, []float64{33, 44}, h.GPU(10))
}

func TestRingBuffer_Wraps(t *testing.T) {
	r := newRingBuffer(3)
	for i := 1; i <= 5; i++ {
		r.push(float64(i))
	}

	// Only the newest 3 survive, oldest first
	assert.Equal(t, []float64{3, 4, 5}, r.getLast(3))
	assert.Equal(t, []float64{4, 5}, r.getLast(2))
}

func TestRingBuffer_PartialFill(t *testing.T) {
	r := newRingBuffer(5)
	r.push(1)
	r.push(2)

	assert.Equal(t, []float64{1, 2}, r.getLast(10))
	assert.Nil(t, r.getLast(0))
}

func TestNewHistory_DefaultSize(t *testing.T) {
	h := NewHistory(0)
	require.NotNil(t, h)
	assert.Equal(t, DefaultHistorySize, h.cpu.size)
}
