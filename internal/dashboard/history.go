package dashboard

import (
	"sync"

	"litemon/internal/metrics"
)

// DefaultHistorySize is the default number of data points to retain per metric.
const DefaultHistorySize = 60

// History stores recent metric values in ring buffers for sparkline
// rendering. A snapshot whose family failed contributes nothing to that
// family's buffer, so sparklines simply pause across gaps.
type History struct {
	mu    sync.RWMutex
	cpu   *ringBuffer
	mem   *ringBuffer
	gpu   *ringBuffer
	netRx *ringBuffer
	netTx *ringBuffer
}

// NewHistory creates a history tracker with the specified buffer size.
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{
		cpu:   newRingBuffer(size),
		mem:   newRingBuffer(size),
		gpu:   newRingBuffer(size),
		netRx: newRingBuffer(size),
		netTx: newRingBuffer(size),
	}
}

// Push records the families present in a snapshot.
func (h *History) Push(s *metrics.Snapshot) {
	if s == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if s.CPU != nil {
		h.cpu.push(s.CPU.Percent)
	}
	if s.Memory != nil {
		h.mem.push(s.Memory.UsedPercent())
	}
	if s.GPU != nil {
		h.gpu.push(s.GPU.Percent)
	}
	if s.Network != nil {
		h.netRx.push(s.Network.RxRate)
		h.netTx.push(s.Network.TxRate)
	}
}

// CPU returns the last count CPU percentage values, oldest first.
func (h *History) CPU(count int) []float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cpu.getLast(count)
}

// Memory returns the last count memory percentage values, oldest first.
func (h *History) Memory(count int) []float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.mem.getLast(count)
}

// GPU returns the last count GPU percentage values, oldest first.
func (h *History) GPU(count int) []float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.gpu.getLast(count)
}

// NetworkRates returns the last count rx and tx rates, oldest first.
func (h *History) NetworkRates(count int) (rx, tx []float64) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.netRx.getLast(count), h.netTx.getLast(count)
}

// ringBuffer is a fixed-size circular buffer for float64 values.
type ringBuffer struct {
	data  []float64
	head  int
	count int
	size  int
}

func newRingBuffer(size int) *ringBuffer {
	return &ringBuffer{
		data: make([]float64, size),
		size: size,
	}
}

// push adds a value, evicting the oldest once the buffer is full.
func (r *ringBuffer) push(value float64) {
	r.data[r.head] = value
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
}

// getLast returns the last count values in chronological order (oldest first).
func (r *ringBuffer) getLast(count int) []float64 {
	if count <= 0 || r.count == 0 {
		return nil
	}

	if count > r.count {
		count = r.count
	}

	result := make([]float64, count)
	start := (r.head - count + r.size) % r.size
	for i := 0; i < count; i++ {
		result[i] = r.data[(start+i)%r.size]
	}
	return result
}
