package metrics

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v3/net"
)

// NetworkAdapter reads aggregate network counters through gopsutil and
// derives rx/tx rates from consecutive readings. The previous reading is
// the adapter's only state and is private to it.
type NetworkAdapter struct {
	mu     sync.Mutex
	prevRx uint64
	prevTx uint64
	prevAt time.Time
}

// NewNetworkAdapter creates a network adapter.
func NewNetworkAdapter() *NetworkAdapter {
	return &NetworkAdapter{}
}

// Sample returns cumulative byte counters summed across all interfaces and
// the transfer rates since the previous sample. The first sample reports
// zero rates; there is no interval to divide by yet.
func (a *NetworkAdapter) Sample(ctx context.Context) (*NetworkInfo, error) {
	counters, err := net.IOCountersWithContext(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("io counters: %w", err)
	}
	if len(counters) == 0 {
		return nil, fmt.Errorf("io counters: no interfaces reported")
	}

	rx := counters[0].BytesRecv
	tx := counters[0].BytesSent
	now := time.Now()

	a.mu.Lock()
	defer a.mu.Unlock()

	info := &NetworkInfo{RxTotal: rx, TxTotal: tx}
	if !a.prevAt.IsZero() {
		elapsed := now.Sub(a.prevAt).Seconds()
		if elapsed > 0 {
			info.RxRate = counterRate(rx, a.prevRx, elapsed)
			info.TxRate = counterRate(tx, a.prevTx, elapsed)
		}
	}

	a.prevRx = rx
	a.prevTx = tx
	a.prevAt = now

	return info, nil
}

// counterRate computes bytes/sec from two cumulative readings. A counter
// reset (reboot of the interface) yields zero rather than a huge negative.
func counterRate(current, previous uint64, elapsed float64) float64 {
	if current < previous {
		return 0
	}
	return float64(current-previous) / elapsed
}
