package metrics

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/mem"
)

// MemoryAdapter reads physical and swap memory through gopsutil.
type MemoryAdapter struct{}

// NewMemoryAdapter creates a memory adapter.
func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{}
}

// Sample returns current physical and swap memory usage.
func (a *MemoryAdapter) Sample(ctx context.Context) (*MemoryInfo, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("virtual memory: %w", err)
	}

	swap, err := mem.SwapMemoryWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("swap memory: %w", err)
	}

	return &MemoryInfo{
		UsedBytes:      vm.Used,
		TotalBytes:     vm.Total,
		SwapUsedBytes:  swap.Used,
		SwapTotalBytes: swap.Total,
	}, nil
}
