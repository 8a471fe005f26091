package metrics

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"
)

// CPUAdapter reads CPU usage and frequency through gopsutil.
//
// gopsutil keeps the previous /proc/stat reading internally when Percent is
// called with a zero interval, so usage reflects the window since the last
// sample rather than blocking for a measurement interval.
type CPUAdapter struct {
	model string
}

// NewCPUAdapter creates a CPU adapter. The model name is resolved once at
// startup; it cannot change for the process lifetime.
func NewCPUAdapter(ctx context.Context) *CPUAdapter {
	model := "unknown"
	if info, err := cpu.InfoWithContext(ctx); err == nil && len(info) > 0 {
		model = info[0].ModelName
	}

	// Prime the usage counters so the first real sample has a delta window.
	_, _ = cpu.PercentWithContext(ctx, 0, true)

	return &CPUAdapter{model: model}
}

// Sample returns overall and per-core CPU usage. Core ordering follows the
// OS's logical core enumeration and is stable across ticks.
func (a *CPUAdapter) Sample(ctx context.Context) (*CPUInfo, error) {
	perCore, err := cpu.PercentWithContext(ctx, 0, true)
	if err != nil {
		return nil, fmt.Errorf("cpu usage: %w", err)
	}
	if len(perCore) == 0 {
		return nil, fmt.Errorf("cpu usage: no cores reported")
	}

	// Current frequencies; on Linux this is one entry per logical core.
	var freqs []float64
	if info, err := cpu.InfoWithContext(ctx); err == nil {
		for _, stat := range info {
			freqs = append(freqs, stat.Mhz)
		}
	}

	cores := make([]CoreInfo, len(perCore))
	var overall, overallFreq float64
	for i, pct := range perCore {
		cores[i] = CoreInfo{Percent: pct}
		if i < len(freqs) {
			cores[i].FrequencyMHz = freqs[i]
		} else if len(freqs) > 0 {
			// Some platforms report a single frequency for the whole package.
			cores[i].FrequencyMHz = freqs[0]
		}
		overall += pct
		overallFreq += cores[i].FrequencyMHz
	}
	overall /= float64(len(perCore))
	overallFreq /= float64(len(perCore))

	return &CPUInfo{
		Model:        a.model,
		Percent:      overall,
		FrequencyMHz: overallFreq,
		Cores:        cores,
	}, nil
}
