package metrics

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// nvidia-smi CSV query for the fields GPUInfo needs.
const (
	nvidiaSMIQuery  = "--query-gpu=name,utilization.gpu,memory.used,memory.total,temperature.gpu"
	nvidiaSMIFormat = "--format=csv,noheader,nounits"
)

// probeTimeout bounds the startup GPU probe so a wedged driver cannot
// stall dashboard startup.
const probeTimeout = 3 * time.Second

// GPUAdapter samples the first GPU by shelling out to nvidia-smi.
// Support is probed exactly once at construction; an absent binary or a
// failing first query permanently disables the adapter.
type GPUAdapter struct {
	path      string
	supported bool
}

// NewGPUAdapter creates a GPU adapter. With enabled false the probe is
// skipped entirely and the adapter reports unsupported.
func NewGPUAdapter(ctx context.Context, enabled bool) *GPUAdapter {
	a := &GPUAdapter{}
	if !enabled {
		return a
	}

	path, err := exec.LookPath("nvidia-smi")
	if err != nil {
		return a
	}
	a.path = path

	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	info, err := a.query(probeCtx)
	a.supported = err == nil && info != nil
	return a
}

// Supported reports the result of the one-time startup probe.
func (a *GPUAdapter) Supported() bool {
	return a.supported
}

// Sample returns usage for the first GPU.
func (a *GPUAdapter) Sample(ctx context.Context) (*GPUInfo, error) {
	if !a.supported {
		return nil, fmt.Errorf("gpu: not supported")
	}

	info, err := a.query(ctx)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, fmt.Errorf("gpu: device disappeared")
	}
	return info, nil
}

func (a *GPUAdapter) query(ctx context.Context) (*GPUInfo, error) {
	out, err := exec.CommandContext(ctx, a.path, nvidiaSMIQuery, nvidiaSMIFormat).Output()
	if err != nil {
		return nil, fmt.Errorf("nvidia-smi: %w", err)
	}
	return parseNvidiaSMI(string(out))
}

// parseNvidiaSMI parses GPU metrics from nvidia-smi CSV output, e.g.
//
//	NVIDIA GeForce RTX 3080, 45, 2048, 10240, 65
//
// Returns nil, nil if no GPU is available (empty output or a driver
// error message instead of CSV).
func parseNvidiaSMI(output string) (*GPUInfo, error) {
	output = strings.TrimSpace(output)
	if output == "" {
		return nil, nil
	}

	// Driver error text instead of CSV means no usable GPU.
	lower := strings.ToLower(output)
	if strings.Contains(lower, "no devices") ||
		strings.Contains(lower, "not found") ||
		strings.Contains(lower, "failed") ||
		strings.Contains(lower, "error") {
		return nil, nil
	}

	// Multiple GPUs produce one line each; litemon watches the first.
	line := output
	if idx := strings.IndexByte(output, '\n'); idx >= 0 {
		line = output[:idx]
	}

	fields := strings.Split(line, ",")
	if len(fields) < 5 {
		return nil, fmt.Errorf("nvidia-smi output has insufficient fields: expected 5, got %d", len(fields))
	}

	info := &GPUInfo{Name: strings.TrimSpace(fields[0])}

	utilStr := strings.TrimSpace(fields[1])
	if utilStr != "" && utilStr != "[N/A]" {
		util, err := strconv.ParseFloat(utilStr, 64)
		if err != nil {
			return nil, fmt.Errorf("parse GPU utilization %q: %w", utilStr, err)
		}
		info.Percent = util
	}

	memUsedStr := strings.TrimSpace(fields[2])
	if memUsedStr != "" && memUsedStr != "[N/A]" {
		memUsed, err := strconv.ParseUint(memUsedStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse GPU memory used %q: %w", memUsedStr, err)
		}
		// nvidia-smi reports MiB
		info.MemoryUsed = memUsed * 1024 * 1024
	}

	memTotalStr := strings.TrimSpace(fields[3])
	if memTotalStr != "" && memTotalStr != "[N/A]" {
		memTotal, err := strconv.ParseUint(memTotalStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse GPU memory total %q: %w", memTotalStr, err)
		}
		info.MemoryTotal = memTotal * 1024 * 1024
	}

	tempStr := strings.TrimSpace(fields[4])
	if tempStr != "" && tempStr != "[N/A]" {
		temp, err := strconv.Atoi(tempStr)
		if err != nil {
			return nil, fmt.Errorf("parse GPU temperature %q: %w", tempStr, err)
		}
		info.Temperature = temp
	}

	return info, nil
}
