package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/host"
)

// SystemAdapter reads general host information through gopsutil.
type SystemAdapter struct{}

// NewSystemAdapter creates a system info adapter.
func NewSystemAdapter() *SystemAdapter {
	return &SystemAdapter{}
}

// Sample returns hostname, platform, and uptime.
func (a *SystemAdapter) Sample(ctx context.Context) (*SystemInfo, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("host info: %w", err)
	}

	osName := info.Platform
	if info.PlatformVersion != "" {
		osName += " " + info.PlatformVersion
	}

	return &SystemInfo{
		Hostname: info.Hostname,
		OS:       osName,
		Uptime:   time.Duration(info.Uptime) * time.Second,
	}, nil
}
