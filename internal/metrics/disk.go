package metrics

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/shirou/gopsutil/v3/disk"
)

// DiskAdapter enumerates mounted filesystems through gopsutil.
type DiskAdapter struct {
	excludeFstypes map[string]bool
}

// NewDiskAdapter creates a disk adapter. Filesystem types in excludeFstypes
// are skipped during enumeration.
func NewDiskAdapter(excludeFstypes []string) *DiskAdapter {
	excluded := make(map[string]bool, len(excludeFstypes))
	for _, fstype := range excludeFstypes {
		excluded[fstype] = true
	}
	return &DiskAdapter{excludeFstypes: excluded}
}

// Sample returns usage for every real mounted filesystem, sorted by device
// then mountpoint so the ordering is deterministic across ticks.
func (a *DiskAdapter) Sample(ctx context.Context) ([]DiskInfo, error) {
	partitions, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("partitions: %w", err)
	}

	var disks []DiskInfo
	for _, part := range partitions {
		if a.excludeFstypes[part.Fstype] {
			continue
		}
		if strings.Contains(part.Device, "loop") {
			continue
		}

		usage, err := disk.UsageWithContext(ctx, part.Mountpoint)
		if err != nil {
			// One unreadable mountpoint must not hide the others.
			continue
		}

		disks = append(disks, DiskInfo{
			Mount:      part.Mountpoint,
			Device:     part.Device,
			Fstype:     part.Fstype,
			UsedBytes:  usage.Used,
			TotalBytes: usage.Total,
			Removable:  isRemovable(part.Device),
		})
	}

	sort.Slice(disks, func(i, j int) bool {
		if disks[i].Device != disks[j].Device {
			return disks[i].Device < disks[j].Device
		}
		return disks[i].Mount < disks[j].Mount
	})

	return disks, nil
}

// isRemovable reports whether the block device behind a partition is
// removable, per the kernel's /sys/block flag. Unknown devices are
// treated as fixed.
func isRemovable(device string) bool {
	name := filepath.Base(device)
	for _, candidate := range []string{name, baseBlockDevice(name)} {
		if candidate == "" {
			continue
		}
		data, err := os.ReadFile(filepath.Join("/sys/block", candidate, "removable"))
		if err != nil {
			continue
		}
		return strings.TrimSpace(string(data)) == "1"
	}
	return false
}

// baseBlockDevice strips the partition suffix from a device name:
// sda1 -> sda, nvme0n1p2 -> nvme0n1, mmcblk0p1 -> mmcblk0.
func baseBlockDevice(name string) string {
	trimmed := strings.TrimRight(name, "0123456789")
	if strings.HasSuffix(trimmed, "p") && (strings.HasPrefix(name, "nvme") || strings.HasPrefix(name, "mmcblk")) {
		trimmed = strings.TrimSuffix(trimmed, "p")
	}
	return trimmed
}
