package metrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNvidiaSMI(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		want    *GPUInfo
		wantNil bool
		wantErr bool
	}{
		{
			name:   "standard output",
			output: "NVIDIA GeForce RTX 3080, 45, 2048, 10240, 65",
			want: &GPUInfo{
				Name:        "NVIDIA GeForce RTX 3080",
				Percent:     45,
				MemoryUsed:  2048 * 1024 * 1024,
				MemoryTotal: 10240 * 1024 * 1024,
				Temperature: 65,
			},
		},
		{
			name:   "idle gpu",
			output: "NVIDIA GeForce GTX 1650, 0, 0, 4096, 38",
			want: &GPUInfo{
				Name:        "NVIDIA GeForce GTX 1650",
				Percent:     0,
				MemoryUsed:  0,
				MemoryTotal: 4096 * 1024 * 1024,
				Temperature: 38,
			},
		},
		{
			name:   "multiple gpus uses first",
			output: "NVIDIA A100, 80, 30000, 40960, 55\nNVIDIA A100, 10, 1000, 40960, 41",
			want: &GPUInfo{
				Name:        "NVIDIA A100",
				Percent:     80,
				MemoryUsed:  30000 * 1024 * 1024,
				MemoryTotal: 40960 * 1024 * 1024,
				Temperature: 55,
			},
		},
		{
			name:   "not applicable fields",
			output: "NVIDIA T4, [N/A], 512, 16384, [N/A]",
			want: &GPUInfo{
				Name:        "NVIDIA T4",
				Percent:     0,
				MemoryUsed:  512 * 1024 * 1024,
				MemoryTotal: 16384 * 1024 * 1024,
				Temperature: 0,
			},
		},
		{
			name:    "empty output",
			output:  "",
			wantNil: true,
		},
		{
			name:    "whitespace only",
			output:  "  \n  ",
			wantNil: true,
		},
		{
			name:    "no devices message",
			output:  "No devices were found",
			wantNil: true,
		},
		{
			name:    "driver failure message",
			output:  "NVIDIA-SMI has failed because it couldn't communicate with the NVIDIA driver",
			wantNil: true,
		},
		{
			name:    "too few fields",
			output:  "NVIDIA T4, 10, 512",
			wantErr: true,
		},
		{
			name:    "garbage utilization",
			output:  "NVIDIA T4, lots, 512, 16384, 40",
			wantErr: true,
		},
		{
			name:    "garbage temperature",
			output:  "NVIDIA T4, 10, 512, 16384, warm",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseNvidiaSMI(tt.output)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewGPUAdapter_Disabled(t *testing.T) {
	a := NewGPUAdapter(context.Background(), false)
	assert.False(t, a.Supported())

	_, err := a.Sample(context.Background())
	assert.Error(t, err)
}
