package nvml

import (
	"bytes"
	"strings"
	"testing"
)

func TestCUDAVersionString(t *testing.T) {
	tests := []struct {
		name    string
		version int
		want    string
	}{
		{"cuda 12.4", 12040, "12.4"},
		{"cuda 11.0", 11000, "11.0"},
		{"unset", 0, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Report{CUDAVersion: tt.version}
			if got := r.CUDAVersionString(); got != tt.want {
				t.Errorf("CUDAVersionString(%d): got %q, want %q", tt.version, got, tt.want)
			}
		})
	}
}

func TestReportWriteText(t *testing.T) {
	report := Report{
		DriverVersion: "550.54.14",
		CUDAVersion:   12040,
		GPUs: []GPU{
			{
				Index:       0,
				Name:        "NVIDIA T4",
				UUID:        "GPU-1234",
				MemoryMB:    16384,
				MaxClockMhz: 1590,
			},
		},
	}

	var buf bytes.Buffer
	report.WriteText(&buf)

	want := strings.Join([]string{
		"NVIDIA Driver Version: 550.54.14",
		"CUDA Driver Version: 12.4",
		" Device 0 - Name: NVIDIA T4",
		" Device 0 - UUID: GPU-1234",
		" Device 0 - Memory: 16384 MB",
		" Device 0 - Max Clock Speed: 1590 Mhz",
	}, "\n") + "\n"

	if got := buf.String(); got != want {
		t.Errorf("Report text mismatch:\ngot:\n%q\nwant:\n%q", got, want)
	}
}
