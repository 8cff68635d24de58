//go:build cuda

package nvml

import (
	"fmt"
	"log/slog"

	"github.com/NVIDIA/go-nvml/pkg/nvml"
)

// Prober queries NVIDIA driver and device details through NVML.
type Prober struct {
	api Interface
}

// NewProber returns a Prober backed by the NVML library.
func NewProber() *Prober {
	return &Prober{api: realNVML{}}
}

// NewProberWithInterface returns a Prober with a custom NVML interface
// (for testing).
func NewProberWithInterface(api Interface) *Prober {
	return &Prober{api: api}
}

// Probe initializes NVML, collects driver and per-device details, and
// shuts NVML down again. Init and device-count failures abort the
// probe; a failed attribute query leaves the field zero and logs a
// warning.
func (p *Prober) Probe() (Report, error) {
	if ret := p.api.Init(); ret != nvml.SUCCESS {
		return Report{}, fmt.Errorf("failed to initialize NVML: %s", nvml.ErrorString(ret))
	}
	defer p.api.Shutdown()

	report := Report{GPUs: make([]GPU, 0)}

	driverVersion, ret := p.api.SystemGetDriverVersion()
	if ret != nvml.SUCCESS {
		slog.Warn("Failed to query driver version", "error", nvml.ErrorString(ret))
	} else {
		report.DriverVersion = driverVersion
	}

	cudaVersion, ret := p.api.SystemGetCudaDriverVersion()
	if ret != nvml.SUCCESS {
		slog.Warn("Failed to query CUDA driver version", "error", nvml.ErrorString(ret))
	} else {
		report.CUDAVersion = cudaVersion
	}

	count, ret := p.api.DeviceGetCount()
	if ret != nvml.SUCCESS {
		return Report{}, fmt.Errorf("failed to get device count: %s", nvml.ErrorString(ret))
	}

	for i := 0; i < count; i++ {
		device, ret := p.api.DeviceGetHandleByIndex(i)
		if ret != nvml.SUCCESS {
			return Report{}, fmt.Errorf("failed to get handle for device %d: %s", i, nvml.ErrorString(ret))
		}

		gpu := GPU{Index: i}

		if name, ret := device.GetName(); ret == nvml.SUCCESS {
			gpu.Name = name
		} else {
			slog.Warn("Failed to query device name", "index", i, "error", nvml.ErrorString(ret))
		}
		if uuid, ret := device.GetUUID(); ret == nvml.SUCCESS {
			gpu.UUID = uuid
		} else {
			slog.Warn("Failed to query device UUID", "index", i, "error", nvml.ErrorString(ret))
		}
		if memInfo, ret := device.GetMemoryInfo(); ret == nvml.SUCCESS {
			gpu.MemoryMB = memInfo.Total / (1024 * 1024)
		} else {
			slog.Warn("Failed to query device memory", "index", i, "error", nvml.ErrorString(ret))
		}
		if clock, ret := device.GetMaxClockInfo(nvml.CLOCK_GRAPHICS); ret == nvml.SUCCESS {
			gpu.MaxClockMhz = clock
		} else {
			slog.Warn("Failed to query device clock", "index", i, "error", nvml.ErrorString(ret))
		}

		report.GPUs = append(report.GPUs, gpu)
	}

	return report, nil
}
