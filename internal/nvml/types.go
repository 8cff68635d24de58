package nvml

import (
	"fmt"
	"io"
)

// GPU is a capability snapshot of one NVIDIA device.
type GPU struct {
	Index       int    `json:"index"`
	Name        string `json:"name"`
	UUID        string `json:"uuid"`
	MemoryMB    uint64 `json:"memory_mb"`
	MaxClockMhz uint32 `json:"max_clock_mhz"`
}

// Report holds the result of one NVML probe.
type Report struct {
	DriverVersion string `json:"driver_version"`
	CUDAVersion   int    `json:"cuda_version"`
	GPUs          []GPU  `json:"gpus"`
}

// CUDAVersionString renders the packed NVML CUDA version (e.g. 12040)
// as "12.4". An unset version renders as "unknown".
func (r Report) CUDAVersionString() string {
	if r.CUDAVersion == 0 {
		return "unknown"
	}
	return fmt.Sprintf("%d.%d", r.CUDAVersion/1000, (r.CUDAVersion%1000)/10)
}

// WriteText prints the report in the console layout shared with the
// OpenCL side.
func (r Report) WriteText(w io.Writer) {
	fmt.Fprintf(w, "NVIDIA Driver Version: %s\n", r.DriverVersion)
	fmt.Fprintf(w, "CUDA Driver Version: %s\n", r.CUDAVersionString())
	for _, gpu := range r.GPUs {
		fmt.Fprintf(w, " Device %d - Name: %s\n", gpu.Index, gpu.Name)
		fmt.Fprintf(w, " Device %d - UUID: %s\n", gpu.Index, gpu.UUID)
		fmt.Fprintf(w, " Device %d - Memory: %d MB\n", gpu.Index, gpu.MemoryMB)
		fmt.Fprintf(w, " Device %d - Max Clock Speed: %d Mhz\n", gpu.Index, gpu.MaxClockMhz)
	}
}
