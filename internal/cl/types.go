package cl

// DeviceType describes the class of an OpenCL device.
type DeviceType string

const (
	DeviceTypeGPU         DeviceType = "GPU"
	DeviceTypeCPU         DeviceType = "CPU"
	DeviceTypeAccelerator DeviceType = "Accelerator"
	DeviceTypeDefault     DeviceType = "Default"
	DeviceTypeUnknown     DeviceType = "Unknown"
)

// Device is an immutable capability snapshot of one OpenCL device,
// taken at enumeration time.
type Device struct {
	Name                  string     `json:"name"`
	Type                  DeviceType `json:"type"`
	MaxClockFrequency     uint32     `json:"maxClockMhz"`
	MaxComputeUnits       uint32     `json:"maxComputeUnits"`
	LocalMemSize          uint64     `json:"localMemBytes"`
	MaxConstantBufferSize uint64     `json:"maxConstantBufferBytes"`
	GlobalMemSize         uint64     `json:"globalMemBytes"`
	MaxMemAllocSize       uint64     `json:"maxMemAllocBytes"`
	MaxWorkGroupSize      uint64     `json:"maxWorkGroupSize"`
}

// Platform is an immutable snapshot of one OpenCL platform and its
// devices, in the enumeration order reported by the runtime.
type Platform struct {
	Name    string   `json:"name"`
	Vendor  string   `json:"vendor"`
	Version string   `json:"version"`
	Profile string   `json:"profile"`
	Devices []Device `json:"devices"`
}

// Enumerator lists the compute platforms visible to the process. The
// system implementation re-queries the OpenCL runtime on every call;
// fakes stand in for it so formatting can be tested without hardware.
type Enumerator interface {
	Platforms() ([]Platform, error)
}
