//go:build cuda

package nvml

import (
	"github.com/NVIDIA/go-nvml/pkg/nvml"
)

// Interface abstracts the NVML entry points the prober needs, so tests
// can substitute a mock.
type Interface interface {
	Init() nvml.Return
	Shutdown() nvml.Return
	SystemGetDriverVersion() (string, nvml.Return)
	SystemGetCudaDriverVersion() (int, nvml.Return)
	DeviceGetCount() (int, nvml.Return)
	DeviceGetHandleByIndex(index int) (Device, nvml.Return)
}

// Device abstracts the per-device NVML queries.
type Device interface {
	GetName() (string, nvml.Return)
	GetUUID() (string, nvml.Return)
	GetMemoryInfo() (nvml.Memory, nvml.Return)
	GetMaxClockInfo(clockType nvml.ClockType) (uint32, nvml.Return)
}

type realNVML struct{}

func (realNVML) Init() nvml.Return {
	return nvml.Init()
}

func (realNVML) Shutdown() nvml.Return {
	return nvml.Shutdown()
}

func (realNVML) SystemGetDriverVersion() (string, nvml.Return) {
	return nvml.SystemGetDriverVersion()
}

func (realNVML) SystemGetCudaDriverVersion() (int, nvml.Return) {
	return nvml.SystemGetCudaDriverVersion()
}

func (realNVML) DeviceGetCount() (int, nvml.Return) {
	return nvml.DeviceGetCount()
}

func (realNVML) DeviceGetHandleByIndex(index int) (Device, nvml.Return) {
	device, ret := nvml.DeviceGetHandleByIndex(index)
	if ret != nvml.SUCCESS {
		return nil, ret
	}
	return deviceWrapper{device: device}, ret
}

type deviceWrapper struct {
	device nvml.Device
}

func (w deviceWrapper) GetName() (string, nvml.Return) {
	return w.device.GetName()
}

func (w deviceWrapper) GetUUID() (string, nvml.Return) {
	return w.device.GetUUID()
}

func (w deviceWrapper) GetMemoryInfo() (nvml.Memory, nvml.Return) {
	return w.device.GetMemoryInfo()
}

func (w deviceWrapper) GetMaxClockInfo(clockType nvml.ClockType) (uint32, nvml.Return) {
	return w.device.GetMaxClockInfo(clockType)
}
