//go:build cuda

package nvml

import (
	"testing"

	"github.com/NVIDIA/go-nvml/pkg/nvml"
)

// mockNVML is a canned-answer implementation of Interface.
type mockNVML struct {
	initReturn          nvml.Return
	driverVersion       string
	driverVersionReturn nvml.Return
	cudaVersion         int
	cudaVersionReturn   nvml.Return
	deviceCountReturn   nvml.Return
	deviceHandleReturn  nvml.Return
	devices             []mockDevice
	shutdownCalls       int
}

type mockDevice struct {
	name         string
	nameReturn   nvml.Return
	uuid         string
	uuidReturn   nvml.Return
	memoryTotal  uint64
	memoryReturn nvml.Return
	clock        uint32
	clockReturn  nvml.Return
}

func newMockNVML() *mockNVML {
	return &mockNVML{
		initReturn:          nvml.SUCCESS,
		driverVersionReturn: nvml.SUCCESS,
		cudaVersionReturn:   nvml.SUCCESS,
		deviceCountReturn:   nvml.SUCCESS,
		deviceHandleReturn:  nvml.SUCCESS,
	}
}

func (m *mockNVML) Init() nvml.Return { return m.initReturn }

func (m *mockNVML) Shutdown() nvml.Return {
	m.shutdownCalls++
	return nvml.SUCCESS
}

func (m *mockNVML) SystemGetDriverVersion() (string, nvml.Return) {
	return m.driverVersion, m.driverVersionReturn
}

func (m *mockNVML) SystemGetCudaDriverVersion() (int, nvml.Return) {
	return m.cudaVersion, m.cudaVersionReturn
}

func (m *mockNVML) DeviceGetCount() (int, nvml.Return) {
	return len(m.devices), m.deviceCountReturn
}

func (m *mockNVML) DeviceGetHandleByIndex(index int) (Device, nvml.Return) {
	if m.deviceHandleReturn != nvml.SUCCESS {
		return nil, m.deviceHandleReturn
	}
	if index < 0 || index >= len(m.devices) {
		return nil, nvml.ERROR_INVALID_ARGUMENT
	}
	return &m.devices[index], nvml.SUCCESS
}

func (d *mockDevice) GetName() (string, nvml.Return) { return d.name, d.nameReturn }
func (d *mockDevice) GetUUID() (string, nvml.Return) { return d.uuid, d.uuidReturn }

func (d *mockDevice) GetMemoryInfo() (nvml.Memory, nvml.Return) {
	return nvml.Memory{Total: d.memoryTotal}, d.memoryReturn
}

func (d *mockDevice) GetMaxClockInfo(nvml.ClockType) (uint32, nvml.Return) {
	return d.clock, d.clockReturn
}

func TestProbe(t *testing.T) {
	mock := newMockNVML()
	mock.driverVersion = "550.54.14"
	mock.cudaVersion = 12040
	mock.devices = []mockDevice{
		{
			name:         "NVIDIA GeForce RTX 4090",
			nameReturn:   nvml.SUCCESS,
			uuid:         "GPU-11111111-2222-3333-4444-555555555555",
			uuidReturn:   nvml.SUCCESS,
			memoryTotal:  24 * 1024 * 1024 * 1024,
			memoryReturn: nvml.SUCCESS,
			clock:        2520,
			clockReturn:  nvml.SUCCESS,
		},
		{
			name:         "NVIDIA T4",
			nameReturn:   nvml.SUCCESS,
			uuid:         "GPU-66666666-7777-8888-9999-000000000000",
			uuidReturn:   nvml.SUCCESS,
			memoryTotal:  16 * 1024 * 1024 * 1024,
			memoryReturn: nvml.SUCCESS,
			clock:        1590,
			clockReturn:  nvml.SUCCESS,
		},
	}

	report, err := NewProberWithInterface(mock).Probe()
	if err != nil {
		t.Fatalf("Probe failed: %v", err)
	}

	if report.DriverVersion != "550.54.14" {
		t.Errorf("DriverVersion mismatch: got %q", report.DriverVersion)
	}
	if report.CUDAVersion != 12040 {
		t.Errorf("CUDAVersion mismatch: got %d", report.CUDAVersion)
	}
	if len(report.GPUs) != 2 {
		t.Fatalf("Expected 2 GPUs, got %d", len(report.GPUs))
	}
	if report.GPUs[0].Name != "NVIDIA GeForce RTX 4090" {
		t.Errorf("GPU 0 name mismatch: got %q", report.GPUs[0].Name)
	}
	if report.GPUs[0].MemoryMB != 24576 {
		t.Errorf("GPU 0 memory mismatch: got %d MB", report.GPUs[0].MemoryMB)
	}
	if report.GPUs[1].Index != 1 {
		t.Errorf("GPU 1 index mismatch: got %d", report.GPUs[1].Index)
	}
	if report.GPUs[1].MaxClockMhz != 1590 {
		t.Errorf("GPU 1 clock mismatch: got %d", report.GPUs[1].MaxClockMhz)
	}
	if mock.shutdownCalls != 1 {
		t.Errorf("Expected 1 shutdown call, got %d", mock.shutdownCalls)
	}
}

func TestProbe_InitFailure(t *testing.T) {
	mock := newMockNVML()
	mock.initReturn = nvml.ERROR_LIBRARY_NOT_FOUND

	if _, err := NewProberWithInterface(mock).Probe(); err == nil {
		t.Fatal("Expected error when NVML init fails")
	}
	if mock.shutdownCalls != 0 {
		t.Errorf("Shutdown should not run after failed init, got %d calls", mock.shutdownCalls)
	}
}

func TestProbe_DeviceCountFailure(t *testing.T) {
	mock := newMockNVML()
	mock.deviceCountReturn = nvml.ERROR_UNKNOWN

	if _, err := NewProberWithInterface(mock).Probe(); err == nil {
		t.Fatal("Expected error when device count fails")
	}
	if mock.shutdownCalls != 1 {
		t.Errorf("Shutdown should still run, got %d calls", mock.shutdownCalls)
	}
}

func TestProbe_DegradedAttributes(t *testing.T) {
	mock := newMockNVML()
	mock.driverVersionReturn = nvml.ERROR_UNKNOWN
	mock.devices = []mockDevice{
		{
			nameReturn:   nvml.ERROR_GPU_IS_LOST,
			uuid:         "GPU-aaaa",
			uuidReturn:   nvml.SUCCESS,
			memoryReturn: nvml.ERROR_UNKNOWN,
			clockReturn:  nvml.ERROR_NOT_SUPPORTED,
		},
	}

	report, err := NewProberWithInterface(mock).Probe()
	if err != nil {
		t.Fatalf("Probe should tolerate attribute failures: %v", err)
	}

	if report.DriverVersion != "" {
		t.Errorf("Expected empty driver version, got %q", report.DriverVersion)
	}
	if len(report.GPUs) != 1 {
		t.Fatalf("Expected 1 GPU, got %d", len(report.GPUs))
	}
	gpu := report.GPUs[0]
	if gpu.Name != "" || gpu.MemoryMB != 0 || gpu.MaxClockMhz != 0 {
		t.Errorf("Expected zeroed fields for failed queries, got %+v", gpu)
	}
	if gpu.UUID != "GPU-aaaa" {
		t.Errorf("UUID should survive: got %q", gpu.UUID)
	}
}

func TestProbe_DeviceHandleFailure(t *testing.T) {
	mock := newMockNVML()
	mock.deviceHandleReturn = nvml.ERROR_GPU_IS_LOST
	mock.devices = []mockDevice{{}}

	if _, err := NewProberWithInterface(mock).Probe(); err == nil {
		t.Fatal("Expected error when device handle lookup fails")
	}
}
