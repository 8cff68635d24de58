//go:build opencl

package cl

/*
#cgo LDFLAGS: -lOpenCL
#define CL_TARGET_OPENCL_VERSION 120
#define CL_USE_DEPRECATED_OPENCL_1_2_APIS
#include <CL/cl.h>

static const char* clinspect_cl_error_string(cl_int status) {
	switch (status) {
	case CL_SUCCESS: return "CL_SUCCESS";
	case CL_DEVICE_NOT_FOUND: return "CL_DEVICE_NOT_FOUND";
	case CL_DEVICE_NOT_AVAILABLE: return "CL_DEVICE_NOT_AVAILABLE";
	case CL_COMPILER_NOT_AVAILABLE: return "CL_COMPILER_NOT_AVAILABLE";
	case CL_MEM_OBJECT_ALLOCATION_FAILURE: return "CL_MEM_OBJECT_ALLOCATION_FAILURE";
	case CL_OUT_OF_RESOURCES: return "CL_OUT_OF_RESOURCES";
	case CL_OUT_OF_HOST_MEMORY: return "CL_OUT_OF_HOST_MEMORY";
	case CL_INVALID_VALUE: return "CL_INVALID_VALUE";
	case CL_INVALID_PLATFORM: return "CL_INVALID_PLATFORM";
	case CL_INVALID_DEVICE_TYPE: return "CL_INVALID_DEVICE_TYPE";
	case CL_INVALID_DEVICE: return "CL_INVALID_DEVICE";
	default: return "CL_UNKNOWN_ERROR";
	}
}
*/
import "C"

import (
	"errors"
	"fmt"
	"unsafe"
)

// ErrNoDevices indicates that a platform exposes no OpenCL devices.
var ErrNoDevices = errors.New("no OpenCL devices found")

// SystemEnumerator queries the installed OpenCL runtime.
type SystemEnumerator struct{}

// NewSystemEnumerator returns an Enumerator backed by the OpenCL runtime.
func NewSystemEnumerator() *SystemEnumerator {
	return &SystemEnumerator{}
}

// Platforms enumerates all platforms and their devices. A platform
// without devices is kept with an empty device list; any other runtime
// failure aborts the whole enumeration.
func (e *SystemEnumerator) Platforms() ([]Platform, error) {
	var count C.cl_uint
	status := C.clGetPlatformIDs(0, nil, &count)
	if status != C.CL_SUCCESS {
		return nil, statusError("clGetPlatformIDs(count)", status)
	}
	if count == 0 {
		return nil, nil
	}

	platformIDs := make([]C.cl_platform_id, int(count))
	status = C.clGetPlatformIDs(count, &platformIDs[0], nil)
	if status != C.CL_SUCCESS {
		return nil, statusError("clGetPlatformIDs(list)", status)
	}

	platforms := make([]Platform, 0, int(count))
	for _, pid := range platformIDs {
		platform, err := buildPlatform(pid)
		if err != nil {
			return nil, err
		}
		platforms = append(platforms, platform)
	}

	return platforms, nil
}

func buildPlatform(pid C.cl_platform_id) (Platform, error) {
	name, err := getPlatformString(pid, C.CL_PLATFORM_NAME)
	if err != nil {
		return Platform{}, err
	}
	vendor, err := getPlatformString(pid, C.CL_PLATFORM_VENDOR)
	if err != nil {
		return Platform{}, err
	}
	version, err := getPlatformString(pid, C.CL_PLATFORM_VERSION)
	if err != nil {
		return Platform{}, err
	}
	profile, err := getPlatformString(pid, C.CL_PLATFORM_PROFILE)
	if err != nil {
		return Platform{}, err
	}

	platform := Platform{
		Name:    name,
		Vendor:  vendor,
		Version: version,
		Profile: profile,
	}

	devices, err := enumerateDevices(pid)
	if err != nil {
		if errors.Is(err, ErrNoDevices) {
			return platform, nil
		}
		return Platform{}, err
	}
	platform.Devices = devices

	return platform, nil
}

func enumerateDevices(pid C.cl_platform_id) ([]Device, error) {
	var count C.cl_uint
	status := C.clGetDeviceIDs(pid, C.CL_DEVICE_TYPE_ALL, 0, nil, &count)
	if status == C.CL_DEVICE_NOT_FOUND {
		return nil, ErrNoDevices
	}
	if status != C.CL_SUCCESS {
		return nil, statusError("clGetDeviceIDs(count)", status)
	}
	if count == 0 {
		return nil, ErrNoDevices
	}

	deviceIDs := make([]C.cl_device_id, int(count))
	status = C.clGetDeviceIDs(pid, C.CL_DEVICE_TYPE_ALL, count, &deviceIDs[0], nil)
	if status != C.CL_SUCCESS {
		return nil, statusError("clGetDeviceIDs(list)", status)
	}

	devices := make([]Device, 0, int(count))
	for _, id := range deviceIDs {
		device, err := buildDevice(id)
		if err != nil {
			return nil, err
		}
		devices = append(devices, device)
	}

	return devices, nil
}

func buildDevice(id C.cl_device_id) (Device, error) {
	name, err := getDeviceString(id, C.CL_DEVICE_NAME)
	if err != nil {
		return Device{}, err
	}

	var rawType C.cl_device_type
	status := C.clGetDeviceInfo(id, C.CL_DEVICE_TYPE, C.size_t(unsafe.Sizeof(rawType)), unsafe.Pointer(&rawType), nil)
	if status != C.CL_SUCCESS {
		return Device{}, statusError("clGetDeviceInfo(type)", status)
	}

	clockMhz, err := getDeviceUint(id, C.CL_DEVICE_MAX_CLOCK_FREQUENCY, "maxClockFrequency")
	if err != nil {
		return Device{}, err
	}
	computeUnits, err := getDeviceUint(id, C.CL_DEVICE_MAX_COMPUTE_UNITS, "maxComputeUnits")
	if err != nil {
		return Device{}, err
	}
	localMem, err := getDeviceUlong(id, C.CL_DEVICE_LOCAL_MEM_SIZE, "localMemSize")
	if err != nil {
		return Device{}, err
	}
	constantMem, err := getDeviceUlong(id, C.CL_DEVICE_MAX_CONSTANT_BUFFER_SIZE, "maxConstantBufferSize")
	if err != nil {
		return Device{}, err
	}
	globalMem, err := getDeviceUlong(id, C.CL_DEVICE_GLOBAL_MEM_SIZE, "globalMemSize")
	if err != nil {
		return Device{}, err
	}
	maxAlloc, err := getDeviceUlong(id, C.CL_DEVICE_MAX_MEM_ALLOC_SIZE, "maxMemAllocSize")
	if err != nil {
		return Device{}, err
	}

	var workGroup C.size_t
	status = C.clGetDeviceInfo(id, C.CL_DEVICE_MAX_WORK_GROUP_SIZE, C.size_t(unsafe.Sizeof(workGroup)), unsafe.Pointer(&workGroup), nil)
	if status != C.CL_SUCCESS {
		return Device{}, statusError("clGetDeviceInfo(maxWorkGroupSize)", status)
	}

	return Device{
		Name:                  name,
		Type:                  mapDeviceType(rawType),
		MaxClockFrequency:     uint32(clockMhz),
		MaxComputeUnits:       uint32(computeUnits),
		LocalMemSize:          uint64(localMem),
		MaxConstantBufferSize: uint64(constantMem),
		GlobalMemSize:         uint64(globalMem),
		MaxMemAllocSize:       uint64(maxAlloc),
		MaxWorkGroupSize:      uint64(workGroup),
	}, nil
}

func getDeviceUint(id C.cl_device_id, param C.cl_device_info, label string) (C.cl_uint, error) {
	var value C.cl_uint
	status := C.clGetDeviceInfo(id, param, C.size_t(unsafe.Sizeof(value)), unsafe.Pointer(&value), nil)
	if status != C.CL_SUCCESS {
		return 0, statusError("clGetDeviceInfo("+label+")", status)
	}
	return value, nil
}

func getDeviceUlong(id C.cl_device_id, param C.cl_device_info, label string) (C.cl_ulong, error) {
	var value C.cl_ulong
	status := C.clGetDeviceInfo(id, param, C.size_t(unsafe.Sizeof(value)), unsafe.Pointer(&value), nil)
	if status != C.CL_SUCCESS {
		return 0, statusError("clGetDeviceInfo("+label+")", status)
	}
	return value, nil
}

func getPlatformString(id C.cl_platform_id, param C.cl_platform_info) (string, error) {
	var size C.size_t
	status := C.clGetPlatformInfo(id, param, 0, nil, &size)
	if status != C.CL_SUCCESS {
		return "", statusError("clGetPlatformInfo(size)", status)
	}
	if size == 0 {
		return "", nil
	}

	buf := make([]byte, int(size))
	status = C.clGetPlatformInfo(id, param, size, unsafe.Pointer(&buf[0]), nil)
	if status != C.CL_SUCCESS {
		return "", statusError("clGetPlatformInfo(value)", status)
	}

	return trimNull(buf), nil
}

func getDeviceString(id C.cl_device_id, param C.cl_device_info) (string, error) {
	var size C.size_t
	status := C.clGetDeviceInfo(id, param, 0, nil, &size)
	if status != C.CL_SUCCESS {
		return "", statusError("clGetDeviceInfo(size)", status)
	}
	if size == 0 {
		return "", nil
	}

	buf := make([]byte, int(size))
	status = C.clGetDeviceInfo(id, param, size, unsafe.Pointer(&buf[0]), nil)
	if status != C.CL_SUCCESS {
		return "", statusError("clGetDeviceInfo(value)", status)
	}

	return trimNull(buf), nil
}

func trimNull(buf []byte) string {
	if len(buf) == 0 {
		return ""
	}
	if buf[len(buf)-1] == 0 {
		buf = buf[:len(buf)-1]
	}
	return string(buf)
}

func mapDeviceType(dt C.cl_device_type) DeviceType {
	switch {
	case dt&C.CL_DEVICE_TYPE_GPU != 0:
		return DeviceTypeGPU
	case dt&C.CL_DEVICE_TYPE_CPU != 0:
		return DeviceTypeCPU
	case dt&C.CL_DEVICE_TYPE_ACCELERATOR != 0:
		return DeviceTypeAccelerator
	case dt&C.CL_DEVICE_TYPE_DEFAULT != 0:
		return DeviceTypeDefault
	default:
		return DeviceTypeUnknown
	}
}

func statusError(prefix string, status C.cl_int) error {
	return fmt.Errorf("%s: %s (%d)", prefix, C.GoString(C.clinspect_cl_error_string(status)), int(status))
}
