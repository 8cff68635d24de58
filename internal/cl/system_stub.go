//go:build !opencl

package cl

import "fmt"

// ErrNotBuilt indicates the binary was built without OpenCL support.
var ErrNotBuilt = fmt.Errorf("opencl support requires building with '-tags opencl'")

// ErrNoDevices indicates that a platform exposes no OpenCL devices.
var ErrNoDevices = fmt.Errorf("no OpenCL devices found")

// SystemEnumerator is a placeholder when OpenCL support is not compiled.
type SystemEnumerator struct{}

// NewSystemEnumerator returns the placeholder enumerator.
func NewSystemEnumerator() *SystemEnumerator {
	return &SystemEnumerator{}
}

// Platforms returns an error when OpenCL support is not compiled in.
func (e *SystemEnumerator) Platforms() ([]Platform, error) {
	return nil, ErrNotBuilt
}
