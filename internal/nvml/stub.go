//go:build !cuda

package nvml

import "fmt"

// ErrNotBuilt indicates the binary was built without NVML support.
var ErrNotBuilt = fmt.Errorf("nvml support requires building with '-tags cuda'")

// Prober is a placeholder when NVML support is not compiled.
type Prober struct{}

// NewProber returns the placeholder prober.
func NewProber() *Prober {
	return &Prober{}
}

// Probe returns an error when NVML support is not compiled in.
func (p *Prober) Probe() (Report, error) {
	return Report{}, ErrNotBuilt
}
