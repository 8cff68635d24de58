package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cwbudde/clinspect/internal/cl"
)

// Reporter renders platform/device enumeration results as text. Every
// call re-queries the enumerator; nothing is cached between calls.
type Reporter struct {
	enum cl.Enumerator
	out  io.Writer
}

// New creates a Reporter writing to out.
func New(enum cl.Enumerator, out io.Writer) *Reporter {
	return &Reporter{enum: enum, out: out}
}

// PlatformSummaries prints one summary line per platform and returns
// the lines in enumeration order. No platforms means an empty result
// and no output.
func (r *Reporter) PlatformSummaries() ([]string, error) {
	platforms, err := r.enum.Platforms()
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(platforms))
	for i, platform := range platforms {
		line := fmt.Sprintf("Platform %d - Name %s, Vendor %s", i, platform.Name, platform.Vendor)
		fmt.Fprintln(r.out, line)
		lines = append(lines, line)
	}

	return lines, nil
}

// FullReport prints the capability report for every platform and
// device. Enumeration failures propagate unchanged; whatever was
// written before the failure stays written.
func (r *Reporter) FullReport() error {
	platforms, err := r.enum.Platforms()
	if err != nil {
		return err
	}

	fmt.Fprintln(r.out, "\n"+strings.Repeat("=", 60)+"\nOpenCL Platforms and Devices")
	for i, platform := range platforms {
		fmt.Fprintln(r.out, strings.Repeat("=", 60))
		fmt.Fprintf(r.out, "Platform %d - Name: %s\n", i, platform.Name)
		fmt.Fprintf(r.out, "Platform %d - Vendor: %s\n", i, platform.Vendor)
		fmt.Fprintf(r.out, "Platform %d - Version: %s\n", i, platform.Version)
		fmt.Fprintf(r.out, "Platform %d - Profile: %s\n", i, platform.Profile)

		for j, device := range platform.Devices {
			fmt.Fprintln(r.out, " "+strings.Repeat("-", 56))
			fmt.Fprintln(r.out, "")
			fmt.Fprintf(r.out, " Device %d - Name: %s\n", j, device.Name)
			fmt.Fprintf(r.out, " Device %d - Type: %s\n", j, device.Type)
			fmt.Fprintf(r.out, " Device %d - Max Clock Speed: %d Mhz\n", j, device.MaxClockFrequency)
			fmt.Fprintf(r.out, " Device %d - Compute Units: %d\n", j, device.MaxComputeUnits)
			fmt.Fprintf(r.out, " Device %d - Local Memory: %s KB\n", j, toKB(device.LocalMemSize))
			fmt.Fprintf(r.out, " Device %d - Constant Memory: %s KB\n", j, toKB(device.MaxConstantBufferSize))
			fmt.Fprintf(r.out, " Device %d - Global Memory: %s GB\n", j, toGB(device.GlobalMemSize))
			fmt.Fprintf(r.out, " Device %d - Max Buffer/Image Size: %s MB\n", j, toMB(device.MaxMemAllocSize))
			fmt.Fprintf(r.out, " Device %d - Max Work Group Size: %d\n", j, device.MaxWorkGroupSize)
			fmt.Fprint(r.out, "\n\n")
		}
	}

	return nil
}

// Unit conversions round to the nearest integer with Go's default
// float formatting (half to even).

func toKB(bytes uint64) string {
	return fmt.Sprintf("%.0f", float64(bytes)/1024.0)
}

func toMB(bytes uint64) string {
	return fmt.Sprintf("%.0f", float64(bytes)/1048576.0)
}

func toGB(bytes uint64) string {
	return fmt.Sprintf("%.0f", float64(bytes)/1073741824.0)
}

// Export is the JSON form of one enumeration pass.
type Export struct {
	Platforms []cl.Platform `json:"platforms"`
}

// SaveJSON enumerates once and writes the snapshot to path as
// indented JSON.
func SaveJSON(enum cl.Enumerator, path string) error {
	platforms, err := enum.Platforms()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(Export{Platforms: platforms}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}

	return nil
}
