package main

import (
	"os"

	"github.com/cwbudde/clinspect/internal/nvml"
	"github.com/spf13/cobra"
)

var nvidiaCmd = &cobra.Command{
	Use:   "nvidia",
	Short: "Probe NVIDIA driver and devices via NVML",
	Long: `Reports the NVIDIA driver version, CUDA driver version and per-GPU
details (name, UUID, memory, max clock) through NVML.`,
	RunE: runNvidia,
}

func init() {
	rootCmd.AddCommand(nvidiaCmd)
}

func runNvidia(cmd *cobra.Command, args []string) error {
	probeReport, err := nvml.NewProber().Probe()
	if err != nil {
		return err
	}

	probeReport.WriteText(os.Stdout)
	return nil
}
