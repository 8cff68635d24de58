package main

import (
	"log/slog"
	"os"

	"github.com/cwbudde/clinspect/internal/cl"
	"github.com/cwbudde/clinspect/internal/report"
	"github.com/spf13/cobra"
)

var jsonOutPath string

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print the full platform and device report",
	Long: `Prints every OpenCL platform with its devices and their capabilities
(clock speed, compute units, memory sizes, work group limits).`,
	RunE: runInfo,
}

func init() {
	infoCmd.Flags().StringVar(&jsonOutPath, "output", "", "Also write the report as JSON to this file")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	enum := cl.NewSystemEnumerator()

	if err := report.New(enum, os.Stdout).FullReport(); err != nil {
		return err
	}

	if jsonOutPath != "" {
		if err := report.SaveJSON(enum, jsonOutPath); err != nil {
			return err
		}
		slog.Info("Report written", "path", jsonOutPath)
	}

	return nil
}
