package main

import (
	"os"

	"github.com/cwbudde/clinspect/internal/cl"
	"github.com/cwbudde/clinspect/internal/report"
	"github.com/spf13/cobra"
)

var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "List available OpenCL platforms",
	Long:  `Prints one summary line per OpenCL platform, in enumeration order.`,
	RunE:  runPlatforms,
}

func init() {
	rootCmd.AddCommand(platformsCmd)
}

func runPlatforms(cmd *cobra.Command, args []string) error {
	r := report.New(cl.NewSystemEnumerator(), os.Stdout)
	_, err := r.PlatformSummaries()
	return err
}
