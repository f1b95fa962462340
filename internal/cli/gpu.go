package cli

import (
	"github.com/spf13/cobra"

	"github.com/evanluo/evos/internal/services"
)

func init() {
	gpuCmd.AddCommand(gpuAdvancedCmd)
}

var gpuCmd = &cobra.Command{
	Use:   "gpu",
	Short: "Show GPU information",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGPU(false)
	},
}

var gpuAdvancedCmd = &cobra.Command{
	Use:   "advanced",
	Short: "Show advanced GPU information (clocks, power)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGPU(true)
	},
}

func runGPU(advanced bool) error {
	monitor := services.NewMonitor(log)
	if !monitor.Initialize() {
		// Expected on hosts without supported GPU drivers.
		PrintError(labels.T("no_gpu_backend"))
		return nil
	}
	defer monitor.Cleanup()

	snaps := monitor.Snapshots()
	if len(snaps) == 0 {
		PrintError(labels.T("no_gpu"))
		return nil
	}
	PrintGPUSnapshots(snaps, advanced, labels)
	return nil
}
