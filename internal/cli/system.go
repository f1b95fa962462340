package cli

import (
	"github.com/spf13/cobra"

	"github.com/evanluo/evos/internal/domain"
	"github.com/evanluo/evos/internal/services"
)

var processPID int32

var systemCmd = &cobra.Command{
	Use:   "system",
	Short: "Show system memory info",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := services.NewSystemInfo().Memory()
		if err != nil {
			return err
		}
		PrintMemory(snap, cfg.Display.ByteUnit, labels)
		return nil
	},
}

var processesCmd = &cobra.Command{
	Use:   "processes",
	Short: "Show per-process memory usage",
	RunE: func(cmd *cobra.Command, args []string) error {
		sysinfo := services.NewSystemInfo()

		if processPID > 0 {
			snap, err := sysinfo.Process(processPID)
			if err != nil {
				return err
			}
			PrintProcessTable([]domain.ProcessSnapshot{snap}, cfg.Display.ByteUnit, labels)
			return nil
		}

		list, err := sysinfo.Processes()
		if err != nil {
			return err
		}
		PrintProcessTable(list, cfg.Display.ByteUnit, labels)
		return nil
	},
}

var hardwareCmd = &cobra.Command{
	Use:   "hardware",
	Short: "Show host hardware summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := services.NewSystemInfo().Hardware()
		if err != nil {
			return err
		}
		PrintHardware(snap, cfg.Display.ByteUnit, labels)
		return nil
	},
}

func init() {
	processesCmd.Flags().Int32VarP(&processPID, "pid", "p", 0,
		"show a single process by PID")
}
