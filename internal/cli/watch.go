package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/spf13/cobra"

	"github.com/evanluo/evos/internal/services"
)

var watchInterval time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Continuously refresh the GPU snapshot view",
	Long: "Repeatedly queries the monitor at the chosen interval. The core " +
		"itself never polls; this loop is the caller-side refresh.",
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVarP(&watchInterval, "interval", "i",
		2*time.Second, "refresh interval")
}

func runWatch(cmd *cobra.Command, args []string) error {
	monitor := services.NewMonitor(log)
	if !monitor.Initialize() {
		PrintError(labels.T("no_gpu_backend"))
		return nil
	}
	defer monitor.Cleanup()

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	// When a refresh yields nothing, wait with exponential backoff
	// instead of hammering a dead driver at the configured interval.
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = watchInterval
	b.MaxInterval = 30 * time.Second
	b.MaxElapsedTime = 0 // watch until interrupted

	for {
		wait := watchInterval
		snaps := monitor.Snapshots()
		if len(snaps) == 0 {
			PrintError(labels.T("no_gpu"))
			wait = b.NextBackOff()
		} else {
			b.Reset()
			PrintGPUSnapshots(snaps, true, labels)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(wait):
		}
	}
}
