package cli

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/evanluo/evos/internal/domain"
	"github.com/evanluo/evos/internal/i18n"
)

// PrintHeader prints a section header
func PrintHeader(title string) {
	fmt.Printf("\n=== %s ===\n", title)
}

// PrintField prints a labeled field
func PrintField(label, value string) {
	fmt.Printf("  %-24s %s\n", label+":", value)
}

// PrintError prints an error message
func PrintError(message string) {
	fmt.Printf("\nError: %s\n", message)
}

// FormatBytes renders a byte count in the configured unit. Auto mode
// delegates to humanize; the fixed modes mirror the classic divisors.
func FormatBytes(unit string, n uint64) string {
	switch strings.ToLower(unit) {
	case "kb":
		return fmt.Sprintf("%d KB", n/1024)
	case "mb":
		return fmt.Sprintf("%d MB", n/(1024*1024))
	case "gb":
		return fmt.Sprintf("%.1f GB", float64(n)/(1024*1024*1024))
	default:
		return humanize.IBytes(n)
	}
}

// PrintGPUSnapshots displays one block per device. The advanced view
// adds power and clock telemetry.
func PrintGPUSnapshots(snaps []domain.GPUSnapshot, advanced bool, labels *i18n.Catalog) {
	title := labels.T("gpu_info")
	if advanced {
		title = labels.T("advanced_gpu_info")
	}
	PrintHeader(fmt.Sprintf("%s (%d)", title, len(snaps)))

	for i, snap := range snaps {
		if i > 0 {
			fmt.Println()
		}
		PrintField(labels.T("gpu_name"), snap.Name)
		PrintField(labels.T("gpu_vendor"), snap.Vendor)
		PrintField(labels.T("driver_version"), snap.DriverVersion)
		PrintField(labels.T("memory_total"), fmt.Sprintf("%d MB", snap.MemoryTotalMB))
		PrintField(labels.T("memory_used"), fmt.Sprintf("%d MB", snap.MemoryUsedMB))
		PrintField(labels.T("memory_free"), fmt.Sprintf("%d MB", snap.MemoryFreeMB))
		PrintField(labels.T("utilization"), fmt.Sprintf("%.0f%%", snap.Utilization))
		PrintField(labels.T("temperature"), fmt.Sprintf("%.0f°C", snap.Temperature))
		if advanced {
			PrintField(labels.T("power_usage"), fmt.Sprintf("%.1f W", snap.PowerWatts))
			PrintField(labels.T("clock_core"), fmt.Sprintf("%.0f MHz", snap.CoreClockMHz))
			PrintField(labels.T("clock_memory"), fmt.Sprintf("%.0f MHz", snap.MemClockMHz))
		}
	}
}

// PrintMemory displays host memory usage.
func PrintMemory(snap domain.MemorySnapshot, unit string, labels *i18n.Catalog) {
	PrintHeader(labels.T("system_memory"))
	PrintField(labels.T("total_physical_memory"), FormatBytes(unit, snap.TotalBytes))
	PrintField(labels.T("used_physical_memory"), FormatBytes(unit, snap.UsedBytes))
	PrintField(labels.T("free_physical_memory"), FormatBytes(unit, snap.AvailableBytes))
	PrintField(labels.T("memory_usage"), fmt.Sprintf("%.1f%%", snap.UsedPercent))
	PrintField(labels.T("swap_total"), FormatBytes(unit, snap.SwapTotalBytes))
	PrintField(labels.T("swap_used"), FormatBytes(unit, snap.SwapUsedBytes))
}

// PrintProcessTable displays processes in a table format
func PrintProcessTable(list []domain.ProcessSnapshot, unit string, labels *i18n.Catalog) {
	PrintHeader(fmt.Sprintf("%s (%d)", labels.T("each_process"), len(list)))

	if len(list) == 0 {
		fmt.Println("  (no processes)")
		return
	}

	fmt.Printf("  %-10s %-28s %-15s %-15s\n",
		labels.T("pid"), labels.T("process_name"),
		labels.T("working_set"), labels.T("virtual_size"))
	fmt.Printf("  %-10s %-28s %-15s %-15s\n",
		strings.Repeat("-", 10), strings.Repeat("-", 28),
		strings.Repeat("-", 15), strings.Repeat("-", 15))

	for _, p := range list {
		name := p.Name
		if len(name) > 28 {
			name = name[:25] + "..."
		}
		fmt.Printf("  %-10d %-28s %-15s %-15s\n",
			p.PID, name,
			FormatBytes(unit, p.RSSBytes),
			FormatBytes(unit, p.VMSBytes))
	}
}

// PrintHardware displays the host hardware summary.
func PrintHardware(snap domain.HardwareSnapshot, unit string, labels *i18n.Catalog) {
	PrintHeader(labels.T("hardware_info"))
	PrintField(labels.T("hostname"), snap.Hostname)
	PrintField(labels.T("os"), fmt.Sprintf("%s (%s)", snap.OS, snap.Platform))
	PrintField(labels.T("cpu_brand"), snap.CPUModel)
	PrintField(labels.T("architecture"), snap.Architecture)
	PrintField(labels.T("cpu_cores"), fmt.Sprintf("%d", snap.LogicalCores))
	PrintField(labels.T("total_physical_memory"), FormatBytes(unit, snap.MemoryTotalBytes))
}
