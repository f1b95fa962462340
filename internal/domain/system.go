package domain

// MemorySnapshot captures host memory usage at one instant.
type MemorySnapshot struct {
	TotalBytes     uint64  `json:"total_bytes"`
	UsedBytes      uint64  `json:"used_bytes"`
	AvailableBytes uint64  `json:"available_bytes"`
	UsedPercent    float64 `json:"used_percent"`
	SwapTotalBytes uint64  `json:"swap_total_bytes"`
	SwapUsedBytes  uint64  `json:"swap_used_bytes"`
}

// ProcessSnapshot is one row of the process listing.
type ProcessSnapshot struct {
	PID      int32  `json:"pid"`
	Name     string `json:"name"`
	RSSBytes uint64 `json:"rss_bytes"`
	VMSBytes uint64 `json:"vms_bytes"`
}

// HardwareSnapshot summarizes the host hardware.
type HardwareSnapshot struct {
	Hostname         string `json:"hostname"`
	OS               string `json:"os"`
	Platform         string `json:"platform"`
	CPUModel         string `json:"cpu_model"`
	Architecture     string `json:"architecture"`
	LogicalCores     int    `json:"logical_cores"`
	MemoryTotalBytes uint64 `json:"memory_total_bytes"`
}
