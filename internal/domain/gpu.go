package domain

// GPUSnapshot is one point-in-time telemetry record for a single device.
// It is built fresh on every query and never mutated afterwards.
//
// Name, Vendor, the memory fields, Utilization and Temperature are always
// populated when a snapshot exists at all. DriverVersion, PowerWatts and
// the clock fields are best-effort: each degrades to its documented
// default ("Unknown" or 0) when the underlying query fails.
type GPUSnapshot struct {
	Name          string  `json:"name"`
	Vendor        string  `json:"vendor"`
	DriverVersion string  `json:"driver_version"`
	MemoryTotalMB uint64  `json:"memory_total_mb"`
	MemoryUsedMB  uint64  `json:"memory_used_mb"`
	MemoryFreeMB  uint64  `json:"memory_free_mb"`
	Utilization   float64 `json:"utilization_percent"`
	Temperature   float64 `json:"temperature_c"`
	PowerWatts    float64 `json:"power_w"`
	CoreClockMHz  float64 `json:"clock_core_mhz"`
	MemClockMHz   float64 `json:"clock_memory_mhz"`
}
