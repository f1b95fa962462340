package nvml

import "runtime"

// candidatePaths returns the ordered library locations for this platform:
// the loader-resolved default name first, then one fixed absolute
// fallback. No environment override exists in the baseline design.
func candidatePaths() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{
			"nvidia-ml.dll",
			`C:\Windows\System32\nvidia-ml.dll`,
		}
	default:
		return []string{
			"libnvidia-ml.so.1",
			"/usr/lib/x86_64-linux-gnu/libnvidia-ml.so.1",
		}
	}
}
