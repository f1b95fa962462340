package nvml

import (
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/evanluo/evos/internal/adapters/dynlib"
)

// Entry points required from the vendor library. Resolution is
// all-or-nothing: a library missing any of these is unusable.
const (
	symInit              = "nvmlInit"
	symShutdown          = "nvmlShutdown"
	symDeviceCount       = "nvmlDeviceGetCount"
	symDeviceHandle      = "nvmlDeviceGetHandleByIndex"
	symDeviceName        = "nvmlDeviceGetName"
	symDeviceMemory      = "nvmlDeviceGetMemoryInfo"
	symDeviceUtilization = "nvmlDeviceGetUtilizationRates"
	symDeviceTemperature = "nvmlDeviceGetTemperature"
	symDevicePower       = "nvmlDeviceGetPowerUsage"
	symDeviceClock       = "nvmlDeviceGetClockInfo"
	symDriverVersion     = "nvmlSystemGetDriverVersion"
)

func requiredSymbols() []string {
	return []string{
		symInit,
		symShutdown,
		symDeviceCount,
		symDeviceHandle,
		symDeviceName,
		symDeviceMemory,
		symDeviceUtilization,
		symDeviceTemperature,
		symDevicePower,
		symDeviceClock,
		symDriverVersion,
	}
}

// memoryInfo mirrors nvmlMemory_t: byte counts for the whole device.
type memoryInfo struct {
	Total uint64
	Free  uint64
	Used  uint64
}

// utilizationRates mirrors nvmlUtilization_t: percentages over the last
// sample period.
type utilizationRates struct {
	GPU    uint32
	Memory uint32
}

// procs is the bound entry point table. Every call returns the vendor
// status code; zero is success. Fields are plain Go funcs so tests can
// substitute closures for native code.
type procs struct {
	init              func() uint32
	shutdown          func() uint32
	deviceCount       func(count *uint32) uint32
	deviceHandle      func(index uint32, device *uintptr) uint32
	deviceName        func(device uintptr, buf []byte) uint32
	deviceMemory      func(device uintptr, info *memoryInfo) uint32
	deviceUtilization func(device uintptr, util *utilizationRates) uint32
	deviceTemperature func(device uintptr, sensor uint32, celsius *uint32) uint32
	devicePower       func(device uintptr, milliwatts *uint32) uint32
	deviceClock       func(device uintptr, clock uint32, mhz *uint32) uint32
	driverVersion     func(buf []byte) uint32
}

// bindProcs bridges a fully resolved symbol table to typed Go functions.
// The table is complete by construction, so every address is valid.
func bindProcs(table dynlib.SymbolTable) *procs {
	return &procs{
		init: func() uint32 {
			r, _, _ := purego.SyscallN(table.Addr(symInit))
			return uint32(r)
		},
		shutdown: func() uint32 {
			r, _, _ := purego.SyscallN(table.Addr(symShutdown))
			return uint32(r)
		},
		deviceCount: func(count *uint32) uint32 {
			r, _, _ := purego.SyscallN(table.Addr(symDeviceCount),
				uintptr(unsafe.Pointer(count)))
			runtime.KeepAlive(count)
			return uint32(r)
		},
		deviceHandle: func(index uint32, device *uintptr) uint32 {
			r, _, _ := purego.SyscallN(table.Addr(symDeviceHandle),
				uintptr(index), uintptr(unsafe.Pointer(device)))
			runtime.KeepAlive(device)
			return uint32(r)
		},
		deviceName: func(device uintptr, buf []byte) uint32 {
			r, _, _ := purego.SyscallN(table.Addr(symDeviceName),
				device, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
			runtime.KeepAlive(buf)
			return uint32(r)
		},
		deviceMemory: func(device uintptr, info *memoryInfo) uint32 {
			r, _, _ := purego.SyscallN(table.Addr(symDeviceMemory),
				device, uintptr(unsafe.Pointer(info)))
			runtime.KeepAlive(info)
			return uint32(r)
		},
		deviceUtilization: func(device uintptr, util *utilizationRates) uint32 {
			r, _, _ := purego.SyscallN(table.Addr(symDeviceUtilization),
				device, uintptr(unsafe.Pointer(util)))
			runtime.KeepAlive(util)
			return uint32(r)
		},
		deviceTemperature: func(device uintptr, sensor uint32, celsius *uint32) uint32 {
			r, _, _ := purego.SyscallN(table.Addr(symDeviceTemperature),
				device, uintptr(sensor), uintptr(unsafe.Pointer(celsius)))
			runtime.KeepAlive(celsius)
			return uint32(r)
		},
		devicePower: func(device uintptr, milliwatts *uint32) uint32 {
			r, _, _ := purego.SyscallN(table.Addr(symDevicePower),
				device, uintptr(unsafe.Pointer(milliwatts)))
			runtime.KeepAlive(milliwatts)
			return uint32(r)
		},
		deviceClock: func(device uintptr, clock uint32, mhz *uint32) uint32 {
			r, _, _ := purego.SyscallN(table.Addr(symDeviceClock),
				device, uintptr(clock), uintptr(unsafe.Pointer(mhz)))
			runtime.KeepAlive(mhz)
			return uint32(r)
		},
		driverVersion: func(buf []byte) uint32 {
			r, _, _ := purego.SyscallN(table.Addr(symDriverVersion),
				uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
			runtime.KeepAlive(buf)
			return uint32(r)
		},
	}
}
