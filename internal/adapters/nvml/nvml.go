// Package nvml implements the NVIDIA GPU backend on top of the NVML
// management library, bound at runtime through dynlib rather than linked
// at build time. Hosts without the library simply report the vendor as
// unavailable.
package nvml

import (
	"bytes"
	"fmt"

	"go.uber.org/zap"

	"github.com/evanluo/evos/internal/adapters/dynlib"
	"github.com/evanluo/evos/internal/domain"
)

const vendor = "NVIDIA"

// NVML clock domain and temperature sensor selectors.
const (
	clockGraphics = 0
	clockMemory   = 1
	sensorGPU     = 0
)

const (
	nameBufSize = 256
	bytesPerMB  = 1024 * 1024
)

// Backend queries NVIDIA devices through the bound NVML entry points.
type Backend struct {
	log  *zap.Logger
	bind func() (*dynlib.Library, *procs, error)

	lib         *dynlib.Library
	procs       *procs
	deviceCount uint32
	ready       bool
}

// NewBackend creates an uninitialized NVIDIA backend.
func NewBackend(log *zap.Logger) *Backend {
	b := &Backend{log: log}
	b.bind = b.bindNative
	return b
}

// bindNative loads the vendor library from the platform candidates and
// resolves the full entry point contract.
func (b *Backend) bindNative() (*dynlib.Library, *procs, error) {
	lib, err := dynlib.Open(candidatePaths()...)
	if err != nil {
		return nil, nil, err
	}
	table, err := lib.ResolveAll(requiredSymbols()...)
	if err != nil {
		lib.Close()
		return nil, nil, err
	}
	return lib, bindProcs(table), nil
}

// Initialize binds the library, runs the vendor init entry point and
// caches the device count. Any failure releases whatever was partially
// bound and returns false; each call is an independent attempt.
func (b *Backend) Initialize() bool {
	b.Cleanup()

	lib, p, err := b.bind()
	if err != nil {
		b.log.Debug("NVML unavailable", zap.Error(err))
		return false
	}
	if rc := p.init(); rc != 0 {
		b.log.Debug("NVML init rejected", zap.Uint32("code", rc))
		lib.Close()
		return false
	}
	var count uint32
	if rc := p.deviceCount(&count); rc != 0 {
		b.log.Debug("NVML device count failed", zap.Uint32("code", rc))
		p.shutdown()
		lib.Close()
		return false
	}

	b.lib = lib
	b.procs = p
	b.deviceCount = count
	b.ready = true
	b.log.Info("NVML bound",
		zap.String("library", lib.Path()),
		zap.Uint32("devices", count))
	return true
}

// VendorName reports the vendor label stamped into snapshots.
func (b *Backend) VendorName() string { return vendor }

// DeviceCount returns the cached device count; meaningful only after a
// successful Initialize.
func (b *Backend) DeviceCount() uint32 { return b.deviceCount }

// QueryDevice returns a fresh snapshot for one device index.
func (b *Backend) QueryDevice(index uint32) (domain.GPUSnapshot, error) {
	if !b.ready {
		return domain.GPUSnapshot{}, domain.ErrNotInitialized
	}
	if index >= b.deviceCount {
		return domain.GPUSnapshot{}, fmt.Errorf("device %d of %d: %w",
			index, b.deviceCount, domain.ErrDeviceUnavailable)
	}
	return b.collect(index)
}

// QueryAll sweeps every device index in ascending order. Devices whose
// core telemetry cannot be read are skipped without aborting the sweep;
// the call errors only when no snapshot at all was produced.
func (b *Backend) QueryAll() ([]domain.GPUSnapshot, error) {
	if !b.ready {
		return nil, domain.ErrNotInitialized
	}
	snapshots := make([]domain.GPUSnapshot, 0, b.deviceCount)
	for index := uint32(0); index < b.deviceCount; index++ {
		snap, err := b.collect(index)
		if err != nil {
			b.log.Debug("skipping device",
				zap.Uint32("index", index), zap.Error(err))
			continue
		}
		snapshots = append(snapshots, snap)
	}
	if len(snapshots) == 0 {
		return nil, domain.ErrQueryFailed
	}
	return snapshots, nil
}

// collect reads one device. Name, memory, utilization and temperature
// are required; driver version, power and the two clocks degrade to
// their defaults individually.
func (b *Backend) collect(index uint32) (domain.GPUSnapshot, error) {
	var device uintptr
	if rc := b.procs.deviceHandle(index, &device); rc != 0 {
		return domain.GPUSnapshot{}, fmt.Errorf("device %d handle: %w",
			index, domain.ErrDeviceUnavailable)
	}

	name := make([]byte, nameBufSize)
	if rc := b.procs.deviceName(device, name); rc != 0 {
		return domain.GPUSnapshot{}, fmt.Errorf("device %d name: %w",
			index, domain.ErrQueryFailed)
	}
	snap := domain.GPUSnapshot{
		Name:   cstring(name),
		Vendor: vendor,
	}

	version := make([]byte, nameBufSize)
	if rc := b.procs.driverVersion(version); rc != 0 {
		snap.DriverVersion = "Unknown"
	} else {
		snap.DriverVersion = cstring(version)
	}

	var mem memoryInfo
	if rc := b.procs.deviceMemory(device, &mem); rc != 0 {
		return domain.GPUSnapshot{}, fmt.Errorf("device %d memory: %w",
			index, domain.ErrQueryFailed)
	}
	snap.MemoryTotalMB = mem.Total / bytesPerMB
	snap.MemoryUsedMB = mem.Used / bytesPerMB
	snap.MemoryFreeMB = mem.Free / bytesPerMB

	var util utilizationRates
	if rc := b.procs.deviceUtilization(device, &util); rc != 0 {
		return domain.GPUSnapshot{}, fmt.Errorf("device %d utilization: %w",
			index, domain.ErrQueryFailed)
	}
	snap.Utilization = float64(util.GPU)

	var celsius uint32
	if rc := b.procs.deviceTemperature(device, sensorGPU, &celsius); rc != 0 {
		return domain.GPUSnapshot{}, fmt.Errorf("device %d temperature: %w",
			index, domain.ErrQueryFailed)
	}
	snap.Temperature = float64(celsius)

	var milliwatts uint32
	if rc := b.procs.devicePower(device, &milliwatts); rc == 0 {
		snap.PowerWatts = float64(milliwatts) / 1000.0
	}

	var mhz uint32
	if rc := b.procs.deviceClock(device, clockGraphics, &mhz); rc == 0 {
		snap.CoreClockMHz = float64(mhz)
	}
	if rc := b.procs.deviceClock(device, clockMemory, &mhz); rc == 0 {
		snap.MemClockMHz = float64(mhz)
	}

	return snap, nil
}

// Cleanup shuts the vendor library down and releases the handle. Safe
// without a prior successful Initialize and safe to call repeatedly.
func (b *Backend) Cleanup() {
	if b.ready && b.procs != nil {
		b.procs.shutdown()
	}
	if b.lib != nil {
		b.lib.Close()
		b.lib = nil
	}
	b.procs = nil
	b.deviceCount = 0
	b.ready = false
}

// cstring extracts the NUL-terminated prefix of a fixed-capacity buffer.
// A name that filled the whole buffer is returned truncated as-is.
func cstring(buf []byte) string {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		return string(buf[:i])
	}
	return string(buf)
}

// Compile-time interface check
var _ domain.GPUBackend = (*Backend)(nil)
