package services

import (
	"go.uber.org/zap"

	"github.com/evanluo/evos/internal/adapters/amdsmi"
	"github.com/evanluo/evos/internal/adapters/igcl"
	"github.com/evanluo/evos/internal/adapters/nvml"
	"github.com/evanluo/evos/internal/domain"
)

// Monitor owns the per-vendor GPU backends and aggregates their
// snapshots into one ordered sequence. It is synchronous and
// single-threaded: every refresh is an explicit caller-driven query.
type Monitor struct {
	log      *zap.Logger
	factory  func() []domain.GPUBackend
	backends []domain.GPUBackend // retained, in fixed vendor order
}

// NewMonitor creates a monitor over the full vendor set, swept in
// NVIDIA, AMD, Intel order.
func NewMonitor(log *zap.Logger) *Monitor {
	return &Monitor{
		log: log,
		factory: func() []domain.GPUBackend {
			return []domain.GPUBackend{
				nvml.NewBackend(log),
				amdsmi.NewBackend(),
				igcl.NewBackend(),
			}
		},
	}
}

// Initialize constructs one backend per vendor, retains those that bind
// and immediately releases the rest. A vendor failing to initialize is
// expected on hosts without that hardware and is never surfaced as an
// error. Returns true iff at least one backend was retained.
func (m *Monitor) Initialize() bool {
	m.Cleanup()
	for _, backend := range m.factory() {
		if backend.Initialize() {
			m.log.Info("GPU backend ready",
				zap.String("vendor", backend.VendorName()))
			m.backends = append(m.backends, backend)
			continue
		}
		backend.Cleanup()
		m.log.Debug("GPU backend unavailable",
			zap.String("vendor", backend.VendorName()))
	}
	return len(m.backends) > 0
}

// Snapshots queries every retained backend in vendor order and
// concatenates the results, preserving backend order then device order.
// The slice is empty when no backend produced a snapshot.
func (m *Monitor) Snapshots() []domain.GPUSnapshot {
	var all []domain.GPUSnapshot
	for _, backend := range m.backends {
		snaps, err := backend.QueryAll()
		if err != nil {
			m.log.Debug("backend produced no snapshots",
				zap.String("vendor", backend.VendorName()),
				zap.Error(err))
			continue
		}
		all = append(all, snaps...)
	}
	return all
}

// Cleanup releases every retained backend and clears the set. Safe
// before Initialize and safe to call repeatedly; a later Initialize
// starts a completely fresh session.
func (m *Monitor) Cleanup() {
	for _, backend := range m.backends {
		backend.Cleanup()
	}
	m.backends = nil
}
