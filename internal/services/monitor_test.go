package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/evanluo/evos/internal/domain"
)

// fakeBackend is a scriptable GPU backend for manager tests.
type fakeBackend struct {
	vendor   string
	ok       bool
	snaps    []domain.GPUSnapshot
	inits    int
	cleanups int
}

func (f *fakeBackend) Initialize() bool { f.inits++; return f.ok }

func (f *fakeBackend) QueryDevice(index uint32) (domain.GPUSnapshot, error) {
	if !f.ok || int(index) >= len(f.snaps) {
		return domain.GPUSnapshot{}, domain.ErrDeviceUnavailable
	}
	return f.snaps[index], nil
}

func (f *fakeBackend) QueryAll() ([]domain.GPUSnapshot, error) {
	if len(f.snaps) == 0 {
		return nil, domain.ErrQueryFailed
	}
	return f.snaps, nil
}

func (f *fakeBackend) Cleanup() { f.cleanups++ }

func (f *fakeBackend) VendorName() string { return f.vendor }

var _ domain.GPUBackend = (*fakeBackend)(nil)

func testMonitor(backends ...domain.GPUBackend) *Monitor {
	return &Monitor{
		log:     zap.NewNop(),
		factory: func() []domain.GPUBackend { return backends },
	}
}

func snapsNamed(names ...string) []domain.GPUSnapshot {
	out := make([]domain.GPUSnapshot, len(names))
	for i, n := range names {
		out[i] = domain.GPUSnapshot{Name: n, Vendor: "NVIDIA"}
	}
	return out
}

func TestInitialize_NoWorkingBackend(t *testing.T) {
	nv := &fakeBackend{vendor: "NVIDIA"}
	amd := &fakeBackend{vendor: "AMD"}
	m := testMonitor(nv, amd)

	assert.False(t, m.Initialize())
	assert.Empty(t, m.Snapshots())
}

func TestInitialize_ReleasesFailedBackendsImmediately(t *testing.T) {
	nv := &fakeBackend{vendor: "NVIDIA", ok: true, snaps: snapsNamed("dev0")}
	amd := &fakeBackend{vendor: "AMD"}
	intel := &fakeBackend{vendor: "Intel"}
	m := testMonitor(nv, amd, intel)

	require.True(t, m.Initialize())

	assert.Equal(t, 0, nv.cleanups)
	assert.Equal(t, 1, amd.cleanups)
	assert.Equal(t, 1, intel.cleanups)
}

func TestSnapshots_SingleBackendTwoDevices(t *testing.T) {
	nv := &fakeBackend{vendor: "NVIDIA", ok: true, snaps: snapsNamed("dev0", "dev1")}
	m := testMonitor(nv)

	require.True(t, m.Initialize())
	snaps := m.Snapshots()

	require.Len(t, snaps, 2)
	assert.Equal(t, "dev0", snaps[0].Name)
	assert.Equal(t, "dev1", snaps[1].Name)
}

func TestSnapshots_ConcatenatesInVendorOrder(t *testing.T) {
	first := &fakeBackend{vendor: "NVIDIA", ok: true, snaps: snapsNamed("n0", "n1")}
	second := &fakeBackend{vendor: "AMD", ok: true, snaps: snapsNamed("a0")}
	m := testMonitor(first, second)

	require.True(t, m.Initialize())
	snaps := m.Snapshots()

	require.Len(t, snaps, 3)
	assert.Equal(t, "n0", snaps[0].Name)
	assert.Equal(t, "n1", snaps[1].Name)
	assert.Equal(t, "a0", snaps[2].Name)
}

func TestSnapshots_BackendFailureDoesNotAbortSiblings(t *testing.T) {
	empty := &fakeBackend{vendor: "NVIDIA", ok: true} // retained but yields nothing
	working := &fakeBackend{vendor: "AMD", ok: true, snaps: snapsNamed("a0")}
	m := testMonitor(empty, working)

	require.True(t, m.Initialize())
	snaps := m.Snapshots()

	require.Len(t, snaps, 1)
	assert.Equal(t, "a0", snaps[0].Name)
}

func TestSnapshots_WithoutInitialize(t *testing.T) {
	m := testMonitor()

	assert.Empty(t, m.Snapshots())
}

func TestCleanup_WithoutInitialize(t *testing.T) {
	m := testMonitor()

	m.Cleanup()
	m.Cleanup()
}

func TestCleanup_ReleasesEveryRetainedBackend(t *testing.T) {
	nv := &fakeBackend{vendor: "NVIDIA", ok: true, snaps: snapsNamed("dev0")}
	amd := &fakeBackend{vendor: "AMD", ok: true, snaps: snapsNamed("dev1")}
	m := testMonitor(nv, amd)

	require.True(t, m.Initialize())
	m.Cleanup()
	m.Cleanup()

	assert.Equal(t, 1, nv.cleanups)
	assert.Equal(t, 1, amd.cleanups)
	assert.Empty(t, m.Snapshots())
}

func TestReinitialize_YieldsFreshSession(t *testing.T) {
	nv := &fakeBackend{vendor: "NVIDIA", ok: true, snaps: snapsNamed("old")}
	m := testMonitor(nv)

	require.True(t, m.Initialize())
	require.Equal(t, "old", m.Snapshots()[0].Name)

	m.Cleanup()
	nv.snaps = snapsNamed("new") // hardware state changed between sessions

	require.True(t, m.Initialize())
	snaps := m.Snapshots()

	require.Len(t, snaps, 1)
	assert.Equal(t, "new", snaps[0].Name)
	assert.Equal(t, 2, nv.inits)
}
