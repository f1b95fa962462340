package domain

// GPUBackend is one vendor's telemetry implementation. The variant set is
// closed: NVIDIA, AMD and Intel backends exist, and adding a vendor is a
// deliberate code change rather than runtime registration.
type GPUBackend interface {
	// Initialize binds the vendor library and probes the device set.
	// False means the vendor is unavailable on this host; that is
	// expected non-availability, not an error. Safe to call repeatedly,
	// each call is an independent attempt.
	Initialize() bool
	// QueryDevice returns a fresh snapshot for one device index.
	QueryDevice(index uint32) (GPUSnapshot, error)
	// QueryAll returns snapshots for every reachable device in ascending
	// index order. It errors only when zero snapshots were produced.
	QueryAll() ([]GPUSnapshot, error)
	// Cleanup releases the vendor library. Safe without a prior
	// successful Initialize, and safe to call more than once.
	Cleanup()
	// VendorName reports the vendor label stamped into snapshots.
	VendorName() string
}
