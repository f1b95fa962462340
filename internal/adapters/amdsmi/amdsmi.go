// Package amdsmi is the AMD slot in the vendor sweep. No native SMI
// integration ships yet, so the backend reports the vendor as
// unavailable: expected non-availability, not an error.
package amdsmi

import "github.com/evanluo/evos/internal/domain"

// Backend is the (unsupported) AMD GPU backend.
type Backend struct{}

// NewBackend creates the AMD backend.
func NewBackend() *Backend { return &Backend{} }

// Initialize always reports the vendor as unavailable.
func (b *Backend) Initialize() bool { return false }

func (b *Backend) QueryDevice(index uint32) (domain.GPUSnapshot, error) {
	return domain.GPUSnapshot{}, domain.ErrNotInitialized
}

func (b *Backend) QueryAll() ([]domain.GPUSnapshot, error) {
	return nil, domain.ErrNotInitialized
}

func (b *Backend) Cleanup() {}

func (b *Backend) VendorName() string { return "AMD" }

// Compile-time interface check
var _ domain.GPUBackend = (*Backend)(nil)
