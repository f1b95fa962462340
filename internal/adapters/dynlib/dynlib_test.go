package dynlib

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLoader serves libraries from memory. Handles are 1-based indices
// into libs so that 0 stays "no handle".
type fakeLoader struct {
	paths   []string
	symbols []map[string]uintptr
	opened  []string
	closed  []uintptr
}

func (f *fakeLoader) open(path string) (uintptr, error) {
	for i, p := range f.paths {
		if p == path {
			f.opened = append(f.opened, path)
			return uintptr(i + 1), nil
		}
	}
	return 0, errors.New("not found")
}

func (f *fakeLoader) lookup(handle uintptr, symbol string) (uintptr, error) {
	addr, ok := f.symbols[handle-1][symbol]
	if !ok {
		return 0, errors.New("undefined symbol")
	}
	return addr, nil
}

func (f *fakeLoader) close(handle uintptr) error {
	f.closed = append(f.closed, handle)
	return nil
}

func withLoader(t *testing.T, fake loader) {
	t.Helper()
	prev := sys
	sys = fake
	t.Cleanup(func() { sys = prev })
}

func TestOpen_FirstLoadableCandidateWins(t *testing.T) {
	fake := &fakeLoader{
		paths:   []string{"libfoo.so.1", "/usr/lib/libfoo.so.1"},
		symbols: []map[string]uintptr{{}, {}},
	}
	withLoader(t, fake)

	lib, err := Open("libmissing.so", "libfoo.so.1", "/usr/lib/libfoo.so.1")

	require.NoError(t, err)
	assert.Equal(t, "libfoo.so.1", lib.Path())
	assert.Equal(t, []string{"libfoo.so.1"}, fake.opened)
}

func TestOpen_AllCandidatesFail(t *testing.T) {
	withLoader(t, &fakeLoader{})

	lib, err := Open("liba.so", "libb.so")

	assert.Nil(t, lib)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveAll_CompleteSetResolves(t *testing.T) {
	fake := &fakeLoader{
		paths: []string{"lib.so"},
		symbols: []map[string]uintptr{
			{"alpha": 0x10, "beta": 0x20, "gamma": 0x30},
		},
	}
	withLoader(t, fake)

	lib, err := Open("lib.so")
	require.NoError(t, err)

	table, err := lib.ResolveAll("alpha", "beta", "gamma")

	require.NoError(t, err)
	assert.Equal(t, uintptr(0x10), table.Addr("alpha"))
	assert.Equal(t, uintptr(0x30), table.Addr("gamma"))
}

func TestResolveAll_IsAtomic(t *testing.T) {
	// beta is missing: the whole resolve must fail even though alpha
	// and gamma exist, and no partial table may be returned.
	fake := &fakeLoader{
		paths: []string{"lib.so"},
		symbols: []map[string]uintptr{
			{"alpha": 0x10, "gamma": 0x30},
		},
	}
	withLoader(t, fake)

	lib, err := Open("lib.so")
	require.NoError(t, err)

	table, err := lib.ResolveAll("alpha", "beta", "gamma")

	assert.Nil(t, table)
	var symErr *SymbolError
	require.ErrorAs(t, err, &symErr)
	assert.Equal(t, "beta", symErr.Symbol)
	assert.Equal(t, "lib.so", symErr.Path)

	// The handle is still the caller's to release.
	assert.Empty(t, fake.closed)
	require.NoError(t, lib.Close())
	assert.Equal(t, []uintptr{1}, fake.closed)
}

func TestResolveAll_AfterClose(t *testing.T) {
	fake := &fakeLoader{
		paths:   []string{"lib.so"},
		symbols: []map[string]uintptr{{"alpha": 0x10}},
	}
	withLoader(t, fake)

	lib, err := Open("lib.so")
	require.NoError(t, err)
	require.NoError(t, lib.Close())

	_, err = lib.ResolveAll("alpha")

	assert.ErrorIs(t, err, ErrClosed)
}

func TestClose_Idempotent(t *testing.T) {
	fake := &fakeLoader{
		paths:   []string{"lib.so"},
		symbols: []map[string]uintptr{{}},
	}
	withLoader(t, fake)

	lib, err := Open("lib.so")
	require.NoError(t, err)

	require.NoError(t, lib.Close())
	require.NoError(t, lib.Close())
	require.NoError(t, lib.Close())

	assert.Len(t, fake.closed, 1)
}

func TestClose_NilLibrary(t *testing.T) {
	var lib *Library
	assert.NoError(t, lib.Close())
}
