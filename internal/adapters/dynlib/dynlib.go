// Package dynlib loads native shared libraries at runtime and resolves
// named entry points from them. Binding is all-or-nothing: either the
// complete requested symbol set resolves or no address escapes.
package dynlib

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means none of the candidate paths could be loaded.
	ErrNotFound = errors.New("dynlib: no candidate library could be loaded")

	// ErrClosed means the library handle was already released.
	ErrClosed = errors.New("dynlib: library is closed")
)

// SymbolError names the first entry point that failed to resolve.
type SymbolError struct {
	Symbol string
	Path   string
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("dynlib: symbol %q not found in %s", e.Symbol, e.Path)
}

// loader is the OS-specific half of the binder.
type loader interface {
	open(path string) (uintptr, error)
	lookup(handle uintptr, symbol string) (uintptr, error)
	close(handle uintptr) error
}

var sys loader = newPlatformLoader()

// SymbolTable maps entry point names to resolved addresses. A table only
// ever exists in complete form.
type SymbolTable map[string]uintptr

// Addr returns the resolved address for a symbol.
func (t SymbolTable) Addr(symbol string) uintptr { return t[symbol] }

// Library is one successfully loaded native library.
type Library struct {
	handle uintptr
	path   string
}

// Open tries each candidate path in listed order and returns the first
// library that loads. There is no implicit search beyond the supplied
// candidates; ErrNotFound is returned when every one of them fails.
func Open(candidates ...string) (*Library, error) {
	for _, path := range candidates {
		handle, err := sys.open(path)
		if err != nil || handle == 0 {
			continue
		}
		return &Library{handle: handle, path: path}, nil
	}
	return nil, ErrNotFound
}

// Path reports the candidate that actually loaded.
func (l *Library) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// ResolveAll resolves every named entry point or none of them. On the
// first missing symbol the partial table is discarded and a *SymbolError
// is returned; the library handle stays open and remains the caller's to
// release.
func (l *Library) ResolveAll(symbols ...string) (SymbolTable, error) {
	if l == nil || l.handle == 0 {
		return nil, ErrClosed
	}
	table := make(SymbolTable, len(symbols))
	for _, symbol := range symbols {
		addr, err := sys.lookup(l.handle, symbol)
		if err != nil || addr == 0 {
			return nil, &SymbolError{Symbol: symbol, Path: l.path}
		}
		table[symbol] = addr
	}
	return table, nil
}

// Close releases the OS-level library reference. Safe on a nil,
// never-opened or already-closed library.
func (l *Library) Close() error {
	if l == nil || l.handle == 0 {
		return nil
	}
	handle := l.handle
	l.handle = 0
	return sys.close(handle)
}
