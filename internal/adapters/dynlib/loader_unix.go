//go:build linux || darwin || freebsd

package dynlib

import "github.com/ebitengine/purego"

type dlLoader struct{}

func newPlatformLoader() loader { return dlLoader{} }

func (dlLoader) open(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
}

func (dlLoader) lookup(handle uintptr, symbol string) (uintptr, error) {
	return purego.Dlsym(handle, symbol)
}

func (dlLoader) close(handle uintptr) error {
	return purego.Dlclose(handle)
}
