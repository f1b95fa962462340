//go:build windows

package dynlib

import "golang.org/x/sys/windows"

type winLoader struct{}

func newPlatformLoader() loader { return winLoader{} }

func (winLoader) open(path string) (uintptr, error) {
	handle, err := windows.LoadLibrary(path)
	if err != nil {
		return 0, err
	}
	return uintptr(handle), nil
}

func (winLoader) lookup(handle uintptr, symbol string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(handle), symbol)
}

func (winLoader) close(handle uintptr) error {
	return windows.FreeLibrary(windows.Handle(handle))
}
