//go:build !linux && !darwin && !freebsd && !windows

package dynlib

import "errors"

var errUnsupported = errors.New("dynlib: dynamic loading not supported on this platform")

type noLoader struct{}

func newPlatformLoader() loader { return noLoader{} }

func (noLoader) open(string) (uintptr, error) { return 0, errUnsupported }

func (noLoader) lookup(uintptr, string) (uintptr, error) { return 0, errUnsupported }

func (noLoader) close(uintptr) error { return nil }
