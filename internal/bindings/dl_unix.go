// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Purego only works on linux/macOS with amd64 and arm64 from now
//go:build (linux || darwin) && (amd64 || arm64) && !libinvoke.disabled

package bindings

import (
	"github.com/ebitengine/purego"
	"github.com/pkg/errors"

	"github.com/libinvoke/go-libinvoke/internal/log"
)

// The library is only needed until it is closed at the end of the invocation,
// so its symbols are kept out of the global namespace.
const dlopenFlags = purego.RTLD_NOW | purego.RTLD_LOCAL

// Open opens the shared library at path.
func Open(path string) (Handle, error) {
	log.Tracef("Dlopen(%q, 0x%x)", path, dlopenFlags)
	handle, err := purego.Dlopen(path, dlopenFlags)
	log.Tracef("Dlopen(%q, 0x%x) = 0x%x, %v", path, dlopenFlags, handle, err)
	if err != nil {
		return 0, errors.Wrapf(err, "dlopen %q", path)
	}
	if handle == 0 {
		return 0, errors.Errorf("dlopen %q returned a null handle", path)
	}
	return Handle(handle), nil
}

// Lookup resolves the symbol name in the library.
// If the symbol is not found, the error is the text given by dlerror().
func Lookup(handle Handle, name string) (uintptr, error) {
	log.Tracef("Dlsym(0x%x, %q)", handle, name)
	ptr, err := purego.Dlsym(uintptr(handle), name)
	log.Tracef("Dlsym(0x%x, %q) = 0x%x, %v", handle, name, ptr, err)
	if err != nil {
		return 0, errors.Wrapf(err, "dlsym %q", name)
	}
	if ptr == 0 {
		return 0, errors.Errorf("dlsym %q resolved to a null address", name)
	}
	return ptr, nil
}

// Close releases the handle returned by [Open].
func Close(handle Handle) error {
	log.Tracef("Dlclose(0x%x)", handle)
	err := purego.Dlclose(uintptr(handle))
	log.Tracef("Dlclose(0x%x) = %v", handle, err)
	return errors.Wrap(err, "dlclose")
}
