// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

//go:build windows && (amd64 || arm64) && !libinvoke.disabled

package bindings

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"

	"github.com/libinvoke/go-libinvoke/internal/log"
	"github.com/libinvoke/go-libinvoke/liberrors"
)

// Open loads the DLL at path. The returned error wraps the
// [windows.Errno] given by GetLastError.
func Open(path string) (Handle, error) {
	log.Tracef("LoadLibrary(%q)", path)
	handle, err := windows.LoadLibrary(path)
	log.Tracef("LoadLibrary(%q) = 0x%x, %v", path, handle, err)
	if err != nil {
		return 0, errors.Wrapf(err, "LoadLibrary %q", path)
	}
	if handle == 0 {
		return 0, errors.Errorf("LoadLibrary %q returned a null handle", path)
	}
	return Handle(handle), nil
}

// Lookup resolves the export name in the DLL.
func Lookup(handle Handle, name string) (uintptr, error) {
	log.Tracef("GetProcAddress(0x%x, %q)", handle, name)
	proc, err := windows.GetProcAddress(windows.Handle(handle), name)
	log.Tracef("GetProcAddress(0x%x, %q) = 0x%x, %v", handle, name, proc, err)
	if err != nil {
		return 0, errors.Wrapf(err, "GetProcAddress %q", name)
	}
	return proc, nil
}

// Close unloads the DLL.
func Close(handle Handle) error {
	log.Tracef("FreeLibrary(0x%x)", handle)
	err := windows.FreeLibrary(windows.Handle(handle))
	log.Tracef("FreeLibrary(0x%x) = %v", handle, err)
	return errors.Wrap(err, "FreeLibrary")
}

// ValidatePath checks that path converts to a wide string fitting in MAX_PATH
// UTF-16 units, terminator included. Longer paths are rejected, not truncated.
func ValidatePath(path string) error {
	if path == "" {
		return liberrors.ErrEmptyPath
	}
	wide, err := windows.UTF16FromString(path)
	if err != nil {
		return liberrors.ErrPathContainsNUL
	}
	if len(wide) > windows.MAX_PATH {
		return liberrors.ErrPathTooLong
	}
	return nil
}
