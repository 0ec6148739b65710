// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Build when the target OS or architecture are not supported
//go:build (!linux && !darwin && !windows) || (!amd64 && !arm64) || libinvoke.disabled

package bindings

import (
	"runtime"

	"github.com/libinvoke/go-libinvoke/liberrors"
)

func unsupported() error {
	if disabled {
		return liberrors.ErrManuallyDisabled
	}
	return liberrors.UnsupportedOSArchError{OS: runtime.GOOS, Arch: runtime.GOARCH}
}

func Open(string) (Handle, error) {
	return 0, unsupported()
}

func Lookup(Handle, string) (uintptr, error) {
	return 0, unsupported()
}

func Call(uintptr) uintptr {
	return 0
}

func Close(Handle) error {
	return unsupported()
}

func ValidatePath(path string) error {
	if path == "" {
		return liberrors.ErrEmptyPath
	}
	return nil
}
