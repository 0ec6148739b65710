// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

//go:build (linux || darwin) && (amd64 || arm64) && !libinvoke.disabled

package bindings

import (
	"golang.org/x/sys/unix"

	"github.com/libinvoke/go-libinvoke/liberrors"
)

// ValidatePath checks that path can be handed to dlopen unchanged: it must be
// non-empty (an empty name would open the main program), contain no NUL byte,
// and fit in maxPathLen bytes including the terminator.
func ValidatePath(path string) error {
	if path == "" {
		return liberrors.ErrEmptyPath
	}
	native, err := unix.ByteSliceFromString(path)
	if err != nil {
		return liberrors.ErrPathContainsNUL
	}
	if len(native) > maxPathLen {
		return liberrors.ErrPathTooLong
	}
	return nil
}
