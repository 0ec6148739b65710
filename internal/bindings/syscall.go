// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

//go:build (linux || darwin || windows) && (amd64 || arm64) && !libinvoke.disabled

package bindings

import (
	"github.com/ebitengine/purego"

	"github.com/libinvoke/go-libinvoke/internal/log"
)

// Call invokes the function at fn with no arguments and returns the content of
// the integer return register. A caller expecting a C bool must only look at
// its lowest byte.
//
// Note: `purego.SyscallN` has 3 return values: these are the following:
//
//	1st - The return value is a pointer or a int of any type
//	2nd - The return value is a float
//	3rd - The value of `errno` at the end of the call
func Call(fn uintptr) uintptr {
	log.Tracef("SyscallN(0x%x)", fn)
	ret, _, _ := purego.SyscallN(fn)
	log.Tracef("SyscallN(0x%x) = 0x%x", fn, ret)
	return ret
}
