// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Package liberrors defines the failures a library invocation can report.
package liberrors

import (
	"errors"
	"fmt"
	"syscall"
)

// Path conversion errors, reported as the cause of a [KindInvalidPath] error.
var (
	ErrEmptyPath       = errors.New("empty library path")
	ErrPathTooLong     = errors.New("library path exceeds the operating system limit")
	ErrPathContainsNUL = errors.New("library path contains a NUL byte")
)

// ErrManuallyDisabled is reported when the module was built with the
// `libinvoke.disabled` build tag.
var ErrManuallyDisabled = errors.New("library invocation disabled by the libinvoke.disabled build tag")

// UnsupportedOSArchError is reported when the operating system or architecture
// has no dynamic-loader binding.
type UnsupportedOSArchError struct {
	OS   string
	Arch string
}

func (e UnsupportedOSArchError) Error() string {
	return fmt.Sprintf("unsupported OS/Arch: %s/%s", e.OS, e.Arch)
}

// Kind tags the step of an invocation that failed.
type Kind int

// Kinds of failures an invocation can report.
const (
	KindInvalidPath Kind = iota + 1
	KindLoad
	KindSymbol
	KindUnload
	KindUnsupportedTarget
)

// Error returns the string representation of the Kind, which lets a Kind be
// used as an [errors.Is] target.
func (k Kind) Error() string {
	switch k {
	case KindInvalidPath:
		return "invalid library path"
	case KindLoad:
		return "library load failed"
	case KindSymbol:
		return "symbol resolution failed"
	case KindUnload:
		return "library unload failed"
	case KindUnsupportedTarget:
		return "unsupported target"
	default:
		return fmt.Sprintf("unknown failure kind %d", int(k))
	}
}

func (k Kind) String() string {
	return k.Error()
}

// Error is the failure of one step of an invocation.
type Error struct {
	Kind Kind
	// Path is the library path given by the caller.
	Path string
	// Symbol is the symbol being resolved, only set for KindSymbol.
	Symbol string
	// Code is the numeric error code reported by the operating system, or zero
	// when the loader does not report one (dlerror only returns text).
	Code uint32
	Err  error
}

// New builds an Error of the given kind, extracting the OS error code from err
// when it carries one.
func New(kind Kind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Code: OSCode(err), Err: err}
}

func (e *Error) Error() string {
	msg := e.Kind.Error()
	if e.Symbol != "" {
		msg = fmt.Sprintf("%s: symbol %q", msg, e.Symbol)
	}
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %q", msg, e.Path)
	}
	if e.Code != 0 {
		msg = fmt.Sprintf("%s (code %d)", msg, e.Code)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches a bare Kind target, so that errors.Is(err, KindLoad) works.
func (e *Error) Is(target error) bool {
	kind, ok := target.(Kind)
	return ok && kind == e.Kind
}

// KindOf returns the Kind of the first [*Error] in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return 0, false
	}
	return e.Kind, true
}

// OSCode returns the numeric code carried by a [syscall.Errno] in err's chain,
// or zero.
func OSCode(err error) uint32 {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return uint32(errno)
	}
	return 0
}
