// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Package bindings wraps the operating system's dynamic loader: opening a
// library, resolving a symbol, calling it with no arguments and closing the
// library again.
package bindings

// Handle is the loader's opaque reference to an opened library.
type Handle uintptr

// Loader exposes the package functions as methods so that callers can swap
// the loader out.
type Loader struct{}

func (Loader) Open(path string) (Handle, error)                   { return Open(path) }
func (Loader) Lookup(handle Handle, name string) (uintptr, error) { return Lookup(handle, name) }
func (Loader) Call(fn uintptr) uintptr                            { return Call(fn) }
func (Loader) Close(handle Handle) error                          { return Close(handle) }
