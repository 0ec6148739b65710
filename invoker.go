// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Package libinvoke loads a dynamic library, calls its `load` export once and
// unloads it again, reporting the export's result to the caller.
package libinvoke

import (
	"errors"

	"github.com/libinvoke/go-libinvoke/internal/bindings"
	"github.com/libinvoke/go-libinvoke/internal/log"
	"github.com/libinvoke/go-libinvoke/liberrors"
)

// EntryPoint is the name of the export every invoked library must provide.
const EntryPoint = "load"

// EntryKind describes the signature of the [EntryPoint] export.
type EntryKind int

const (
	// EntryBool is `bool load(void)`. The returned flag is passed through as
	// [Result.Value].
	EntryBool EntryKind = iota
	// EntryVoid is `void load(void)`. Completion is the only signal and
	// [Result.Value] is always false.
	EntryVoid
)

func (k EntryKind) String() string {
	switch k {
	case EntryBool:
		return "bool"
	case EntryVoid:
		return "void"
	default:
		return "unknown"
	}
}

// EntryKindNamed returns the EntryKind called name, as printed by
// [EntryKind.String].
func EntryKindNamed(name string) (EntryKind, bool) {
	switch name {
	case "bool":
		return EntryBool, true
	case "void":
		return EntryVoid, true
	default:
		return 0, false
	}
}

// Result is the outcome of an invocation whose entry point ran.
type Result struct {
	// Value is the flag returned by the entry point, never reinterpreted.
	Value bool
	// UnloadErr is set when unloading the library failed after the entry point
	// returned. It does not change Value.
	UnloadErr error
}

// dynamicLoader is satisfied by [bindings.Loader].
type dynamicLoader interface {
	Open(path string) (bindings.Handle, error)
	Lookup(handle bindings.Handle, name string) (uintptr, error)
	Call(fn uintptr) uintptr
	Close(handle bindings.Handle) error
}

// Invoker runs the [EntryPoint] of dynamic libraries. The zero value is not
// usable, use [New].
type Invoker struct {
	loader dynamicLoader
	kind   EntryKind
}

// Option configures an [Invoker].
type Option func(*Invoker)

// WithEntryKind sets the signature expected from the entry point. The default
// is [EntryBool].
func WithEntryKind(kind EntryKind) Option {
	return func(inv *Invoker) {
		inv.kind = kind
	}
}

func withLoader(loader dynamicLoader) Option {
	return func(inv *Invoker) {
		inv.loader = loader
	}
}

// New returns an Invoker using the operating system's dynamic loader.
func New(opts ...Option) *Invoker {
	inv := &Invoker{
		loader: bindings.Loader{},
		kind:   EntryBool,
	}
	for _, opt := range opts {
		opt(inv)
	}
	return inv
}

// EntryKind returns the entry point signature the invoker expects.
func (inv *Invoker) EntryKind() EntryKind {
	return inv.kind
}

// Run invokes the [EntryPoint] of the library at path with a default [Invoker].
func Run(path string) (Result, error) {
	return New().Run(path)
}

// Run loads the library at path, calls its [EntryPoint] once with no
// arguments and unloads it.
//
// The returned error wraps a [*liberrors.Error] whenever the entry point could not
// be called: the path is invalid, the target is unsupported, the library does
// not load or does not export [EntryPoint]. Once the library is loaded it is
// always unloaded before Run returns. An unload failure after the entry point
// ran is reported in [Result.UnloadErr] only.
//
// Run blocks until the entry point returns.
func (inv *Invoker) Run(path string) (Result, error) {
	if ok, supportErr := Usable(); !ok {
		log.Errorf("cannot invoke %q: %v", path, supportErr)
		return Result{}, liberrors.New(liberrors.KindUnsupportedTarget, path, supportErr)
	}

	if err := bindings.ValidatePath(path); err != nil {
		log.Errorf("invalid library path %q: %v", path, err)
		return Result{}, liberrors.New(liberrors.KindInvalidPath, path, err)
	}

	handle, err := inv.loader.Open(path)
	if err != nil {
		failure := liberrors.New(liberrors.KindLoad, path, err)
		log.Errorf("loading %q failed (code %d): %v", path, failure.Code, err)
		return Result{}, failure
	}
	log.Debugf("loaded %q", path)

	entry, err := inv.loader.Lookup(handle, EntryPoint)
	if err != nil {
		failure := liberrors.New(liberrors.KindSymbol, path, err)
		failure.Symbol = EntryPoint
		log.Errorf("resolving %q in %q failed (code %d): %v", EntryPoint, path, failure.Code, err)
		if closeErr := inv.unload(handle, path); closeErr != nil {
			return Result{}, errors.Join(failure, closeErr)
		}
		return Result{}, failure
	}

	var res Result
	res.Value = inv.call(entry)
	log.Debugf("%q returned %v", EntryPoint, res.Value)

	if closeErr := inv.unload(handle, path); closeErr != nil {
		res.UnloadErr = closeErr
	}
	return res, nil
}

func (inv *Invoker) call(entry uintptr) bool {
	ret := inv.loader.Call(entry)
	if inv.kind == EntryVoid {
		return false
	}
	// C bool is returned in the low byte, the rest of the register is undefined
	return byte(ret) != 0
}

func (inv *Invoker) unload(handle bindings.Handle, path string) error {
	if err := inv.loader.Close(handle); err != nil {
		failure := liberrors.New(liberrors.KindUnload, path, err)
		log.Warnf("unloading %q failed (code %d): %v", path, failure.Code, err)
		return failure
	}
	log.Debugf("unloaded %q", path)
	return nil
}
