// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package libinvoke

import (
	"errors"
	"fmt"
	"sync"
)

// HostModuleName is the module name under which [NewHostModule] exposes the
// invoker to an embedding host.
const HostModuleName = "mediaplayer"

// RunMethod is the name of the method running an [Invoker].
const RunMethod = "run"

// Method table errors
var (
	ErrInvalidMethodName = errors.New("invalid method name")
	ErrDuplicateMethod   = errors.New("method already registered")
	ErrUnknownMethod     = errors.New("unknown method")
	ErrInvalidArguments  = errors.New("invalid arguments")
)

// Method is an operation callable by name from an embedding host. Arguments
// and results are host values.
type Method func(args ...any) (any, error)

// Module is a named table of methods offered to an embedding host.
type Module struct {
	name string

	mu      sync.RWMutex
	methods map[string]Method
	order   []string
}

// NewModule returns an empty module called name.
func NewModule(name string) *Module {
	return &Module{
		name:    name,
		methods: make(map[string]Method),
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return m.name
}

// Register binds fn to name.
func (m *Module) Register(name string, fn Method) error {
	if name == "" || fn == nil {
		return fmt.Errorf("%w: %q", ErrInvalidMethodName, name)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.methods[name]; ok {
		return fmt.Errorf("%w: %s.%s", ErrDuplicateMethod, m.name, name)
	}
	m.methods[name] = fn
	m.order = append(m.order, name)
	return nil
}

// Lookup returns the method bound to name.
func (m *Module) Lookup(name string) (Method, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	fn, ok := m.methods[name]
	return fn, ok
}

// Methods returns the registered method names in registration order.
func (m *Module) Methods() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.order...)
}

// Call runs the method bound to name with args.
func (m *Module) Call(name string, args ...any) (any, error) {
	fn, ok := m.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownMethod, m.name, name)
	}
	return fn(args...)
}

// NewHostModule returns the [HostModuleName] module exposing inv as the
// [RunMethod] method. The method takes exactly one string, the library path,
// and returns the bool [Result.Value].
func NewHostModule(inv *Invoker) *Module {
	m := NewModule(HostModuleName)
	// registering into a fresh module cannot fail
	_ = m.Register(RunMethod, func(args ...any) (any, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: %s() takes exactly one argument (%d given)", ErrInvalidArguments, RunMethod, len(args))
		}
		path, ok := args[0].(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s() argument must be str, not %T", ErrInvalidArguments, RunMethod, args[0])
		}

		res, err := inv.Run(path)
		if err != nil {
			return nil, err
		}
		return res.Value, nil
	})
	return m
}
