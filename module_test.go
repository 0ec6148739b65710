// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package libinvoke

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModuleRegisterAndCall(t *testing.T) {
	m := NewModule("test")
	require.Equal(t, "test", m.Name())

	require.NoError(t, m.Register("echo", func(args ...any) (any, error) {
		return args, nil
	}))
	require.NoError(t, m.Register("nothing", func(...any) (any, error) {
		return nil, nil
	}))
	require.Equal(t, []string{"echo", "nothing"}, m.Methods())

	out, err := m.Call("echo", "a", 1)
	require.NoError(t, err)
	require.Equal(t, []any{"a", 1}, out)

	_, ok := m.Lookup("nothing")
	require.True(t, ok)
}

func TestModuleRegisterErrors(t *testing.T) {
	m := NewModule("test")
	noop := func(...any) (any, error) { return nil, nil }

	require.ErrorIs(t, m.Register("", noop), ErrInvalidMethodName)
	require.ErrorIs(t, m.Register("nil", nil), ErrInvalidMethodName)

	require.NoError(t, m.Register("once", noop))
	require.ErrorIs(t, m.Register("once", noop), ErrDuplicateMethod)
	require.Equal(t, []string{"once"}, m.Methods())
}

func TestModuleUnknownMethod(t *testing.T) {
	_, err := NewModule("test").Call("missing")
	require.ErrorIs(t, err, ErrUnknownMethod)
	require.Contains(t, err.Error(), "test.missing")
}

func TestHostModuleArguments(t *testing.T) {
	m := NewHostModule(New(withLoader(newFakeLoader(nil))))
	require.Equal(t, HostModuleName, m.Name())
	require.Equal(t, []string{RunMethod}, m.Methods())

	_, err := m.Call(RunMethod)
	require.ErrorIs(t, err, ErrInvalidArguments)

	_, err = m.Call(RunMethod, "a.lib", "b.lib")
	require.ErrorIs(t, err, ErrInvalidArguments)

	_, err = m.Call(RunMethod, 42)
	require.ErrorIs(t, err, ErrInvalidArguments)
	require.Contains(t, err.Error(), "not int")
}
