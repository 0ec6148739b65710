// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package liberrors

import (
	"errors"
	"fmt"
	"syscall"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestKindIsMatchedByErrorsIs(t *testing.T) {
	err := fmt.Errorf("running: %w", New(KindSymbol, "noload.lib", errors.New("not found")))

	require.ErrorIs(t, err, KindSymbol)
	require.NotErrorIs(t, err, KindLoad)

	kind, ok := KindOf(err)
	require.True(t, ok)
	require.Equal(t, KindSymbol, kind)
}

func TestKindOfForeignError(t *testing.T) {
	_, ok := KindOf(errors.New("boom"))
	require.False(t, ok)
}

func TestOSCodeThroughWrapping(t *testing.T) {
	wrapped := pkgerrors.Wrap(syscall.Errno(126), "LoadLibrary")
	require.Equal(t, uint32(126), OSCode(wrapped))
	require.Zero(t, OSCode(errors.New("dlopen: no such file")))

	e := New(KindLoad, "missing.lib", wrapped)
	require.Equal(t, uint32(126), e.Code)
	require.Contains(t, e.Error(), "(code 126)")
	require.Contains(t, e.Error(), `"missing.lib"`)
}

func TestErrorUnwrapsCause(t *testing.T) {
	e := New(KindInvalidPath, "", ErrEmptyPath)
	require.ErrorIs(t, e, ErrEmptyPath)
	require.ErrorIs(t, e, KindInvalidPath)
}

func TestKindStrings(t *testing.T) {
	for kind, want := range map[Kind]string{
		KindInvalidPath:       "invalid library path",
		KindLoad:              "library load failed",
		KindSymbol:            "symbol resolution failed",
		KindUnload:            "library unload failed",
		KindUnsupportedTarget: "unsupported target",
		Kind(42):              "unknown failure kind 42",
	} {
		require.Equal(t, want, kind.String())
	}
}
