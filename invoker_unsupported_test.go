// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

//go:build (!linux && !darwin && !windows) || (!amd64 && !arm64) || libinvoke.disabled

package libinvoke

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/libinvoke/go-libinvoke/liberrors"
)

func TestRunUnsupportedTarget(t *testing.T) {
	ok, err := Usable()
	require.False(t, ok)
	require.Error(t, err)

	loader := newFakeLoader(map[string]fakeLibrary{"valid.lib": {entry: returning(1)}})
	_, err = New(withLoader(loader)).Run("valid.lib")
	require.ErrorIs(t, err, liberrors.KindUnsupportedTarget)
	require.Empty(t, loader.calls)
}
