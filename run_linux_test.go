// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

//go:build linux && (amd64 || arm64) && !libinvoke.disabled

package libinvoke

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/libinvoke/go-libinvoke/liberrors"
)

func TestRunSystemLoader(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		_, err := Run("/nonexistent/missing.so")
		require.ErrorIs(t, err, liberrors.KindLoad)
	})

	t.Run("no-entry-point", func(t *testing.T) {
		// libc loads fine but has no `load` export
		_, err := Run("libc.so.6")
		require.ErrorIs(t, err, liberrors.KindSymbol)
		require.NotErrorIs(t, err, liberrors.KindUnload)
	})

	t.Run("too-long", func(t *testing.T) {
		_, err := Run(strings.Repeat("a", unix.PathMax))
		require.ErrorIs(t, err, liberrors.KindInvalidPath)
		require.ErrorIs(t, err, liberrors.ErrPathTooLong)
	})
}
