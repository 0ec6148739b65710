// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

//go:build libinvoke.disabled

package support

import (
	"testing"

	"github.com/libinvoke/go-libinvoke/liberrors"
	"github.com/stretchr/testify/require"
)

func TestManuallyDisabled(t *testing.T) {
	require.ErrorIs(t, ManuallyDisabledError(), liberrors.ErrManuallyDisabled)
}
