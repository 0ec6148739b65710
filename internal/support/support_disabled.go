// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Manually set libinvoke.disabled build tag
//go:build libinvoke.disabled

package support

import "github.com/libinvoke/go-libinvoke/liberrors"

func init() {
	manuallyDisabledErr = liberrors.ErrManuallyDisabled
}
