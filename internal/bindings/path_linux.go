// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

//go:build linux && (amd64 || arm64) && !libinvoke.disabled

package bindings

import "golang.org/x/sys/unix"

// PATH_MAX, terminator included.
const maxPathLen = unix.PathMax
