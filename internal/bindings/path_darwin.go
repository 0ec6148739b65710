// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

//go:build darwin && (amd64 || arm64) && !libinvoke.disabled

package bindings

// MAXPATHLEN from <sys/param.h>, terminator included.
const maxPathLen = 1024
