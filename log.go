// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package libinvoke

import "github.com/libinvoke/go-libinvoke/internal/log"

// SetLogOutput routes the package diagnostics to fn, starting at minLevel
// (one of "trace", "debug", "info", "warn", "error" or "off"). Level names
// given to fn are upper case. A nil fn restores the default output through
// the standard library logger.
func SetLogOutput(minLevel string, fn func(level, message string)) {
	log.SetLevel(log.LevelNamed(minLevel))
	if fn == nil {
		log.SetSink(nil)
		return
	}
	log.SetSink(func(level log.Level, _, _ string, _ uint, message string) {
		fn(level.String(), message)
	})
}
