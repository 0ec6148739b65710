// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package main

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/libinvoke/go-libinvoke"
)

// setupLogging routes the library diagnostics to a charm logger writing to w.
// Filtering is left to the library, which also knows the trace level.
func setupLogging(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "libinvoke",
		Level:  log.DebugLevel,
	})

	libinvoke.SetLogOutput(level, func(level, message string) {
		switch level {
		case "ERROR":
			logger.Error(message)
		case "WARN":
			logger.Warn(message)
		case "INFO":
			logger.Info(message)
		default:
			logger.Debug(message, "level", level)
		}
	})
	return logger
}
