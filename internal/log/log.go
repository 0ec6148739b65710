// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package log

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

// EnvLevel names the environment variable holding the initial log level.
const EnvLevel = "LIBINVOKE_LOG_LEVEL"

// Level is the severity of a diagnostic message.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarning
	LevelError
	LevelOff
)

// LevelNamed returns the log level corresponding to the given name, or LevelOff
// if the name corresponds to no known log level.
func LevelNamed(name string) Level {
	switch strings.ToLower(name) {
	case "trace":
		return LevelTrace
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarning
	case "error":
		return LevelError
	case "off":
		return LevelOff
	default:
		return LevelOff
	}
}

func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelOff:
		return "OFF"
	default:
		return fmt.Sprintf("0x%X", uintptr(l))
	}
}

// Sink receives every message at or above the current level. Function, file
// and line locate the caller of the logging function.
type Sink func(level Level, function, file string, line uint, message string)

var (
	mu    sync.RWMutex
	level      = LevelWarning
	sink  Sink = logMessage
)

func init() {
	if name, ok := os.LookupEnv(EnvLevel); ok {
		level = LevelNamed(name)
	}
}

// SetLevel sets the minimum level of emitted messages.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
}

// CurrentLevel returns the minimum level of emitted messages.
func CurrentLevel() Level {
	mu.RLock()
	defer mu.RUnlock()
	return level
}

// SetSink replaces the message sink. A nil sink restores the default one,
// which writes through the standard library logger.
func SetSink(s Sink) {
	mu.Lock()
	defer mu.Unlock()
	if s == nil {
		s = logMessage
	}
	sink = s
}

func Tracef(format string, args ...any) { emit(LevelTrace, format, args...) }
func Debugf(format string, args ...any) { emit(LevelDebug, format, args...) }
func Infof(format string, args ...any)  { emit(LevelInfo, format, args...) }
func Warnf(format string, args ...any)  { emit(LevelWarning, format, args...) }
func Errorf(format string, args ...any) { emit(LevelError, format, args...) }

// Enabled reports whether messages at l are currently emitted.
func Enabled(l Level) bool {
	current := CurrentLevel()
	return current != LevelOff && l >= current
}

func emit(l Level, format string, args ...any) {
	if !Enabled(l) {
		return
	}

	mu.RLock()
	s := sink
	mu.RUnlock()

	// skip emit and the exported wrapper
	function, file, line := "?", "?", uint(0)
	if pc, f, n, ok := runtime.Caller(2); ok {
		file, line = filepath.Base(f), uint(n)
		if fn := runtime.FuncForPC(pc); fn != nil {
			function = fn.Name()
		}
	}

	s(l, function, file, line, fmt.Sprintf(format, args...))
}

func logMessage(level Level, function, file string, line uint, message string) {
	log.Printf("[%-5s] libinvoke @ %s:%d (%s): %s\n", level, file, line, function, message)
}
