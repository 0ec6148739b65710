// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/libinvoke/go-libinvoke"
)

const envPrefix = "LIBINVOKE"

// Config keys, also the flag names.
const (
	keyLogLevel = "log-level"
	keyEntry    = "entry"
	keyJSON     = "json"
)

type config struct {
	LogLevel string
	Entry    libinvoke.EntryKind
	JSON     bool
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyLogLevel, "warn")
	v.SetDefault(keyEntry, libinvoke.EntryBool.String())
	v.SetDefault(keyJSON, false)
	return v
}

// bindFlags lets flags take precedence over LIBINVOKE_* variables.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys ...string) error {
	for _, key := range keys {
		if err := v.BindPFlag(key, flags.Lookup(key)); err != nil {
			return fmt.Errorf("binding flag %q: %w", key, err)
		}
	}
	return nil
}

func loadConfig(v *viper.Viper) (config, error) {
	cfg := config{
		LogLevel: v.GetString(keyLogLevel),
		JSON:     v.GetBool(keyJSON),
	}

	entry, ok := libinvoke.EntryKindNamed(v.GetString(keyEntry))
	if !ok {
		return cfg, fmt.Errorf("invalid entry kind %q: expected %q or %q", v.GetString(keyEntry), libinvoke.EntryBool, libinvoke.EntryVoid)
	}
	cfg.Entry = entry

	switch strings.ToLower(cfg.LogLevel) {
	case "trace", "debug", "info", "warn", "warning", "error", "off":
	default:
		return cfg, fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}
	return cfg, nil
}
