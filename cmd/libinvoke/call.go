// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/libinvoke/go-libinvoke"
)

func newCallCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:     "call <method> [args...]",
		Short:   "Call a method of the host module with string arguments",
		Example: `  libinvoke call run ./plugin.so`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			setupLogging(cmd.ErrOrStderr(), cfg.LogLevel)

			module := libinvoke.NewHostModule(libinvoke.New(libinvoke.WithEntryKind(cfg.Entry)))

			hostArgs := make([]any, 0, len(args)-1)
			for _, arg := range args[1:] {
				hostArgs = append(hostArgs, arg)
			}

			out, err := module.Call(args[0], hostArgs...)
			switch {
			case errors.Is(err, libinvoke.ErrUnknownMethod), errors.Is(err, libinvoke.ErrInvalidArguments):
				return &ExitError{Code: exitUsage, Err: err}
			case err != nil:
				return &ExitError{Code: exitFailure, Err: err}
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newMethodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List the methods of the host module",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			module := libinvoke.NewHostModule(libinvoke.New())
			for _, name := range module.Methods() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s.%s\n", module.Name(), name)
			}
		},
	}
}
