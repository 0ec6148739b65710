// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is the semantic version (set via -ldflags).
var Version = "dev"

func newRootCmd(v *viper.Viper, stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "libinvoke",
		Short: "Load a dynamic library and call its load export",
		Long: `libinvoke loads a dynamic library into the current process, calls its
zero-argument "load" export once, unloads the library and prints the flag
returned by the export.

Every flag can also be set with a LIBINVOKE_ environment variable, for
instance LIBINVOKE_LOG_LEVEL=debug.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().String(keyLogLevel, "warn", "diagnostics level (trace, debug, info, warn, error, off)")
	root.PersistentFlags().String(keyEntry, "bool", "signature of the load export (bool, void)")
	// binding flags that were just defined cannot fail
	_ = bindFlags(v, root.PersistentFlags(), keyLogLevel, keyEntry)

	root.AddCommand(
		newRunCmd(v),
		newCallCmd(v),
		newMethodsCmd(),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the libinvoke version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
		},
	}
}

// execute runs the command line and returns the process exit code.
func execute(args []string) int {
	return executeWith(newViper(), args, os.Stdout, os.Stderr)
}

func executeWith(v *viper.Viper, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(v, stdout, stderr)
	root.SetArgs(args)

	err := root.Execute()
	if err == nil {
		return exitOK
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			fmt.Fprintln(stderr, "Error:", exitErr.Err)
		}
		return exitErr.Code
	}
	fmt.Fprintln(stderr, "Error:", err)
	return exitUsage
}
