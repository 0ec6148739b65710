// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package main

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/libinvoke/go-libinvoke"
	"github.com/libinvoke/go-libinvoke/liberrors"
)

// report is the --json output of the run command.
type report struct {
	Path        string `json:"path"`
	Entry       string `json:"entry"`
	OK          bool   `json:"ok"`
	Value       bool   `json:"value"`
	Kind        string `json:"kind,omitempty"`
	Code        uint32 `json:"code,omitempty"`
	Error       string `json:"error,omitempty"`
	UnloadError string `json:"unload_error,omitempty"`
}

func newReport(path string, entry libinvoke.EntryKind, res libinvoke.Result, err error) report {
	r := report{
		Path:  path,
		Entry: entry.String(),
		OK:    err == nil,
		Value: res.Value,
	}
	if err != nil {
		r.Error = err.Error()
		if kind, ok := liberrors.KindOf(err); ok {
			r.Kind = kind.String()
		}
		r.Code = liberrors.OSCode(err)
	}
	if res.UnloadErr != nil {
		r.UnloadError = res.UnloadErr.Error()
	}
	return r
}

func (r report) writeJSON(w io.Writer) error {
	return jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w).Encode(r)
}

// writeText prints what the host would receive: the flag, or the fixed 0
// success code for a void entry point.
func (r report) writeText(w io.Writer) error {
	if !r.OK {
		return nil
	}
	var err error
	if r.Entry == libinvoke.EntryVoid.String() {
		_, err = fmt.Fprintln(w, 0)
	} else {
		_, err = fmt.Fprintln(w, r.Value)
	}
	return err
}

func newRunCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <library>",
		Short: "Load the library, call its load export and unload it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			setupLogging(cmd.ErrOrStderr(), cfg.LogLevel)

			path := args[0]
			res, runErr := libinvoke.New(libinvoke.WithEntryKind(cfg.Entry)).Run(path)

			r := newReport(path, cfg.Entry, res, runErr)
			write := r.writeText
			if cfg.JSON {
				write = r.writeJSON
			}
			if err := write(cmd.OutOrStdout()); err != nil {
				return &ExitError{Code: exitFailure, Err: err}
			}

			if runErr != nil {
				return &ExitError{Code: exitFailure, Err: runErr}
			}
			return nil
		},
	}

	cmd.Flags().Bool(keyJSON, false, "print a JSON report instead of the bare result")
	_ = bindFlags(v, cmd.Flags(), keyJSON)
	return cmd
}
