// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package libinvoke

import (
	"errors"

	"github.com/libinvoke/go-libinvoke/internal/support"
)

// Usable returns true if dynamic libraries can be invoked on the current
// target, false and an error otherwise.
//
// The following conditions are checked:
//   - The OS/Arch has a dynamic-loader binding
//   - The module was not built with the `libinvoke.disabled` go build tag
func Usable() (bool, error) {
	errs := make([]error, 0, len(support.TargetSupportErrors())+1)
	errs = append(errs, support.TargetSupportErrors()...)
	errs = append(errs, support.ManuallyDisabledError())
	err := errors.Join(errs...)
	return err == nil, err
}
