// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package support

// Errors explaining why dynamic libraries cannot be invoked on the current
// target at runtime. Populated by build-constrained files.
var targetSupportErrors []error

// Not nil if the build tag `libinvoke.disabled` is set
var manuallyDisabledErr error

// TargetSupportErrors returns the errors explaining why dynamic libraries
// cannot be invoked on the current target.
func TargetSupportErrors() []error {
	return targetSupportErrors
}

// ManuallyDisabledError returns an error if the build tag `libinvoke.disabled` is set
func ManuallyDisabledError() error {
	return manuallyDisabledErr
}
