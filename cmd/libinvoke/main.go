// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Command libinvoke stands in for the embedding host: it loads a dynamic
// library, calls its `load` export and reports the result.
package main

import "os"

func main() {
	os.Exit(execute(os.Args[1:]))
}
