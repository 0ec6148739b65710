// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package libinvoke

import (
	"fmt"
	"syscall"

	"github.com/libinvoke/go-libinvoke/internal/bindings"
)

// fakeLibrary describes what the fake loader finds at a path.
type fakeLibrary struct {
	// entry is the register content returned by the entry point, nil when the
	// library does not export it.
	entry    *uintptr
	closeErr error
}

// fakeLoader records every loader call, in order.
type fakeLoader struct {
	libraries map[string]fakeLibrary
	opened    map[bindings.Handle]string
	next      bindings.Handle
	calls     []string
}

const fakeEntryAddr uintptr = 0x1000

func newFakeLoader(libraries map[string]fakeLibrary) *fakeLoader {
	return &fakeLoader{
		libraries: libraries,
		opened:    make(map[bindings.Handle]string),
		next:      1,
	}
}

func returning(v uintptr) *uintptr {
	return &v
}

func (l *fakeLoader) Open(path string) (bindings.Handle, error) {
	l.calls = append(l.calls, "open "+path)
	if _, ok := l.libraries[path]; !ok {
		// ERROR_MOD_NOT_FOUND
		return 0, fmt.Errorf("LoadLibrary %q: %w", path, syscall.Errno(126))
	}
	handle := l.next
	l.next++
	l.opened[handle] = path
	return handle, nil
}

func (l *fakeLoader) Lookup(handle bindings.Handle, name string) (uintptr, error) {
	path := l.opened[handle]
	l.calls = append(l.calls, "lookup "+path+" "+name)
	if l.libraries[path].entry == nil || name != EntryPoint {
		// ERROR_PROC_NOT_FOUND
		return 0, fmt.Errorf("GetProcAddress %q: %w", name, syscall.Errno(127))
	}
	return fakeEntryAddr + uintptr(handle), nil
}

func (l *fakeLoader) Call(fn uintptr) uintptr {
	path := l.opened[bindings.Handle(fn-fakeEntryAddr)]
	l.calls = append(l.calls, "call "+path)
	return *l.libraries[path].entry
}

func (l *fakeLoader) Close(handle bindings.Handle) error {
	path := l.opened[handle]
	l.calls = append(l.calls, "close "+path)
	if err := l.libraries[path].closeErr; err != nil {
		return err
	}
	delete(l.opened, handle)
	return nil
}

// loaded returns the paths still loaded.
func (l *fakeLoader) loaded() []string {
	var paths []string
	for _, path := range l.opened {
		paths = append(paths, path)
	}
	return paths
}
