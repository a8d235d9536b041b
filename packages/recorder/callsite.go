package recorder

import (
	"reflect"
	"runtime"
	"strings"
	"sync"
)

// CallSite is the source location an assertion was issued from.
type CallSite struct {
	File string
	Line int
}

// Caller returns the call site skip frames above the caller of Caller, or
// nil if the stack is not that deep.
func Caller(skip int) *CallSite {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return nil
	}
	return &CallSite{File: file, Line: line}
}

var (
	internalMu   sync.RWMutex
	internalPkgs = []string{reflect.TypeOf((*Recorder)(nil)).Elem().PkgPath()}
)

// MarkInternal registers a package whose frames ExternalCaller skips.
// Assertion facades call it for their own package path.
func MarkInternal(pkgPath string) {
	internalMu.Lock()
	defer internalMu.Unlock()
	internalPkgs = append(internalPkgs, pkgPath)
}

// ExternalCaller returns the first stack frame outside the packages marked
// internal, or nil if there is none. Frames from _test.go files always
// count as external.
func ExternalCaller() *CallSite {
	pcs := make([]uintptr, 64)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if frame.File != "" && !isInternal(frame) {
			return &CallSite{File: frame.File, Line: frame.Line}
		}
		if !more {
			return nil
		}
	}
}

func isInternal(frame runtime.Frame) bool {
	if strings.HasSuffix(frame.File, "_test.go") {
		return false
	}
	internalMu.RLock()
	defer internalMu.RUnlock()
	for _, pkg := range internalPkgs {
		if strings.HasPrefix(frame.Function, pkg+".") {
			return true
		}
	}
	return false
}
