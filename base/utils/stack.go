package utils

import (
	"bytes"
	"fmt"
	"runtime"
)

// Stack returns a formatted stack trace of the calling goroutine, skipping
// the first `skip` frames.
func Stack(skip int) []byte {
	buf := new(bytes.Buffer)
	pcs := make([]uintptr, 32)
	n := runtime.Callers(skip+1, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		fmt.Fprintf(buf, "%s:%d (%s)\n", frame.File, frame.Line, frame.Function)
		if !more {
			break
		}
	}
	return buf.Bytes()
}
