/*
   Copyright 2025 The Errwire Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package errwire

import (
	"runtime"
)

// Frame is a single resolved call site in a backtrace.
type Frame struct {
	PC       uintptr
	File     string
	Line     int
	Function string
}

// Stack is a backtrace snapshot, most recent call first.
type Stack []Frame

// defaultStackDepth bounds captured frames. Deep enough for real call
// chains, shallow enough that capture on an exceptional path stays cheap.
const defaultStackDepth = 64

// CaptureStack takes a snapshot at the caller's call site, for explicit
// attachment via WithBacktrace.
func CaptureStack() Stack {
	// +1 skips CaptureStack itself.
	return captureStack(1, defaultStackDepth)
}

// captureStack collects up to maxDepth frames, skipping the given number of
// frames above this function. Frames are resolved through CallersFrames so
// inlined calls expand correctly.
func captureStack(skip, maxDepth int) Stack {
	if maxDepth <= 0 {
		maxDepth = defaultStackDepth
	}
	pc := make([]uintptr, maxDepth)
	// +2 skips runtime.Callers and captureStack.
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pc[:n])
	out := make(Stack, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	return out
}
