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
	"log/slog"
	"sync"
	"sync/atomic"

	"errwire.dev/errwire/telemetry"
)

// state carries the mutable cells of a logical record: two independent
// dirty flags and the backtrace slot. It is shared across the copies a
// builder chain produces, which is what makes dispatch idempotent over the
// whole chain. All flag traffic is lock-free.
type state struct {
	// counterDirty gates the (code, kind) counter increment.
	counterDirty atomic.Bool

	// eventDirty gates the structured event. Independent from counterDirty
	// because an uninterested subscriber must not consume it.
	eventDirty atomic.Bool

	// btOnce guards lazy capture; explicit holds an attached snapshot,
	// which always wins over a captured one.
	btOnce   sync.Once
	explicit Stack
	captured Stack
}

// newState returns a state with both flags armed, so the construction
// itself counts as the first meaningful mutation.
func newState() *state {
	s := &state{}
	s.counterDirty.Store(true)
	s.eventDirty.Store(true)
	return s
}

// arm re-marks both flags dirty. Every externally observable mutation goes
// through here so dispatch reflects the final state exactly once.
func (s *state) arm() {
	s.counterDirty.Store(true)
	s.eventDirty.Store(true)
}

func (s *state) backtrace() Stack {
	if s.explicit != nil {
		return s.explicit
	}
	return s.captured
}

// eventLevel is the severity every record event carries. Error records are,
// by definition, errors.
const eventLevel = slog.LevelError

// Dispatch emits pending telemetry for the record. Constructors and every
// mutating builder method call it on exit; boundaries may call it again
// freely. The flags are swapped atomically, so back-to-back calls without
// an intervening mutation are no-ops.
func (e *Error) Dispatch() {
	if e == nil || e.state == nil {
		return
	}
	if e.state.counterDirty.CompareAndSwap(true, false) {
		e.captureBacktrace()
		telemetry.Counter().Inc(string(e.Code), e.Kind.String())
	}
	e.dispatchEvent()
}

// dispatchEvent emits the structured event if the tracing flag is armed and
// a subscriber is interested. On a no-interest answer the flag is NOT
// consumed: the sink's interest cache is invalidated and interest rechecked
// once, to tolerate subscribers that register after process start; if still
// nobody listens, the flag stays armed for a later Dispatch.
func (e *Error) dispatchEvent() {
	st := e.state
	if !st.eventDirty.Load() {
		return
	}
	sink := telemetry.Events()
	if !sink.Enabled(eventLevel) {
		sink.InvalidateInterest()
		if !sink.Enabled(eventLevel) {
			return
		}
	}
	if st.eventDirty.CompareAndSwap(true, false) {
		sink.Emit(eventLevel, e.Error(), e.eventAttrs()...)
	}
}

// eventAttrs builds the event payload: identity, then metadata with
// redaction applied. Telemetry pipelines are semi-trusted, so fields follow
// the same policy as staging output: Redact-flagged values never appear,
// Hash/Last4 appear transformed.
func (e *Error) eventAttrs() []slog.Attr {
	attrs := make([]slog.Attr, 0, 2+e.Meta.Len())
	attrs = append(attrs,
		slog.String("code", string(e.Code)),
		slog.String("kind", e.Kind.String()),
	)
	for entry := range e.Meta.AllWithRedaction() {
		if s, ok := entry.Redaction.Apply(entry.Value); ok {
			attrs = append(attrs, slog.String(entry.Name, s))
		}
	}
	return attrs
}

// captureBacktrace fills the record's backtrace slot at most once. An
// explicitly attached snapshot always wins; otherwise capture happens only
// when the ERRWIRE_BACKTRACE toggle is on.
func (e *Error) captureBacktrace() {
	st := e.state
	if st.explicit != nil {
		return
	}
	st.btOnce.Do(func() {
		if telemetry.BacktraceEnabled() {
			// Skip captureStack, this closure, Do, captureBacktrace and
			// Dispatch so the top frame is the construction or mutation
			// call site.
			st.captured = captureStack(4, defaultStackDepth)
		}
	})
}
