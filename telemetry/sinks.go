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

package telemetry

import (
	"log/slog"
	"sync/atomic"
)

// CounterSink receives one increment per meaningful error-record state,
// keyed by (code, kind). Implementations must be safe for concurrent use
// and must not block: Inc sits on the error hot path.
type CounterSink interface {
	Inc(code, kind string)
}

// EventSink receives one structured event per meaningful error-record
// state. Enabled is the "is anyone listening" query; the dispatcher uses it
// to decide whether emitting now would be wasted, and InvalidateInterest to
// drop any cached answer when a no-interest verdict may be stale (for
// example, a subscriber that registered after process start).
type EventSink interface {
	Enabled(level slog.Level) bool
	InvalidateInterest()
	Emit(level slog.Level, msg string, attrs ...slog.Attr)
}

// nopCounter and nopEvents are the defaults until the host application
// installs real sinks. A nop event sink reports no interest, which leaves
// tracing flags armed; that is the correct behavior for "nobody listening
// yet".
type nopCounter struct{}

func (nopCounter) Inc(string, string) {}

type nopEvents struct{}

func (nopEvents) Enabled(slog.Level) bool               { return false }
func (nopEvents) InvalidateInterest()                   {}
func (nopEvents) Emit(slog.Level, string, ...slog.Attr) {}

// counterBox and eventBox give atomic.Value a single consistent concrete
// type to store, regardless of the sink implementation behind the interface.
type counterBox struct{ s CounterSink }

type eventBox struct{ s EventSink }

var (
	counterSink atomic.Value // counterBox
	eventSink   atomic.Value // eventBox
)

func init() {
	counterSink.Store(counterBox{nopCounter{}})
	eventSink.Store(eventBox{nopEvents{}})
}

// SetCounter installs the process counter sink. Typically called once at
// startup; a nil sink restores the no-op default.
func SetCounter(s CounterSink) {
	if s == nil {
		s = nopCounter{}
	}
	counterSink.Store(counterBox{s})
}

// Counter returns the installed counter sink.
func Counter() CounterSink {
	return counterSink.Load().(counterBox).s
}

// SetEvents installs the process event sink. Typically called once at
// startup; a nil sink restores the no-op default.
func SetEvents(s EventSink) {
	if s == nil {
		s = nopEvents{}
	}
	eventSink.Store(eventBox{s})
}

// Events returns the installed event sink.
func Events() EventSink {
	return eventSink.Load().(eventBox).s
}
