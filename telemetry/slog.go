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
	"context"
	"log/slog"
	"sync/atomic"
)

// interest cache states for SlogSink.
const (
	interestUnknown int32 = iota
	interestYes
	interestNo
)

// SlogSink adapts a slog.Logger into an EventSink.
//
// The handler's Enabled answer is cached in a lock-free cell because the
// dispatcher consults it on every armed emission. A cached "no" can go
// stale when a handler re-levels at runtime; InvalidateInterest drops the
// cache so the dispatcher's single recheck observes the live answer.
type SlogSink struct {
	l        *slog.Logger
	interest atomic.Int32
}

var _ EventSink = (*SlogSink)(nil)

// NewSlogSink wraps l. A nil logger falls back to slog.Default().
func NewSlogSink(l *slog.Logger) *SlogSink {
	if l == nil {
		l = slog.Default()
	}
	return &SlogSink{l: l}
}

// Enabled implements EventSink, caching the handler's answer.
func (s *SlogSink) Enabled(level slog.Level) bool {
	switch s.interest.Load() {
	case interestYes:
		return true
	case interestNo:
		return false
	}
	on := s.l.Enabled(context.Background(), level)
	if on {
		s.interest.Store(interestYes)
	} else {
		s.interest.Store(interestNo)
	}
	return on
}

// InvalidateInterest implements EventSink.
func (s *SlogSink) InvalidateInterest() {
	s.interest.Store(interestUnknown)
}

// Emit implements EventSink.
func (s *SlogSink) Emit(level slog.Level, msg string, attrs ...slog.Attr) {
	s.l.LogAttrs(context.Background(), level, msg, attrs...)
}
