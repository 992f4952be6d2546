// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/toon/rendererlist"
)

// EventKind identifies a traced backend call.
type EventKind uint8

// Traced backend calls.
const (
	EventBegin EventKind = iota
	EventEnd
	EventBeginSample
	EventEndSample
	EventClear
	EventDraw
)

var eventKindNames = [...]string{
	EventBegin:       "Begin",
	EventEnd:         "End",
	EventBeginSample: "BeginSample",
	EventEndSample:   "EndSample",
	EventClear:       "Clear",
	EventDraw:        "Draw",
}

// String returns the string representation of an EventKind.
func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return "Unknown"
}

// Event is one traced backend call.
type Event struct {
	Kind EventKind

	// Name is the sample name for sample events and the innermost open
	// sample for draw and clear events.
	Name string

	// Objects holds the object IDs drawn, in order, for draw events.
	Objects []uint32
}

// TraceBackend records every call it receives. It is used to observe pass
// ordering and to inspect submissions in tests and tools.
type TraceBackend struct {
	events []Event
	open   []string
}

// NewTraceBackend creates an empty trace backend.
func NewTraceBackend() *TraceBackend {
	return &TraceBackend{}
}

// Begin implements Backend.
func (b *TraceBackend) Begin(RenderTarget) error {
	b.open = b.open[:0]
	b.events = append(b.events, Event{Kind: EventBegin})
	return nil
}

// End implements Backend.
func (b *TraceBackend) End() error {
	b.events = append(b.events, Event{Kind: EventEnd})
	return nil
}

// BeginSample implements Backend.
func (b *TraceBackend) BeginSample(name string) {
	b.open = append(b.open, name)
	b.events = append(b.events, Event{Kind: EventBeginSample, Name: name})
}

// EndSample implements Backend.
func (b *TraceBackend) EndSample(name string) {
	if len(b.open) > 0 {
		b.open = b.open[:len(b.open)-1]
	}
	b.events = append(b.events, Event{Kind: EventEndSample, Name: name})
}

// Clear implements Backend.
func (b *TraceBackend) Clear(bool, bool, gputypes.Color) {
	b.events = append(b.events, Event{Kind: EventClear, Name: b.current()})
}

// DrawRendererList implements Backend.
func (b *TraceBackend) DrawRendererList(list *rendererlist.List) {
	ids := make([]uint32, 0, list.Len())
	for _, it := range list.Items() {
		ids = append(ids, it.Object.ID)
	}
	b.events = append(b.events, Event{Kind: EventDraw, Name: b.current(), Objects: ids})
}

func (b *TraceBackend) current() string {
	if len(b.open) == 0 {
		return ""
	}
	return b.open[len(b.open)-1]
}

// Events returns every traced call since creation or the last Reset.
func (b *TraceBackend) Events() []Event {
	return b.events
}

// Draws returns only the draw events.
func (b *TraceBackend) Draws() []Event {
	var out []Event
	for _, e := range b.events {
		if e.Kind == EventDraw {
			out = append(out, e)
		}
	}
	return out
}

// Samples returns the names of opened samples in order.
func (b *TraceBackend) Samples() []string {
	var out []string
	for _, e := range b.events {
		if e.Kind == EventBeginSample {
			out = append(out, e.Name)
		}
	}
	return out
}

// Reset discards all traced events.
func (b *TraceBackend) Reset() {
	b.events = b.events[:0]
	b.open = b.open[:0]
}

var _ Backend = (*TraceBackend)(nil)
