// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/google/go-cmp/cmp"
)

func TestEventKindString(t *testing.T) {
	tests := []struct {
		k    EventKind
		want string
	}{
		{EventBegin, "Begin"},
		{EventEnd, "End"},
		{EventBeginSample, "BeginSample"},
		{EventEndSample, "EndSample"},
		{EventClear, "Clear"},
		{EventDraw, "Draw"},
		{EventKind(200), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("EventKind(%d).String() = %q, want %q", tt.k, got, tt.want)
		}
	}
}

func TestTraceBackendNesting(t *testing.T) {
	b := NewTraceBackend()
	if err := b.Begin(NewPixmapTarget(1, 1)); err != nil {
		t.Fatal(err)
	}
	b.Clear(true, true, gputypes.Color{})
	b.BeginSample("Outer")
	b.BeginSample("Inner")
	b.DrawRendererList(nil)
	b.EndSample("Inner")
	b.DrawRendererList(nil)
	b.EndSample("Outer")
	if err := b.End(); err != nil {
		t.Fatal(err)
	}

	draws := b.Draws()
	want := []Event{
		{Kind: EventDraw, Name: "Inner", Objects: []uint32{}},
		{Kind: EventDraw, Name: "Outer", Objects: []uint32{}},
	}
	if diff := cmp.Diff(want, draws); diff != "" {
		t.Errorf("Draws() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Outer", "Inner"}, b.Samples()); diff != "" {
		t.Errorf("Samples() mismatch (-want +got):\n%s", diff)
	}
	if b.Events()[1].Kind != EventClear || b.Events()[1].Name != "" {
		t.Errorf("clear event = %+v, want unnamed Clear", b.Events()[1])
	}

	b.Reset()
	if len(b.Events()) != 0 {
		t.Errorf("Events() after Reset() = %d, want 0", len(b.Events()))
	}
}
