// Package pipeline defines how passes are scheduled within a frame.
//
// A Renderer owns a set of Features. Once per pipeline build it calls
// Feature.Create; once per frame it asks every feature to enqueue its
// passes, orders all passes by PassEvent and executes them against a
// Context.
package pipeline

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// PassEvent is the insertion point of a pass within a frame.
// Passes execute in ascending event order.
type PassEvent int

// Insertion points, in execution order.
const (
	BeforeRendering               PassEvent = 0
	BeforeRenderingShadows        PassEvent = 50
	AfterRenderingShadows         PassEvent = 100
	BeforeRenderingPrePasses      PassEvent = 150
	AfterRenderingPrePasses       PassEvent = 200
	BeforeRenderingGbuffer        PassEvent = 210
	AfterRenderingGbuffer         PassEvent = 220
	BeforeRenderingDeferredLights PassEvent = 230
	AfterRenderingDeferredLights  PassEvent = 240
	BeforeRenderingOpaques        PassEvent = 250
	AfterRenderingOpaques         PassEvent = 300
	BeforeRenderingSkybox         PassEvent = 350
	AfterRenderingSkybox          PassEvent = 400
	BeforeRenderingTransparents   PassEvent = 450
	AfterRenderingTransparents    PassEvent = 500
	BeforeRenderingPostProcessing PassEvent = 550
	AfterRenderingPostProcessing  PassEvent = 600
	AfterRendering                PassEvent = 1000
)

// MaxPassEventOffset is the largest "+N" offset ParsePassEvent accepts.
// Events further from a named event are written as "PassEvent(N)".
const MaxPassEventOffset = 1 << 16

var passEventNames = map[PassEvent]string{
	BeforeRendering:               "BeforeRendering",
	BeforeRenderingShadows:        "BeforeRenderingShadows",
	AfterRenderingShadows:         "AfterRenderingShadows",
	BeforeRenderingPrePasses:      "BeforeRenderingPrePasses",
	AfterRenderingPrePasses:       "AfterRenderingPrePasses",
	BeforeRenderingGbuffer:        "BeforeRenderingGbuffer",
	AfterRenderingGbuffer:         "AfterRenderingGbuffer",
	BeforeRenderingDeferredLights: "BeforeRenderingDeferredLights",
	AfterRenderingDeferredLights:  "AfterRenderingDeferredLights",
	BeforeRenderingOpaques:        "BeforeRenderingOpaques",
	AfterRenderingOpaques:         "AfterRenderingOpaques",
	BeforeRenderingSkybox:         "BeforeRenderingSkybox",
	AfterRenderingSkybox:          "AfterRenderingSkybox",
	BeforeRenderingTransparents:   "BeforeRenderingTransparents",
	AfterRenderingTransparents:    "AfterRenderingTransparents",
	BeforeRenderingPostProcessing: "BeforeRenderingPostProcessing",
	AfterRenderingPostProcessing:  "AfterRenderingPostProcessing",
	AfterRendering:                "AfterRendering",
}

// PassEvents returns every named insertion point in execution order.
func PassEvents() []PassEvent {
	events := make([]PassEvent, 0, len(passEventNames))
	for e := range passEventNames {
		events = append(events, e)
	}
	slices.Sort(events)
	return events
}

// String returns the event's name, or its ordinal with an offset from
// the closest preceding named event, e.g. "BeforeRenderingTransparents+5".
// Events before BeforeRendering or more than MaxPassEventOffset past a
// named event are written as "PassEvent(N)".
func (e PassEvent) String() string {
	if name, ok := passEventNames[e]; ok {
		return name
	}
	base := BeforeRendering
	for _, ev := range PassEvents() {
		if ev > e {
			break
		}
		base = ev
	}
	if e < base || e-base > MaxPassEventOffset {
		return fmt.Sprintf("PassEvent(%d)", int(e))
	}
	return fmt.Sprintf("%s+%d", passEventNames[base], int(e-base))
}

// ParsePassEvent parses an event name. Matching is case-insensitive.
// An optional "+N" suffix, 0 <= N <= MaxPassEventOffset, adds an offset
// to the named event. The "PassEvent(N)" form written by String is
// accepted for any int N.
func ParsePassEvent(s string) (PassEvent, error) {
	name, offset := strings.TrimSpace(s), 0
	const prefix = "PassEvent("
	if len(name) > len(prefix) && strings.EqualFold(name[:len(prefix)], prefix) && strings.HasSuffix(name, ")") {
		n, err := strconv.Atoi(name[len(prefix) : len(name)-1])
		if err != nil {
			return 0, fmt.Errorf("pipeline: invalid pass event ordinal in %q", s)
		}
		return PassEvent(n), nil
	}
	if i := strings.IndexByte(name, '+'); i >= 0 {
		n, err := strconv.Atoi(strings.TrimSpace(name[i+1:]))
		if err != nil || n < 0 || n > MaxPassEventOffset {
			return 0, fmt.Errorf("pipeline: invalid pass event offset in %q", s)
		}
		offset = n
		name = strings.TrimSpace(name[:i])
	}
	for e, n := range passEventNames {
		if strings.EqualFold(n, name) {
			return e + PassEvent(offset), nil
		}
	}
	return 0, fmt.Errorf("pipeline: unknown pass event %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (e PassEvent) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *PassEvent) UnmarshalText(text []byte) error {
	ev, err := ParsePassEvent(string(text))
	if err != nil {
		return err
	}
	*e = ev
	return nil
}
