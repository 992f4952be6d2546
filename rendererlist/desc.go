// Package rendererlist describes and materializes filtered, sorted lists of
// draw items.
//
// A Desc states the filter policy (shader tags, render queue range, layer
// mask, motion-vector exclusion, sort order). Build applies it to a culling
// result and produces a List. Passes only construct descriptors; the host
// render context owns materialization.
package rendererlist

import (
	"github.com/gogpu/toon/cull"
)

// ShaderTagID identifies a shader pass by its tag, e.g. "Outline".
type ShaderTagID string

// Render queue values for common object categories.
const (
	RenderQueueBackground  = 1000
	RenderQueueGeometry    = 2000
	RenderQueueAlphaTest   = 2450
	RenderQueueTransparent = 3000
	RenderQueueOverlay     = 4000
)

// QueueRange is an inclusive range of render queue values.
type QueueRange struct {
	Lower, Upper int
}

// Predefined queue ranges.
var (
	QueueAll         = QueueRange{Lower: 0, Upper: 5000}
	QueueOpaque      = QueueRange{Lower: 0, Upper: 2500}
	QueueTransparent = QueueRange{Lower: 2501, Upper: 5000}
)

// Contains reports whether queue lies within the range.
func (r QueueRange) Contains(queue int) bool {
	return queue >= r.Lower && queue <= r.Upper
}

// SortingCriteria selects how a List is ordered.
type SortingCriteria uint8

const (
	// SortNone keeps the order of the culling results.
	SortNone SortingCriteria = iota

	// SortCommonOpaque orders by render queue, then front to back.
	SortCommonOpaque

	// SortCommonTransparent orders by render queue, then back to front.
	SortCommonTransparent
)

// String returns a human-readable name for the criteria.
func (s SortingCriteria) String() string {
	switch s {
	case SortNone:
		return "None"
	case SortCommonOpaque:
		return "CommonOpaque"
	case SortCommonTransparent:
		return "CommonTransparent"
	default:
		return "Unknown"
	}
}

// AllLayers is a layer mask that accepts every layer.
const AllLayers = ^uint32(0)

// Desc describes a renderer list to be materialized by the host.
type Desc struct {
	// Tags selects materials providing a pass with any of these tags.
	Tags []ShaderTagID

	Cull   *cull.Results
	Camera *cull.Camera

	QueueRange QueueRange
	Sorting    SortingCriteria

	// LayerMask is tested against 1<<Object.Layer.
	LayerMask uint32

	// ExcludeMotionVectors drops objects that render per-object motion
	// vectors this frame.
	ExcludeMotionVectors bool
}

// NewDesc creates a descriptor for a single shader tag with default filter
// settings: all queues, all layers, common opaque sorting.
func NewDesc(tag ShaderTagID, results *cull.Results, camera *cull.Camera) *Desc {
	return &Desc{
		Tags:       []ShaderTagID{tag},
		Cull:       results,
		Camera:     camera,
		QueueRange: QueueAll,
		Sorting:    SortCommonOpaque,
		LayerMask:  AllLayers,
	}
}

// Valid reports whether the descriptor has the culling results and camera
// needed to build a list.
func (d *Desc) Valid() bool {
	return d != nil && d.Cull != nil && d.Camera != nil
}
