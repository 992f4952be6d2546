// Package cull defines the per-frame visibility snapshot a host hands to
// render passes.
//
// Culling itself is performed by the host; this package only describes its
// results. Every type here is read-only from the point of view of a pass.
package cull

import (
	"image"
	"image/color"
	"slices"

	"github.com/chewxy/math32"
)

// Vec3 is a 3-component float32 vector in world space.
type Vec3 struct {
	X, Y, Z float32
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Len returns the length of v.
func (v Vec3) Len() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length.
// The zero vector is returned unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// Material describes the shader passes available for an object's surface.
type Material struct {
	Name string

	// Passes lists the shader tag of every pass the material's shader
	// provides, e.g. "UniversalForward" or "Outline".
	Passes []string

	// BaseColor is the flat colour debug backends fill the object with.
	BaseColor color.RGBA

	// OutlineColor and OutlineWidth parameterize the outline pass.
	OutlineColor color.RGBA
	OutlineWidth int
}

// HasPass reports whether the material provides a pass with the given tag.
func (m *Material) HasPass(tag string) bool {
	if m == nil {
		return false
	}
	return slices.Contains(m.Passes, tag)
}

// Object is a renderer that survived culling.
type Object struct {
	ID   uint32
	Name string

	Position Vec3

	// Bounds is the object's screen-space bounding rectangle in target pixels.
	Bounds image.Rectangle

	// Layer is the object's layer index (0-31) tested against a layer mask.
	Layer uint8

	// RenderQueue orders objects across queues; see rendererlist constants.
	RenderQueue int

	// MotionVectors is set when the object renders per-object motion vectors
	// this frame.
	MotionVectors bool

	Materials []*Material
}

// Camera holds the view state needed to sort draw items.
type Camera struct {
	Name     string
	Position Vec3

	// Forward is the view direction. It need not be normalized.
	Forward Vec3

	Width, Height int
}

// Depth returns the view-space depth of obj along the camera's forward axis.
func (c *Camera) Depth(obj *Object) float32 {
	return obj.Position.Sub(c.Position).Dot(c.Forward.Normalize())
}

// Results is the set of objects visible from a camera in one frame.
// A nil *Results is treated as empty.
type Results struct {
	Visible []*Object
}

// NewResults creates a result set from the given objects.
func NewResults(objects ...*Object) *Results {
	return &Results{Visible: objects}
}

// Len returns the number of visible objects.
func (r *Results) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Visible)
}

// Objects returns the visible objects. The slice must not be modified.
func (r *Results) Objects() []*Object {
	if r == nil {
		return nil
	}
	return r.Visible
}
