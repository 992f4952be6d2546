// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"image"
	"image/color"
	"slices"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/draw"

	"github.com/gogpu/toon/rendererlist"
)

// DefaultOutlineColor is used for materials without an outline colour.
var DefaultOutlineColor = color.RGBA{A: 255}

// RasterBackend paints the screen-space bounds of drawn items into a
// *PixmapTarget. Items drawn with a tag in StrokeTags are painted as an
// outline rectangle in the material's outline colour and width; all other
// items are filled with the material's base colour. It is a debugging aid,
// not a shader.
type RasterBackend struct {
	// StrokeTags lists the shader tags painted as outlines.
	StrokeTags []rendererlist.ShaderTagID

	target *PixmapTarget
	draws  int
}

// NewRasterBackend creates a raster backend that strokes "Outline" items.
func NewRasterBackend() *RasterBackend {
	return &RasterBackend{StrokeTags: []rendererlist.ShaderTagID{"Outline"}}
}

// Begin implements Backend. The target must be a *PixmapTarget.
func (b *RasterBackend) Begin(target RenderTarget) error {
	pt, ok := target.(*PixmapTarget)
	if !ok {
		return fmt.Errorf("render: raster backend needs *PixmapTarget, got %T", target)
	}
	b.target = pt
	return nil
}

// End implements Backend.
func (b *RasterBackend) End() error {
	b.target = nil
	return nil
}

// BeginSample implements Backend.
func (b *RasterBackend) BeginSample(string) {}

// EndSample implements Backend.
func (b *RasterBackend) EndSample(string) {}

// Clear implements Backend. Depth clears are ignored.
func (b *RasterBackend) Clear(clearColor, _ bool, value gputypes.Color) {
	if clearColor && b.target != nil {
		b.target.Clear(toRGBA(value))
	}
}

// DrawRendererList implements Backend.
func (b *RasterBackend) DrawRendererList(list *rendererlist.List) {
	if b.target == nil {
		return
	}
	dst := b.target.Image()
	for _, it := range list.Items() {
		mat := it.MaterialRef()
		if slices.Contains(b.StrokeTags, it.Tag) {
			c := mat.OutlineColor
			if c == (color.RGBA{}) {
				c = DefaultOutlineColor
			}
			strokeRect(dst, it.Object.Bounds, max(mat.OutlineWidth, 1), c)
		} else if mat.BaseColor != (color.RGBA{}) {
			fillRect(dst, it.Object.Bounds, mat.BaseColor)
		}
		b.draws++
	}
}

// Draws returns the number of items painted since creation.
func (b *RasterBackend) Draws() int {
	return b.draws
}

// strokeRect paints a border of width w along the inside of r.
func strokeRect(dst *image.RGBA, r image.Rectangle, w int, c color.RGBA) {
	r = r.Canon()
	if r.Empty() {
		return
	}
	src := image.NewUniform(c)
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, min(r.Min.Y+w, r.Max.Y)),
		image.Rect(r.Min.X, max(r.Max.Y-w, r.Min.Y), r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, min(r.Min.X+w, r.Max.X), r.Max.Y),
		image.Rect(max(r.Max.X-w, r.Min.X), r.Min.Y, r.Max.X, r.Max.Y),
	}
	for _, e := range edges {
		e = e.Intersect(dst.Bounds())
		if e.Empty() {
			continue
		}
		draw.Draw(dst, e, src, image.Point{}, draw.Over)
	}
}

// fillRect paints r, clipped to dst.
func fillRect(dst *image.RGBA, r image.Rectangle, c color.RGBA) {
	r = r.Canon().Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Over)
}

var _ Backend = (*RasterBackend)(nil)
