package rendererlist

import (
	"cmp"
	"slices"

	"github.com/gogpu/toon/cull"
)

// Item is a single draw: one material of one object, rendered with the
// shader pass selected by Tag.
type Item struct {
	Object   *cull.Object
	Material int
	Tag      ShaderTagID

	// Depth is the view-space depth used for sorting.
	Depth float32
}

// MaterialRef returns the material the item draws with.
func (it Item) MaterialRef() *cull.Material {
	return it.Object.Materials[it.Material]
}

// List is a materialized renderer list.
// Lists are created per frame and must not be retained across frames.
type List struct {
	items []Item
}

// Items returns the draw items in submission order.
func (l *List) Items() []Item {
	if l == nil {
		return nil
	}
	return l.items
}

// Len returns the number of draw items.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// Empty reports whether the list has no draw items.
func (l *List) Empty() bool {
	return l.Len() == 0
}

// Objects returns the distinct objects of the list in submission order.
func (l *List) Objects() []*cull.Object {
	seen := make(map[*cull.Object]struct{}, l.Len())
	out := make([]*cull.Object, 0, l.Len())
	for _, it := range l.Items() {
		if _, ok := seen[it.Object]; ok {
			continue
		}
		seen[it.Object] = struct{}{}
		out = append(out, it.Object)
	}
	return out
}

// Build materializes desc into a List.
//
// One item is produced per (object, material, tag) combination where the
// material provides a pass for the tag and the object passes the queue,
// layer and motion-vector filters. An invalid descriptor yields an empty
// list.
func Build(desc *Desc) *List {
	if !desc.Valid() {
		return &List{}
	}

	items := make([]Item, 0, desc.Cull.Len())
	for _, obj := range desc.Cull.Objects() {
		if !accepts(desc, obj) {
			continue
		}
		depth := desc.Camera.Depth(obj)
		for mi, mat := range obj.Materials {
			for _, tag := range desc.Tags {
				if mat.HasPass(string(tag)) {
					items = append(items, Item{Object: obj, Material: mi, Tag: tag, Depth: depth})
				}
			}
		}
	}

	sortItems(items, desc.Sorting)
	return &List{items: items}
}

func accepts(desc *Desc, obj *cull.Object) bool {
	if obj == nil {
		return false
	}
	if !desc.QueueRange.Contains(obj.RenderQueue) {
		return false
	}
	if obj.Layer > 31 || desc.LayerMask&(1<<obj.Layer) == 0 {
		return false
	}
	if desc.ExcludeMotionVectors && obj.MotionVectors {
		return false
	}
	return true
}

func sortItems(items []Item, criteria SortingCriteria) {
	switch criteria {
	case SortCommonOpaque:
		slices.SortStableFunc(items, func(a, b Item) int {
			return cmp.Or(
				cmp.Compare(a.Object.RenderQueue, b.Object.RenderQueue),
				cmp.Compare(a.Depth, b.Depth),
			)
		})
	case SortCommonTransparent:
		slices.SortStableFunc(items, func(a, b Item) int {
			return cmp.Or(
				cmp.Compare(a.Object.RenderQueue, b.Object.RenderQueue),
				cmp.Compare(b.Depth, a.Depth),
			)
		})
	}
}
