// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package region

import (
	"rectui.dev/core/draw"
)

// Invalidate marks the region as needing a redraw, along with all of
// its ancestors up to the [Root], which then asks the host for a redraw
// through [Root.OnInvalidate]. It never redraws immediately; redraw
// timing belongs to the host's render loop.
func (b *Base) Invalidate() {
	for r := b.This; r != nil; r = r.AsRegion().parent {
		rb := r.AsRegion()
		if rb.dirty {
			// ancestors of a dirty region are always dirty
			return
		}
		rb.dirty = true
		if rt, ok := r.(*Root); ok {
			rt.requestRedraw()
		}
	}
}

// NeedsLayout marks the region as needing [Region.Layout] before the
// next redraw, and invalidates it.
func (b *Base) NeedsLayout() {
	b.needsLayout = true
	b.Invalidate()
}

// UpdateLayout runs [Region.Layout] top-down on the region and every
// descendant that needs it. Layout of a parent typically sets the
// rectangles of its children, which flags them in turn.
func (b *Base) UpdateLayout() {
	if b.needsLayout {
		b.needsLayout = false
		b.This.Layout()
	}
	for _, k := range b.children {
		k.AsRegion().UpdateLayout()
	}
}

// DrawSelf draws the region as a rectangle with its style colors.
func (b *Base) DrawSelf(p draw.Processor, isActive, isHover bool) {
	draw.Emit(p, b.id, draw.RectCommands(b.rect, b.Style.FillColor(isActive, isHover), b.Style.BorderColor(isActive, isHover)))
}

// DrawCommands draws the region with [Region.DrawSelf] and then its
// children, so that children paint over their parent.
func (b *Base) DrawCommands(p draw.Processor, isActive, isHover bool) {
	b.This.DrawSelf(p, isActive, isHover)
	b.DrawChildren(p)
}

// DrawChildren calls [Region.DrawCommands] on each child in order,
// with the child's own active and hover state.
func (b *Base) DrawChildren(p draw.Processor) {
	for _, k := range b.children {
		kb := k.AsRegion()
		k.DrawCommands(p, kb.IsActive(), kb.IsHovered())
	}
}

// clearDirty clears the dirty flag of the region and its descendants.
func (b *Base) clearDirty() {
	b.WalkDown(func(r Region) bool {
		r.AsRegion().dirty = false
		return Continue
	})
}
