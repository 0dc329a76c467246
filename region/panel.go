// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package region

import (
	"rectui.dev/core/draw"
	"rectui.dev/core/math32"
)

// Panel is a plain rectangular region. Its content can be drawn by an
// optional [Panel.Drawer] on top of its background, and its children
// keep the rectangles the application gives them unless it has a
// [Panel.Layouter].
type Panel struct {
	Base

	// Drawer, if set, emits extra commands after the background.
	Drawer func(p draw.Processor, rect math32.Rect, isActive, isHover bool)

	// Layouter, if set, positions the children from the panel rectangle.
	Layouter func(pn *Panel)
}

// NewPanel returns a new [Panel] added to the given parent, if any.
func NewPanel(parent ...Region) *Panel {
	return New[Panel](parent...)
}

// SetDrawer sets [Panel.Drawer].
func (pn *Panel) SetDrawer(fun func(p draw.Processor, rect math32.Rect, isActive, isHover bool)) *Panel {
	pn.Drawer = fun
	pn.Invalidate()
	return pn
}

// SetLayouter sets [Panel.Layouter].
func (pn *Panel) SetLayouter(fun func(pn *Panel)) *Panel {
	pn.Layouter = fun
	pn.NeedsLayout()
	return pn
}

func (pn *Panel) Layout() {
	if pn.Layouter != nil {
		pn.Layouter(pn)
	}
}

func (pn *Panel) DrawSelf(p draw.Processor, isActive, isHover bool) {
	pn.Base.DrawSelf(p, isActive, isHover)
	if pn.Drawer != nil {
		pn.Drawer(p, pn.rect, isActive, isHover)
	}
}

// StackVertical is a [Panel.Layouter] that stacks the children top to
// bottom with their current heights and the full panel width.
func StackVertical(pn *Panel) {
	y := pn.rect.Y
	for _, k := range pn.children {
		kb := k.AsRegion()
		kb.SetRect(math32.NewRect(pn.rect.X, y, pn.rect.W, kb.rect.H))
		y += kb.rect.H
	}
}
